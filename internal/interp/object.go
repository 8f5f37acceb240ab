package interp

// Object is implemented by the three object shapes the language
// exposes: plain objects, arrays, and functions — "three shapes behind
// one abstract interface" per spec.md §4.1. Every shape supports plain
// property storage; arrays and functions layer extra behavior on top.
type Object interface {
	// GetOwn returns the object's own property named key, if any.
	GetOwn(key string) (Value, bool)
	// SetOwn creates or overwrites an own data property.
	SetOwn(key string, v Value)
	// DeleteOwn removes an own property, reporting whether it existed.
	DeleteOwn(key string) bool
	// OwnKeys returns the object's own enumerable property names in
	// insertion order.
	OwnKeys() []string
	// Prototype returns the object this one delegates to for property
	// lookups that miss locally, and whether one is set.
	Prototype() (ObjID, bool)
}

// props is the shared own-property storage embedded by every object
// shape. Accessor properties (getters/setters) are out of scope for
// this subset (spec.md Non-goals); every property is a plain data slot.
type props struct {
	order []string
	data  map[string]Value
	proto    ObjID
	hasProto bool
}

func newProps() props {
	return props{data: make(map[string]Value)}
}

func (p *props) GetOwn(key string) (Value, bool) {
	v, ok := p.data[key]
	return v, ok
}

func (p *props) SetOwn(key string, v Value) {
	if _, exists := p.data[key]; !exists {
		p.order = append(p.order, key)
	}
	p.data[key] = v
}

func (p *props) DeleteOwn(key string) bool {
	if _, ok := p.data[key]; !ok {
		return false
	}
	delete(p.data, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

func (p *props) OwnKeys() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

func (p *props) Prototype() (ObjID, bool) { return p.proto, p.hasProto }

func (p *props) SetPrototype(id ObjID) {
	p.proto = id
	p.hasProto = true
}

// OrdinaryObject is a plain `{ key: value, ... }` object.
type OrdinaryObject struct {
	props
}

func NewOrdinaryObject() *OrdinaryObject {
	return &OrdinaryObject{props: newProps()}
}

// ArrayObject is a dense, 0-indexed list with a live "length" property.
// Elements are held in the Elements slice, not as string-keyed
// properties: getProperty and setProperty route "length" and integer
// keys ("0", "1", ...) to that slice, and every other key to the
// ordinary property storage.
type ArrayObject struct {
	props
	Elements []Value
}

func NewArrayObject(elements []Value) *ArrayObject {
	return &ArrayObject{props: newProps(), Elements: elements}
}

func (a *ArrayObject) Length() int { return len(a.Elements) }

// Push appends values to the end of the array and returns the new
// length, mirroring Array.prototype.push (spec.md §3: arrays "maintain
// the properties.len()-based indexing scheme" that push/pop extend).
func (a *ArrayObject) Push(vs ...Value) int {
	a.Elements = append(a.Elements, vs...)
	return len(a.Elements)
}

// Pop removes and returns the last element, reporting false (with an
// Undefined value) on an empty array rather than panicking.
func (a *ArrayObject) Pop() (Value, bool) {
	if len(a.Elements) == 0 {
		return Undefined(), false
	}
	last := a.Elements[len(a.Elements)-1]
	a.Elements = a.Elements[:len(a.Elements)-1]
	return last, true
}

// FunctionObject is a callable value: either a user-defined function or
// a host builtin. Exactly one of Body/Native is set.
type FunctionObject struct {
	props

	Name   string
	Params []string

	// Body is the *ast.BlockStmt of a function or block-bodied arrow, or
	// the ast.Expression of an expression-bodied arrow; it is typed
	// interface{} and callFunction switches on its dynamic type.
	Body interface{}

	// Closure is the environment captured at the moment the function
	// literal was evaluated (spec.md §4.5.2 "FunctionDecl" capture
	// semantics) — not the environment active at call time.
	Closure EnvID

	// Native, when non-nil, makes this a host-provided builtin such as
	// console.log; Closure/Body are unused for native functions.
	Native func(in *Interpreter, this Value, args []Value) (Value, *Completion)
}

func (f *FunctionObject) IsNative() bool { return f.Native != nil }
