package interp

// EnvID, VarID, ValueID, and ObjID are the four handle kinds the heap
// hands out. Each is a distinct type so a handle of one kind can never
// be passed where another is expected by accident.
type (
	EnvID   uint32
	VarID   uint32
	ValueID uint32
	ObjID   uint32
)

// variable is a single mutable binding cell. Environments hold VarIDs
// rather than Values directly so that two closures capturing the same
// outer scope observe each other's assignments (spec.md §4.1, §4.5.2).
type variable struct {
	value    Value
	mutable  bool
	assigned bool // set by SetVar; Environment.Define always creates the cell already assigned
}

// Heap is the interpreter's sole allocation arena. It never frees: it
// lives as long as its Interpreter, across every Interpret call on it,
// and is dropped along with the Interpreter (spec.md §4.1 "no explicit
// deallocation").
type Heap struct {
	envs   []*Environment
	vars   []variable
	values []Value
	objs   []Object
}

// NewHeap returns an empty heap. Index 0 of every store is reserved as
// an invalid/sentinel handle so a zero-value ID is never mistaken for a
// real allocation.
func NewHeap() *Heap {
	h := &Heap{}
	h.envs = append(h.envs, nil)
	h.vars = append(h.vars, variable{})
	h.values = append(h.values, Value{})
	h.objs = append(h.objs, nil)
	return h
}

func (h *Heap) NewEnv(parent EnvID, hasParent bool) EnvID {
	env := &Environment{heap: h, names: make(map[string]VarID), parent: parent, hasParent: hasParent}
	h.envs = append(h.envs, env)
	return EnvID(len(h.envs) - 1)
}

func (h *Heap) Env(id EnvID) *Environment { return h.envs[id] }

func (h *Heap) NewVar(v Value, mutable bool, assigned bool) VarID {
	h.vars = append(h.vars, variable{value: v, mutable: mutable, assigned: assigned})
	return VarID(len(h.vars) - 1)
}

func (h *Heap) VarValue(id VarID) Value { return h.vars[id].value }

func (h *Heap) SetVar(id VarID, v Value) {
	h.vars[id].value = v
	h.vars[id].assigned = true
}

func (h *Heap) VarMutable(id VarID) bool  { return h.vars[id].mutable }
func (h *Heap) VarAssigned(id VarID) bool { return h.vars[id].assigned }

func (h *Heap) NewObject(o Object) ObjID {
	h.objs = append(h.objs, o)
	return ObjID(len(h.objs) - 1)
}

func (h *Heap) Object(id ObjID) Object { return h.objs[id] }
