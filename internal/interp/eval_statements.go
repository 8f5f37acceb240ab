package interp

import "github.com/jsubset/jsubset/internal/ast"

// evalStatement evaluates one statement in env and returns the
// completion the statement must propagate, or nil when control continues
// normally. No statement yields a value of its own; an ExprStmt's value
// is discarded.
func (in *Interpreter) evalStatement(stmt ast.Statement, env EnvID) *Completion {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		return in.evalVarDecl(s, env)
	case *ast.FunctionDeclStmt:
		return nil // already bound by hoistFunctionDecls
	case *ast.BlockStmt:
		return in.evalBlock(s, env)
	case *ast.IfStmt:
		return in.evalIf(s, env)
	case *ast.WhileStmt:
		return in.evalWhile(s, env)
	case *ast.ForStmt:
		return in.evalFor(s, env)
	case *ast.ReturnStmt:
		return in.evalReturn(s, env)
	case *ast.BreakStmt:
		return breaking()
	case *ast.ContinueStmt:
		return continuing()
	case *ast.ExprStmt:
		_, comp := in.evalExpression(s.Expression, env)
		return comp
	default:
		return newError(TypeErrorKind, stmt.Pos(), "unsupported statement type")
	}
}

func (in *Interpreter) evalVarDecl(s *ast.VarDeclStmt, env EnvID) *Completion {
	e := in.Heap.Env(env)
	if e.Has(s.Name.Value) {
		return newError(SyntaxError, s.Pos(), "identifier '"+s.Name.Value+"' has already been declared")
	}
	if !s.Mutable && s.Init == nil {
		return newError(SyntaxError, s.Pos(), "missing initializer in const declaration")
	}

	v := Undefined()
	if s.Init != nil {
		var comp *Completion
		v, comp = in.evalExpression(s.Init, env)
		if comp != nil {
			return comp
		}
	}
	e.Define(s.Name.Value, v, s.Mutable)
	return nil
}

// evalBlock pushes a fresh environment on entry and lets it go out of
// scope on every exit path — normal fallthrough, break, continue,
// return, or a thrown error (spec.md §4.5.2 invariant on block scoping).
func (in *Interpreter) evalBlock(s *ast.BlockStmt, parent EnvID) *Completion {
	blockEnv := in.Heap.NewEnv(parent, true)
	in.hoistFunctionDecls(s.Statements, blockEnv)
	for _, stmt := range s.Statements {
		if comp := in.evalStatement(stmt, blockEnv); comp != nil {
			return comp
		}
	}
	return nil
}

// evalIf always pushes a fresh environment for whichever branch runs,
// even though the branch is often itself a BlockStmt that would push
// its own — the outer push keeps a bare (non-block) branch statement's
// declarations, e.g. a single `let`, as illegal or scoped the same way
// a block would be (SPEC_FULL.md's resolution of this Open Question).
func (in *Interpreter) evalIf(s *ast.IfStmt, parent EnvID) *Completion {
	cond, comp := in.evalExpression(s.Condition, parent)
	if comp != nil {
		return comp
	}

	branchEnv := in.Heap.NewEnv(parent, true)
	if in.ToBoolean(cond) {
		return in.evalStatement(s.Then, branchEnv)
	}
	if s.Else != nil {
		return in.evalStatement(s.Else, branchEnv)
	}
	return nil
}

func (in *Interpreter) evalWhile(s *ast.WhileStmt, parent EnvID) *Completion {
	for {
		cond, comp := in.evalExpression(s.Condition, parent)
		if comp != nil {
			return comp
		}
		if !in.ToBoolean(cond) {
			return nil
		}

		bodyEnv := in.Heap.NewEnv(parent, true)
		comp = in.evalStatement(s.Body, bodyEnv)
		if comp == nil {
			continue
		}
		switch comp.Kind {
		case Break:
			return nil
		case Continue:
			continue
		default:
			return comp
		}
	}
}

func (in *Interpreter) evalFor(s *ast.ForStmt, parent EnvID) *Completion {
	headerEnv := in.Heap.NewEnv(parent, true)

	if s.Init != nil {
		if comp := in.evalStatement(s.Init, headerEnv); comp != nil {
			return comp
		}
	}

	for {
		if s.Condition != nil {
			cond, comp := in.evalExpression(s.Condition, headerEnv)
			if comp != nil {
				return comp
			}
			if !in.ToBoolean(cond) {
				return nil
			}
		}

		bodyEnv := in.Heap.NewEnv(headerEnv, true)
		comp := in.evalStatement(s.Body, bodyEnv)
		if comp != nil {
			switch comp.Kind {
			case Break:
				return nil
			case Continue:
				// fall through to step
			default:
				return comp
			}
		}

		if s.Step != nil {
			if _, comp := in.evalExpression(s.Step, headerEnv); comp != nil {
				return comp
			}
		}
	}
}

func (in *Interpreter) evalReturn(s *ast.ReturnStmt, env EnvID) *Completion {
	if s.Value == nil {
		return returning(Undefined())
	}
	v, comp := in.evalExpression(s.Value, env)
	if comp != nil {
		return comp
	}
	return returning(v)
}
