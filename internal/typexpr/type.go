// Package typexpr represents OCaml-style type expressions and provides a
// structural distance metric between them.
package typexpr

import "strings"

// Op identifies the shape of a type expression node.
type Op int

const (
	// OpAny is the wildcard type "_", matching anything.
	OpAny Op = iota
	// OpVar is a type variable such as 'a.
	OpVar
	// OpConstr is a named type constructor, possibly applied: int, 'a list.
	OpConstr
	// OpTuple is a product type: t1 * t2 * ...
	OpTuple
	// OpArrow is a function type: t1 -> t2.
	OpArrow
)

// String returns a string representation of the op.
func (o Op) String() string {
	switch o {
	case OpAny:
		return "any"
	case OpVar:
		return "var"
	case OpConstr:
		return "constr"
	case OpTuple:
		return "tuple"
	case OpArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Type is a parsed type expression.
type Type struct {
	// Op is the node shape.
	Op Op
	// Name is the constructor name (OpConstr) or variable name (OpVar).
	Name string
	// Args holds children: [domain, codomain] for OpArrow, elements for
	// OpTuple, type parameters for OpConstr.
	Args []*Type
}

// Any is the wildcard type expression.
func Any() *Type { return &Type{Op: OpAny} }

// Var returns a type variable expression with the given name.
func Var(name string) *Type { return &Type{Op: OpVar, Name: name} }

// Constr returns a constructor expression applied to args.
func Constr(name string, args ...*Type) *Type {
	return &Type{Op: OpConstr, Name: name, Args: args}
}

// Tuple returns a product of the given element types.
func Tuple(elems ...*Type) *Type { return &Type{Op: OpTuple, Args: elems} }

// Arrow returns the function type dom -> cod.
func Arrow(dom, cod *Type) *Type {
	return &Type{Op: OpArrow, Args: []*Type{dom, cod}}
}

// String renders the type back to OCaml-like syntax.
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	t.write(&b, 0)
	return b.String()
}

// write renders t with precedence-aware parenthesization.
// level: 0 = arrow position, 1 = tuple position, 2 = constructor argument.
func (t *Type) write(b *strings.Builder, level int) {
	switch t.Op {
	case OpAny:
		b.WriteString("_")
	case OpVar:
		b.WriteString("'")
		b.WriteString(t.Name)
	case OpConstr:
		switch len(t.Args) {
		case 0:
		case 1:
			t.Args[0].write(b, 2)
			b.WriteString(" ")
		default:
			b.WriteString("(")
			for i, a := range t.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				a.write(b, 0)
			}
			b.WriteString(") ")
		}
		b.WriteString(t.Name)
	case OpTuple:
		if level >= 2 {
			b.WriteString("(")
		}
		for i, e := range t.Args {
			if i > 0 {
				b.WriteString(" * ")
			}
			e.write(b, 2)
		}
		if level >= 2 {
			b.WriteString(")")
		}
	case OpArrow:
		if level >= 1 {
			b.WriteString("(")
		}
		t.Args[0].write(b, 1)
		b.WriteString(" -> ")
		t.Args[1].write(b, 0)
		if level >= 1 {
			b.WriteString(")")
		}
	}
}

// Size returns the number of nodes in the type expression.
func (t *Type) Size() int {
	if t == nil {
		return 0
	}
	n := 1
	for _, a := range t.Args {
		n += a.Size()
	}
	return n
}
