package typexpr

// Costs for structural edits. Renaming a constructor is cheaper than
// replacing a whole subtree, and specializing a type variable is cheaper
// still, so that "closer" shapes always rank before unrelated ones.
const (
	varSpecializeCost = 1
	renameCost        = 2
	shapeChangeBase   = 3
)

// Distance returns a non-negative structural distance between two type
// expressions. 0 means identical up to type-variable naming; wildcards
// match anything for free. The metric grows with shape dissimilarity.
func Distance(a, b *Type) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return b.Size()
	case b == nil:
		return a.Size()
	}

	// Wildcards unify with anything.
	if a.Op == OpAny || b.Op == OpAny {
		return 0
	}

	// A type variable unifies with a variable for free and specializes to
	// any concrete type for a small cost.
	if a.Op == OpVar && b.Op == OpVar {
		return 0
	}
	if a.Op == OpVar || b.Op == OpVar {
		return varSpecializeCost
	}

	if a.Op != b.Op {
		return shapeChangeBase + a.Size() + b.Size()
	}

	switch a.Op {
	case OpConstr:
		d := argsDistance(a.Args, b.Args)
		if a.Name != b.Name {
			d += renameCost
		}
		return d
	case OpArrow:
		return Distance(a.Args[0], b.Args[0]) + Distance(a.Args[1], b.Args[1])
	case OpTuple:
		return argsDistance(a.Args, b.Args)
	default:
		return 0
	}
}

// argsDistance aligns argument lists position by position; unmatched
// arguments cost their full size.
func argsDistance(as, bs []*Type) int {
	d := 0
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var a, b *Type
		if i < len(as) {
			a = as[i]
		}
		if i < len(bs) {
			b = bs[i]
		}
		d += Distance(a, b)
	}
	return d
}

// Metric adapts Distance to the single-method capability interface the
// ranking core consumes.
type Metric struct{}

// Distance implements ranking.Distancer.
func (Metric) Distance(query, entry *Type) int {
	return Distance(query, entry)
}
