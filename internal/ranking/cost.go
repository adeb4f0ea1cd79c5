package ranking

import (
	"fmt"

	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/typexpr"
)

// Penalties added when the corresponding reason does not hold.
const (
	nonStdlibPenalty  = 100
	noDocPenalty      = 100
	moduleTypePenalty = 400
)

// nameMatchCost maps each name match category to its penalty. The table is
// pure configuration data, initialized once and never mutated.
var nameMatchCost = map[NameMatch]int{
	MatchDotSuffix:     0,
	MatchPrefixSuffix:  103,
	MatchSubDot:        104,
	MatchSubUnderscore: 105,
	MatchSub:           106,
	MatchLowercase:     107,
	MatchDoc:           1000,
}

// kindCost maps each coarse kind class to its penalty.
var kindCost = map[models.KindClass]int{
	models.ClassVal:                  0,
	models.ClassModule:               0,
	models.ClassModuleType:           0,
	models.ClassConstructor:          0,
	models.ClassField:                0,
	models.ClassTypeDecl:             0,
	models.ClassException:            30,
	models.ClassClassType:            40,
	models.ClassClass:                40,
	models.ClassTypeExtension:        40,
	models.ClassExtensionConstructor: 50,
	models.ClassMethod:               50,
	models.ClassDoc:                  50,
}

// Scorer assigns ranking costs to entries. It holds the opaque type
// distance metric and no other state, so a single Scorer may be shared
// across goroutines scoring disjoint entries.
type Scorer struct {
	dist Distancer
}

// NewScorer creates a Scorer using the given type distance metric.
func NewScorer(dist Distancer) *Scorer {
	return &Scorer{dist: dist}
}

// CostOfReasoning folds a reasoning bundle into a single integer cost.
// It is pure and deterministic; lower is better. Costs are comparable only
// within the same query evaluation.
//
// It panics when the reasoning violates the core invariants: a typed query
// paired with an untyped entry (candidates must be pre-filtered upstream),
// or a missing distance when both sides carry a type. Both indicate caller
// programming errors, not user input errors.
func CostOfReasoning(r Reasoning) int {
	cost := 0
	if !r.IsStdlib {
		cost += nonStdlibPenalty
	}
	// Module and module type entries are exempt from the doc penalty.
	if !r.HasDoc && r.Kind != models.ClassModule && r.Kind != models.ClassModuleType {
		cost += noDocPenalty
	}
	for _, m := range r.NameMatches {
		cost += nameMatchCost[m]
	}
	cost += kindCost[r.Kind]
	cost += typeCost(r)
	if r.IsFromModuleType {
		cost += moduleTypePenalty
	}
	cost += r.NameLength
	return cost
}

// typeCost returns the type-compatibility term of the cost.
func typeCost(r Reasoning) int {
	switch {
	case r.TypeInEntry && r.TypeInQuery:
		if r.TypeDistance == nil {
			panic("ranking: reasoning has typed query and typed entry but no type distance")
		}
		return *r.TypeDistance
	case r.TypeInQuery:
		panic(fmt.Sprintf("ranking: typed query reached untyped entry kind %v; candidates must be pre-filtered", r.Kind))
	default:
		// Untyped queries never penalize typed entries.
		return 0
	}
}

// ComputeCost extracts reasoning for the entry and assigns its cost.
func (s *Scorer) ComputeCost(queryWords []string, queryType *typexpr.Type, entry *models.Entry) int {
	return CostOfReasoning(s.ComputeReasoning(queryWords, queryType, entry))
}

// UpdateEntryCost computes the entry's cost for the query and writes it to
// the entry's Cost field. Every other field is left unchanged. The updated
// entry is returned for convenience.
func (s *Scorer) UpdateEntryCost(queryWords []string, queryType *typexpr.Type, entry *models.Entry) *models.Entry {
	entry.Cost = s.ComputeCost(queryWords, queryType, entry)
	return entry
}
