// Package ranking computes a deterministic, total-ordering cost for each
// candidate entry given a tokenized query. Lower cost means higher rank.
//
// Scoring happens in two stages: a reasoning extractor derives qualitative
// facts about how an entry matches the query, and a cost assigner folds
// those facts into a single integer via fixed weight tables.
package ranking

import (
	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/typexpr"
)

// NameMatch is the qualitative category describing how one query word
// matched an entry's name. Exactly one value is produced per query word.
type NameMatch int

const (
	// MatchDotSuffix is an exact name match or a match of the final
	// dot-separated component.
	MatchDotSuffix NameMatch = iota
	// MatchPrefixSuffix is a prefix or suffix match, including
	// parenthesized operator-argument positions.
	MatchPrefixSuffix
	// MatchSubDot is a substring match adjacent to a dot.
	MatchSubDot
	// MatchSubUnderscore is a substring match adjacent to an underscore.
	MatchSubUnderscore
	// MatchSub is a plain substring match.
	MatchSub
	// MatchLowercase is a case-insensitive fallback match for words that
	// carry uppercase characters.
	MatchLowercase
	// MatchDoc means the word did not match the identifier at all; the
	// entry is assumed reachable only through its documentation text.
	MatchDoc
)

// String returns a string representation of the name match category.
func (m NameMatch) String() string {
	switch m {
	case MatchDotSuffix:
		return "dot_suffix"
	case MatchPrefixSuffix:
		return "prefix_suffix"
	case MatchSubDot:
		return "sub_dot"
	case MatchSubUnderscore:
		return "sub_underscore"
	case MatchSub:
		return "sub"
	case MatchLowercase:
		return "lowercase"
	case MatchDoc:
		return "doc"
	default:
		return "unknown"
	}
}

// Reasoning is the bundle of independent facts extracted for one
// (query, entry) pair. It is built, consumed by the cost assigner, and
// discarded within a single scoring call; it is never persisted.
type Reasoning struct {
	// IsStdlib reports whether the entry name starts with "Stdlib.".
	IsStdlib bool
	// NameLength is the byte length of the entry name.
	NameLength int
	// HasDoc reports whether the entry carries documentation.
	HasDoc bool
	// NameMatches holds one match category per query word, in query order.
	NameMatches []NameMatch
	// TypeDistance is the distance between the query type and the entry's
	// inner type. Non-nil iff both TypeInQuery and TypeInEntry hold.
	TypeDistance *int
	// TypeInQuery reports whether the query supplied a type signature.
	TypeInQuery bool
	// TypeInEntry reports whether the entry's kind is type-bearing.
	TypeInEntry bool
	// Kind is the entry's coarse kind class.
	Kind models.KindClass
	// IsFromModuleType reports whether the entry was inherited through a
	// module type signature.
	IsFromModuleType bool
}

// Distancer measures the distance between a query type signature and an
// entry's inner type signature. Implementations return a non-negative
// integer; 0 means identical up to the metric's notion of equivalence.
// The metric is opaque to this package.
type Distancer interface {
	Distance(query, entry *typexpr.Type) int
}
