package ranking

import (
	"strings"
	"unicode"

	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/typexpr"
)

// stdlibPrefix marks entries that belong to the standard library.
const stdlibPrefix = "Stdlib."

// ComputeReasoning derives the reasoning bundle for one entry against the
// tokenized query. It is total: any well-formed input yields a Reasoning.
// queryType may be nil when the query carries no type filter.
func (s *Scorer) ComputeReasoning(queryWords []string, queryType *typexpr.Type, entry *models.Entry) Reasoning {
	r := Reasoning{
		IsStdlib:         strings.HasPrefix(entry.Name, stdlibPrefix),
		NameLength:       len(entry.Name),
		HasDoc:           entry.DocHTML != "",
		Kind:             entry.Kind.Class(),
		IsFromModuleType: entry.IsFromModuleType,
		TypeInQuery:      queryType != nil,
		TypeInEntry:      entry.Kind.TypeBearing(),
	}

	if r.TypeInEntry && r.TypeInQuery {
		inner, _ := entry.Kind.InnerType()
		d := s.dist.Distance(queryType, inner)
		r.TypeDistance = &d
	}

	r.NameMatches = make([]NameMatch, len(queryWords))
	if r.Kind == models.ClassDoc {
		// Documentation-only entries never get credit for name structure.
		for i := range r.NameMatches {
			r.NameMatches[i] = MatchDoc
		}
	} else {
		for i, word := range queryWords {
			r.NameMatches[i] = matchWord(word, entry.Name)
		}
	}

	return r
}

// matchWord classifies how a single query word matches the entry name.
// The checks form a strict first-predicate-wins cascade; when several
// predicates hold, only the earliest match is reported.
func matchWord(word, name string) NameMatch {
	hasCase := strings.ContainsFunc(word, unicode.IsUpper)
	target := name
	if !hasCase {
		target = strings.ToLower(name)
	}

	switch {
	case target == word || strings.HasSuffix(target, "."+word):
		return MatchDotSuffix
	case strings.HasPrefix(target, word) ||
		strings.HasSuffix(target, word) ||
		strings.Contains(target, "("+word) ||
		strings.Contains(target, word+")"):
		return MatchPrefixSuffix
	case strings.Contains(target, "."+word) || strings.Contains(target, word+"."):
		return MatchSubDot
	case strings.Contains(target, "_"+word) || strings.Contains(target, word+"_"):
		return MatchSubUnderscore
	case strings.Contains(target, word):
		return MatchSub
	case hasCase && strings.Contains(strings.ToLower(name), strings.ToLower(word)):
		return MatchLowercase
	default:
		return MatchDoc
	}
}
