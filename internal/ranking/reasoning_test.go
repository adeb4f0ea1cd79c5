package ranking

import (
	"testing"

	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/typexpr"
)

// stubDistancer returns a fixed distance, so the extractor can be tested
// without the real type-matching metric.
type stubDistancer struct {
	d int
}

func (s stubDistancer) Distance(_, _ *typexpr.Type) int { return s.d }

func TestMatchWord(t *testing.T) {
	tests := []struct {
		name      string
		word      string
		entryName string
		want      NameMatch
	}{
		{
			name:      "exact name",
			word:      "map",
			entryName: "map",
			want:      MatchDotSuffix,
		},
		{
			name:      "dot suffix",
			word:      "map",
			entryName: "List.map",
			want:      MatchDotSuffix,
		},
		{
			name:      "prefix beats plain substring",
			word:      "map",
			entryName: "mapping",
			want:      MatchPrefixSuffix,
		},
		{
			name:      "suffix without preceding dot",
			word:      "iter",
			entryName: "Array.map_iter",
			want:      MatchPrefixSuffix,
		},
		{
			name:      "lowercase word matches lowered name prefix",
			word:      "list",
			entryName: "List.map",
			want:      MatchPrefixSuffix,
		},
		{
			name:      "operator argument open paren",
			word:      "+",
			entryName: "Stdlib.(+)",
			want:      MatchPrefixSuffix,
		},
		{
			name:      "substring adjacent to dot",
			word:      "map",
			entryName: "a.map.b",
			want:      MatchSubDot,
		},
		{
			name:      "substring adjacent to underscore",
			word:      "fold",
			entryName: "list_folding",
			want:      MatchSubUnderscore,
		},
		{
			name:      "plain substring",
			word:      "old",
			entryName: "folder",
			want:      MatchSub,
		},
		{
			name:      "cased word does not match case-insensitively at top rules",
			word:      "Foo",
			entryName: "foo",
			want:      MatchLowercase,
		},
		{
			name:      "cased word falls back to lowercase substring",
			word:      "Map",
			entryName: "bitmap",
			want:      MatchLowercase,
		},
		{
			name:      "cased word matching verbatim keeps strong category",
			word:      "List",
			entryName: "List.map",
			want:      MatchPrefixSuffix,
		},
		{
			name:      "no match at all",
			word:      "xyz",
			entryName: "List.map",
			want:      MatchDoc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchWord(tt.word, tt.entryName)
			if got != tt.want {
				t.Errorf("matchWord(%q, %q) = %v, want %v", tt.word, tt.entryName, got, tt.want)
			}
		})
	}
}

func TestComputeReasoning_Basics(t *testing.T) {
	s := NewScorer(stubDistancer{})
	entry := &models.Entry{
		Name:    "Stdlib.List.map",
		DocHTML: "<p>doc</p>",
		Kind:    models.NewValKind(typexpr.MustParse("('a -> 'b) -> 'a list -> 'b list")),
	}

	r := s.ComputeReasoning([]string{"map", "list"}, nil, entry)

	if !r.IsStdlib {
		t.Error("IsStdlib = false, want true for Stdlib. prefix")
	}
	if !r.HasDoc {
		t.Error("HasDoc = false, want true")
	}
	if r.NameLength != len("Stdlib.List.map") {
		t.Errorf("NameLength = %d, want %d", r.NameLength, len("Stdlib.List.map"))
	}
	if r.Kind != models.ClassVal {
		t.Errorf("Kind = %v, want %v", r.Kind, models.ClassVal)
	}
	if len(r.NameMatches) != 2 {
		t.Fatalf("len(NameMatches) = %d, want 2", len(r.NameMatches))
	}
	if !r.TypeInEntry {
		t.Error("TypeInEntry = false, want true for val")
	}
	if r.TypeInQuery {
		t.Error("TypeInQuery = true, want false without query type")
	}
	if r.TypeDistance != nil {
		t.Error("TypeDistance present without query type")
	}
}

func TestComputeReasoning_TypeDistancePresence(t *testing.T) {
	s := NewScorer(stubDistancer{d: 7})
	queryType := typexpr.MustParse("int -> int")

	typed := &models.Entry{
		Name: "incr",
		Kind: models.NewValKind(typexpr.MustParse("int -> int")),
	}
	r := s.ComputeReasoning([]string{"incr"}, queryType, typed)
	if !r.TypeInQuery || !r.TypeInEntry {
		t.Fatal("expected both TypeInQuery and TypeInEntry")
	}
	if r.TypeDistance == nil || *r.TypeDistance != 7 {
		t.Errorf("TypeDistance = %v, want 7", r.TypeDistance)
	}

	untyped := &models.Entry{
		Name: "List",
		Kind: models.NewModuleKind(),
	}
	r = s.ComputeReasoning([]string{"List"}, queryType, untyped)
	if r.TypeInEntry {
		t.Error("TypeInEntry = true for module")
	}
	if r.TypeDistance != nil {
		t.Error("TypeDistance present for untyped entry")
	}
}

func TestComputeReasoning_DocKindForcesDocMatches(t *testing.T) {
	s := NewScorer(stubDistancer{})
	entry := &models.Entry{
		Name: "map",
		Kind: models.NewDocKind(),
	}

	r := s.ComputeReasoning([]string{"map", "list"}, nil, entry)
	for i, m := range r.NameMatches {
		if m != MatchDoc {
			t.Errorf("NameMatches[%d] = %v, want %v", i, m, MatchDoc)
		}
	}
}

func TestComputeReasoning_EmptyQueryWords(t *testing.T) {
	s := NewScorer(stubDistancer{})
	entry := &models.Entry{Name: "List.map", Kind: models.NewModuleKind()}

	r := s.ComputeReasoning(nil, nil, entry)
	if len(r.NameMatches) != 0 {
		t.Errorf("len(NameMatches) = %d, want 0", len(r.NameMatches))
	}
}

func TestComputeReasoning_OneMatchPerWord(t *testing.T) {
	s := NewScorer(stubDistancer{})
	entry := &models.Entry{Name: "List.map", Kind: models.NewModuleKind()}

	words := []string{"map", "lst", "Map", "xyz", "a"}
	r := s.ComputeReasoning(words, nil, entry)
	if len(r.NameMatches) != len(words) {
		t.Errorf("len(NameMatches) = %d, want %d", len(r.NameMatches), len(words))
	}
}
