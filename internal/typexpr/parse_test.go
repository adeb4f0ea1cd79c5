package typexpr

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Type
	}{
		{
			name:  "bare constructor",
			input: "int",
			want:  Constr("int"),
		},
		{
			name:  "wildcard",
			input: "_",
			want:  Any(),
		},
		{
			name:  "type variable",
			input: "'a",
			want:  Var("a"),
		},
		{
			name:  "single application",
			input: "int list",
			want:  Constr("list", Constr("int")),
		},
		{
			name:  "chained application",
			input: "int list option",
			want:  Constr("option", Constr("list", Constr("int"))),
		},
		{
			name:  "multi-argument application",
			input: "(int, string) result",
			want:  Constr("result", Constr("int"), Constr("string")),
		},
		{
			name:  "arrow",
			input: "int -> string",
			want:  Arrow(Constr("int"), Constr("string")),
		},
		{
			name:  "arrow is right-associative",
			input: "int -> string -> bool",
			want:  Arrow(Constr("int"), Arrow(Constr("string"), Constr("bool"))),
		},
		{
			name:  "tuple binds tighter than arrow",
			input: "int * string -> bool",
			want:  Arrow(Tuple(Constr("int"), Constr("string")), Constr("bool")),
		},
		{
			name:  "parenthesized arrow argument",
			input: "('a -> 'b) -> 'a list -> 'b list",
			want: Arrow(
				Arrow(Var("a"), Var("b")),
				Arrow(Constr("list", Var("a")), Constr("list", Var("b"))),
			),
		},
		{
			name:  "qualified constructor name",
			input: "Buffer.t -> string",
			want:  Arrow(Constr("Buffer.t"), Constr("string")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if !equal(got, tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{"", "->", "int ->", "(int", "int -", "int )"} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", input)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, input := range []string{
		"int",
		"'a list",
		"int -> string -> bool",
		"('a -> 'b) -> 'a list -> 'b list",
		"int * string -> bool",
		"(int, string) result",
	} {
		t.Run(input, func(t *testing.T) {
			parsed := MustParse(input)
			again, err := Parse(parsed.String())
			if err != nil {
				t.Fatalf("reparse of %q failed: %v", parsed.String(), err)
			}
			if !equal(parsed, again) {
				t.Errorf("round trip changed %q: %s vs %s", input, parsed, again)
			}
		})
	}
}

// equal compares two type expressions structurally.
func equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Op != b.Op || a.Name != b.Name || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !equal(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}
