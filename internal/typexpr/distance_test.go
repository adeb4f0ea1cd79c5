package typexpr

import "testing"

func TestDistance_Zero(t *testing.T) {
	for _, sig := range []string{
		"int",
		"'a list",
		"int -> string -> bool",
		"('a -> 'b) -> 'a list -> 'b list",
	} {
		t.Run(sig, func(t *testing.T) {
			a := MustParse(sig)
			b := MustParse(sig)
			if d := Distance(a, b); d != 0 {
				t.Errorf("Distance(%q, %q) = %d, want 0", sig, sig, d)
			}
		})
	}
}

func TestDistance_VariableRenaming(t *testing.T) {
	a := MustParse("'a -> 'b")
	b := MustParse("'x -> 'y")
	if d := Distance(a, b); d != 0 {
		t.Errorf("Distance = %d, want 0 for renamed variables", d)
	}
}

func TestDistance_WildcardMatchesAnything(t *testing.T) {
	wild := MustParse("_ -> int")
	concrete := MustParse("(string * bool) list -> int")
	if d := Distance(wild, concrete); d != 0 {
		t.Errorf("Distance = %d, want 0 for wildcard", d)
	}
}

func TestDistance_NonNegative(t *testing.T) {
	sigs := []string{
		"int",
		"string",
		"'a list",
		"int -> int",
		"int * string",
		"(int, string) result -> unit",
	}
	for _, a := range sigs {
		for _, b := range sigs {
			if d := Distance(MustParse(a), MustParse(b)); d < 0 {
				t.Errorf("Distance(%q, %q) = %d, want >= 0", a, b, d)
			}
		}
	}
}

func TestDistance_MonotonicInDissimilarity(t *testing.T) {
	query := MustParse("int -> int")

	rename := Distance(query, MustParse("int -> float"))
	specialize := Distance(query, MustParse("int -> 'a"))
	reshape := Distance(query, MustParse("int -> int -> int"))

	if specialize >= rename {
		t.Errorf("specializing a variable (%d) should cost less than renaming (%d)", specialize, rename)
	}
	if rename >= reshape {
		t.Errorf("renaming (%d) should cost less than changing shape (%d)", rename, reshape)
	}
}

func TestDistance_NilArgument(t *testing.T) {
	typ := MustParse("int -> int")
	if d := Distance(typ, nil); d != typ.Size() {
		t.Errorf("Distance(t, nil) = %d, want %d", d, typ.Size())
	}
	if d := Distance(nil, nil); d != 0 {
		t.Errorf("Distance(nil, nil) = %d, want 0", d)
	}
}

func TestMetric_ImplementsDistance(t *testing.T) {
	var m Metric
	if d := m.Distance(MustParse("int"), MustParse("int")); d != 0 {
		t.Errorf("Metric.Distance = %d, want 0", d)
	}
}
