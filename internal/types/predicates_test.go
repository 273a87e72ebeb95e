package types

import "testing"

func TestIdentical(t *testing.T) {
	pairIB := NewPair(Typ[Int], Typ[Bool])
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same basic", Typ[Int], Typ[Int], true},
		{"diff basic", Typ[Int], Typ[Bool], false},
		{"same pair", pairIB, NewPair(Typ[Int], Typ[Bool]), true},
		{"swapped pair", pairIB, NewPair(Typ[Bool], Typ[Int]), false},
		{"same dict", NewDict(Typ[Int]), NewDict(Typ[Int]), true},
		{"diff dict", NewDict(Typ[Int]), NewDict(Typ[Bool]), false},
		{"nested", NewDict(pairIB), NewDict(NewPair(Typ[Int], Typ[Bool])), true},
		{"nested diff", NewDict(pairIB), NewDict(NewPair(Typ[Int], Typ[Int])), false},
		{"pair vs dict", NewPair(Typ[Int], Typ[Int]), NewDict(Typ[Int]), false},
		{"basic vs pair", Typ[Int], pairIB, false},
		{"nil", nil, Typ[Int], false},
		{"both nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.a, tt.b); got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Identical(tt.b, tt.a); got != tt.want {
				t.Errorf("Identical is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestKindPredicates(t *testing.T) {
	p := NewPair(Typ[Int], Typ[Bool])
	d := NewDict(Typ[Int])

	if !IsInteger(Typ[Int]) || IsInteger(Typ[Bool]) || IsInteger(p) {
		t.Error("IsInteger misclassifies")
	}
	if !IsBoolean(Typ[Bool]) || IsBoolean(Typ[Int]) || IsBoolean(d) {
		t.Error("IsBoolean misclassifies")
	}
	if AsPair(p) != p || AsPair(d) != nil || AsPair(Typ[Int]) != nil {
		t.Error("AsPair misclassifies")
	}
	if AsDict(d) != d || AsDict(p) != nil || AsDict(Typ[Bool]) != nil {
		t.Error("AsDict misclassifies")
	}
}
