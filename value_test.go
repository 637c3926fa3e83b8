package jung

import (
	"math"
	"testing"
)

func Test_Value_FormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{-3, "-3"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{150, "150"},
		{1e15, "1000000000000000"},
		{-1e15, "-1000000000000000"},
		{1e16, "1e+16"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func Test_Value_FormatNumber_SpecialsDoNotCrash(t *testing.T) {
	_ = FormatNumber(math.NaN())
	_ = FormatNumber(math.Inf(1))
	_ = FormatNumber(math.Inf(-1))
}

func Test_Value_Truthiness(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Null, false},
		{Bool(false), false},
		{Bool(true), true},
		{Num(0), false},
		{Num(0.5), true},
		{Str(""), false},
		{Str("x"), true},
		{Arr(nil), false}, // empty collection is falsy
		{Arr([]Value{Num(1)}), true},
		{Obj(), true},
	}
	for i, c := range cases {
		if got := IsTruthy(c.v); got != c.want {
			t.Fatalf("case %d: IsTruthy = %v, want %v", i, got, c.want)
		}
	}
}

func Test_Value_Equality(t *testing.T) {
	if !Equal(Num(1), Num(1)) || Equal(Num(1), Num(2)) {
		t.Fatalf("number equality broken")
	}
	if !Equal(Str("a"), Str("a")) || Equal(Str("a"), Str("b")) {
		t.Fatalf("string equality broken")
	}
	if Equal(Num(0), Str("0")) {
		t.Fatalf("cross-kind values must not be equal")
	}
	if !Equal(Null, Null) {
		t.Fatalf("null equality broken")
	}

	// aggregates compare by identity
	a := Arr([]Value{Num(1)})
	b := Arr([]Value{Num(1)})
	if Equal(a, b) {
		t.Fatalf("distinct arrays must not be equal")
	}
	if !Equal(a, a) {
		t.Fatalf("array must equal itself")
	}
	o := Obj()
	if !Equal(o, o) || Equal(o, Obj()) {
		t.Fatalf("object identity equality broken")
	}
}

func Test_Value_EqualityIgnoresFloatKind(t *testing.T) {
	if !Equal(Num(2), Flt(2)) {
		t.Fatalf("2 and 2.0 must compare equal")
	}
}

func Test_Value_ToString_TopLevelStringUnquoted(t *testing.T) {
	if got := ToString(Str("hi")); got != "hi" {
		t.Fatalf("got %q", got)
	}
}

func Test_Value_ToString_Aggregates(t *testing.T) {
	arr := Arr([]Value{Num(1), Str("x"), Null})
	if got := ToString(arr); got != `[1, "x", null]` {
		t.Fatalf("array rendering: %q", got)
	}

	obj := Obj()
	obj.Obj.Set("a", Num(1))
	obj.Obj.Set("b", Str("y"))
	if got := ToString(obj); got != `{a: 1, b: "y"}` {
		t.Fatalf("object rendering: %q", got)
	}
}

func Test_Value_ToString_NestedAggregates(t *testing.T) {
	inner := Arr([]Value{Num(2)})
	arr := Arr([]Value{inner})
	if got := ToString(arr); got != "[[2]]" {
		t.Fatalf("nested rendering: %q", got)
	}
}

func Test_Value_TypeNames(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{Bool(true), "bool"},
		{Num(1), "number"},
		{Str(""), "string"},
		{Arr(nil), "array"},
		{Obj(), "object"},
		{Func(&FuncDef{Name: "f"}), "function"},
	}
	for _, c := range cases {
		if got := TypeName(c.v); got != c.want {
			t.Fatalf("TypeName = %q, want %q", got, c.want)
		}
	}
}
