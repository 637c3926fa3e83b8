package jung

import (
	"reflect"
	"testing"
)

func tableKeys(t *Table) []string {
	var out []string
	for _, v := range t.Keys().Arr.Items {
		out = append(out, v.Str)
	}
	return out
}

func Test_Table_InsertionOrder(t *testing.T) {
	tb := NewTable()
	tb.Set("b", Num(1))
	tb.Set("a", Num(2))
	tb.Set("c", Num(3))
	if got := tableKeys(tb); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("keys out of order: %v", got)
	}
}

func Test_Table_UpdateKeepsPosition(t *testing.T) {
	tb := NewTable()
	tb.Set("a", Num(1))
	tb.Set("b", Num(2))
	tb.Set("a", Num(9))
	if got := tableKeys(tb); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("update must not move the key: %v", got)
	}
	if v, _ := tb.Get("a"); v.Num != 9 {
		t.Fatalf("update lost the value")
	}
}

func Test_Table_DeletePreservesOrder(t *testing.T) {
	tb := NewTable()
	tb.Set("a", Num(1))
	tb.Set("b", Num(2))
	tb.Set("c", Num(3))
	tb.Delete("b")
	if got := tableKeys(tb); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("delete broke iteration order: %v", got)
	}
	if tb.Has("b") {
		t.Fatalf("deleted key still present")
	}
	if tb.Len() != 2 {
		t.Fatalf("wrong length after delete: %d", tb.Len())
	}
}

func Test_Table_DeleteMissingIsNoop(t *testing.T) {
	tb := NewTable()
	tb.Set("a", Num(1))
	tb.Delete("zz")
	if tb.Len() != 1 {
		t.Fatalf("noop delete changed length")
	}
}

func Test_Table_Values(t *testing.T) {
	tb := NewTable()
	tb.Set("x", Num(10))
	tb.Set("y", Num(20))
	vals := tb.Values().Arr.Items
	if len(vals) != 2 || vals[0].Num != 10 || vals[1].Num != 20 {
		t.Fatalf("values wrong: %v", vals)
	}
}

func Test_Table_GetMissing(t *testing.T) {
	tb := NewTable()
	if _, ok := tb.Get("nope"); ok {
		t.Fatalf("missing key reported present")
	}
}

func Test_Table_ManyEntries(t *testing.T) {
	tb := NewTable()
	for i := 0; i < 2000; i++ {
		tb.Set(FormatNumber(float64(i)), Num(float64(i)))
	}
	if tb.Len() != 2000 {
		t.Fatalf("wrong length: %d", tb.Len())
	}
	if v, ok := tb.Get("1234"); !ok || v.Num != 1234 {
		t.Fatalf("lookup failed after growth")
	}
}
