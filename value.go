package jung

import (
	"math"
	"strconv"
	"strings"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VNull ValueTag = iota
	VBool
	VNumber // IEEE-754 double
	VString
	VArray    // *ArrayObject (shared handle)
	VObject   // *Table (shared handle)
	VFunction // *FuncDef (non-owning reference into the AST)
	VBuiltin  // native operation
)

// ArrayObject is the shared payload of an array value. Index assignment,
// push, and pop mutate it in place; every copy of the Value aliases it.
type ArrayObject struct {
	Items []Value
}

// FuncDef is a user function: parameter list (with default-expression
// references) and body, both referencing subtrees owned by the program AST.
type FuncDef struct {
	Name   string
	Params []Param
	Body   []Stmt
}

// BuiltinFn is the implementation signature of a native operation.
type BuiltinFn func(ip *Interpreter, args []Value) Value

// Value is the universal runtime carrier. Tag selects the active field.
// Primitives are by-value; strings are immutable; arrays and objects are
// shared handles, which is how class instances support "same object passed
// around" mutation semantics.
type Value struct {
	Tag     ValueTag
	Bool    bool
	Num     float64
	Float   bool // number came from a fractional literal or float(); keeps 10.0/4 out of integer division
	Str     string
	Arr     *ArrayObject
	Obj     *Table
	Fn      *FuncDef
	Builtin BuiltinFn
}

// Null is the null value.
var Null = Value{Tag: VNull}

// Constructors.
func Bool(b bool) Value         { return Value{Tag: VBool, Bool: b} }
func Num(n float64) Value       { return Value{Tag: VNumber, Num: n} }
func Flt(n float64) Value       { return Value{Tag: VNumber, Num: n, Float: true} }
func Str(s string) Value        { return Value{Tag: VString, Str: s} }
func Arr(items []Value) Value   { return Value{Tag: VArray, Arr: &ArrayObject{Items: items}} }
func Obj() Value                { return Value{Tag: VObject, Obj: NewTable()} }
func ObjFrom(t *Table) Value    { return Value{Tag: VObject, Obj: t} }
func Func(f *FuncDef) Value     { return Value{Tag: VFunction, Fn: f} }
func Native(f BuiltinFn) Value  { return Value{Tag: VBuiltin, Builtin: f} }

// IsTruthy maps a value to a boolean for control-flow tests. Null, false,
// zero, the empty string, and the empty array are falsy.
func IsTruthy(v Value) bool {
	switch v.Tag {
	case VNull:
		return false
	case VBool:
		return v.Bool
	case VNumber:
		return v.Num != 0
	case VString:
		return len(v.Str) > 0
	case VArray:
		return len(v.Arr.Items) > 0
	default:
		return true
	}
}

// Equal compares two values: primitives by value, strings by content,
// arrays and objects by identity.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VNull:
		return true
	case VBool:
		return a.Bool == b.Bool
	case VNumber:
		return a.Num == b.Num
	case VString:
		return a.Str == b.Str
	case VArray:
		return a.Arr == b.Arr
	case VObject:
		return a.Obj == b.Obj
	default:
		return false
	}
}

// FormatNumber renders a number: integers in [-1e15, 1e15] without a decimal
// point, everything else in general format with up to 14 significant digits.
func FormatNumber(n float64) string {
	if n == math.Floor(n) && n >= -1e15 && n <= 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', 14, 64)
}

// ToString renders a value for display: strings unquoted at top level,
// quoted when nested inside array/object rendering.
func ToString(v Value) string {
	switch v.Tag {
	case VNull:
		return "null"
	case VBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case VNumber:
		return FormatNumber(v.Num)
	case VString:
		return v.Str
	case VArray:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.Arr.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeNested(&b, item)
		}
		b.WriteByte(']')
		return b.String()
	case VObject:
		var b strings.Builder
		b.WriteByte('{')
		for i, k := range v.Obj.KeyList() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			item, _ := v.Obj.Get(k)
			writeNested(&b, item)
		}
		b.WriteByte('}')
		return b.String()
	case VFunction:
		return "<fn " + v.Fn.Name + ">"
	case VBuiltin:
		return "<builtin>"
	}
	return "null"
}

func writeNested(b *strings.Builder, v Value) {
	if v.Tag == VString {
		b.WriteByte('"')
		b.WriteString(v.Str)
		b.WriteByte('"')
		return
	}
	b.WriteString(ToString(v))
}

// TypeName returns the stable kind name of a value.
func TypeName(v Value) string {
	switch v.Tag {
	case VNull:
		return "null"
	case VBool:
		return "bool"
	case VNumber:
		return "number"
	case VString:
		return "string"
	case VArray:
		return "array"
	case VObject:
		return "object"
	case VFunction, VBuiltin:
		return "function"
	}
	return "unknown"
}
