package jung

import (
	"math"
	"sort"
	"strings"

	"github.com/oarkflow/json"
	"gopkg.in/yaml.v3"
)

// Serialization builtins: strict JSON out, JSON/YAML in, with a shared
// bridge between runtime values and plain Go values.

func registerSerializationBuiltins(ip *Interpreter) {
	stringify := func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 {
			return Str("null")
		}
		var b strings.Builder
		writeJSON(&b, args[0])
		return Str(b.String())
	}
	ip.RegisterBuiltin("jsonStringify", stringify)
	ip.RegisterBuiltin("stringify", stringify)

	parse := func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VString {
			return Null
		}
		var v any
		if err := json.Unmarshal([]byte(args[0].Str), &v); err != nil {
			return Null
		}
		return anyToValue(v)
	}
	ip.RegisterBuiltin("jsonParse", parse)
	ip.RegisterBuiltin("parse", parse)

	ip.RegisterBuiltin("yamlStringify", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 {
			return Null
		}
		data, err := yaml.Marshal(valueToAny(args[0]))
		if err != nil {
			return Null
		}
		return Str(string(data))
	})

	ip.RegisterBuiltin("yamlParse", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VString {
			return Null
		}
		var v any
		if err := yaml.Unmarshal([]byte(args[0].Str), &v); err != nil {
			return Null
		}
		return anyToValue(v)
	})
}

// writeJSON renders a value as strict JSON: quoted keys, escaped strings,
// functions and builtins degrade to null.
func writeJSON(b *strings.Builder, v Value) {
	switch v.Tag {
	case VNull, VFunction, VBuiltin:
		b.WriteString("null")
	case VBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case VNumber:
		b.WriteString(FormatNumber(v.Num))
	case VString:
		writeJSONString(b, v.Str)
	case VArray:
		b.WriteByte('[')
		for i, item := range v.Arr.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeJSON(b, item)
		}
		b.WriteByte(']')
	case VObject:
		b.WriteByte('{')
		for i, k := range v.Obj.KeyList() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeJSONString(b, k)
			b.WriteString(": ")
			item, _ := v.Obj.Get(k)
			writeJSON(b, item)
		}
		b.WriteByte('}')
	}
}

func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

// anyToValue converts a decoded Go value into a runtime value. Object keys
// are sorted so decoding is deterministic.
func anyToValue(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case bool:
		return Bool(x)
	case float64:
		if x != math.Trunc(x) {
			return Flt(x)
		}
		return Num(x)
	case int:
		return Num(float64(x))
	case int64:
		return Num(float64(x))
	case string:
		return Str(x)
	case []any:
		items := make([]Value, 0, len(x))
		for _, e := range x {
			items = append(items, anyToValue(e))
		}
		return Arr(items)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := Obj()
		for _, k := range keys {
			obj.Obj.Set(k, anyToValue(x[k]))
		}
		return obj
	}
	return Null
}

// valueToAny converts a runtime value into plain Go data for re-encoding.
func valueToAny(v Value) any {
	switch v.Tag {
	case VBool:
		return v.Bool
	case VNumber:
		return v.Num
	case VString:
		return v.Str
	case VArray:
		out := make([]any, 0, len(v.Arr.Items))
		for _, item := range v.Arr.Items {
			out = append(out, valueToAny(item))
		}
		return out
	case VObject:
		out := make(map[string]any, v.Obj.Len())
		for _, k := range v.Obj.KeyList() {
			item, _ := v.Obj.Get(k)
			out[k] = valueToAny(item)
		}
		return out
	}
	return nil
}
