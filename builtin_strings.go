package jung

import "strings"

// String/array/object operations, including the `__method_*` forms reached
// through member-call dispatch on non-class receivers.
func registerStringBuiltins(ip *Interpreter) {
	// split(s, delim): empty delimiter splits into characters
	ip.RegisterBuiltin("split", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VString || args[1].Tag != VString {
			return Arr(nil)
		}
		s, d := args[0].Str, args[1].Str
		var out []Value
		if d == "" {
			for i := 0; i < len(s); i++ {
				out = append(out, Str(s[i:i+1]))
			}
			return Arr(out)
		}
		for _, part := range strings.Split(s, d) {
			out = append(out, Str(part))
		}
		return Arr(out)
	})

	// join(arr, sep): non-string elements coerced via rendering
	ip.RegisterBuiltin("join", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VArray || args[1].Tag != VString {
			return Str("")
		}
		parts := make([]string, 0, len(args[0].Arr.Items))
		for _, item := range args[0].Arr.Items {
			parts = append(parts, ToString(item))
		}
		return Str(strings.Join(parts, args[1].Str))
	})

	// string methods
	ip.RegisterBuiltin("__method_upper", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VString {
			return Str("")
		}
		return Str(strings.ToUpper(args[0].Str))
	})
	ip.RegisterBuiltin("__method_lower", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VString {
			return Str("")
		}
		return Str(strings.ToLower(args[0].Str))
	})
	ip.RegisterBuiltin("__method_trim", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VString {
			return Str("")
		}
		return Str(strings.TrimSpace(args[0].Str))
	})
	ip.RegisterBuiltin("__method_contains", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VString || args[1].Tag != VString {
			return Bool(false)
		}
		return Bool(strings.Contains(args[0].Str, args[1].Str))
	})
	ip.RegisterBuiltin("__method_replace", func(_ *Interpreter, args []Value) Value {
		if len(args) < 3 || args[0].Tag != VString ||
			args[1].Tag != VString || args[2].Tag != VString {
			if len(args) >= 1 {
				return args[0]
			}
			return Str("")
		}
		if args[1].Str == "" {
			return args[0]
		}
		return Str(strings.ReplaceAll(args[0].Str, args[1].Str, args[2].Str))
	})
	ip.RegisterBuiltin("__method_indexOf", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 {
			return Num(-1)
		}
		if args[0].Tag == VString && args[1].Tag == VString {
			return Num(float64(strings.Index(args[0].Str, args[1].Str)))
		}
		if args[0].Tag == VArray {
			for i, item := range args[0].Arr.Items {
				if Equal(item, args[1]) {
					return Num(float64(i))
				}
			}
			return Num(-1)
		}
		return Num(-1)
	})

	// array methods
	ip.RegisterBuiltin("__method_includes", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VArray {
			return Bool(false)
		}
		for _, item := range args[0].Arr.Items {
			if Equal(item, args[1]) {
				return Bool(true)
			}
		}
		return Bool(false)
	})
	ip.RegisterBuiltin("__method_flat", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VArray {
			return Arr(nil)
		}
		out := []Value{}
		for _, item := range args[0].Arr.Items {
			if item.Tag == VArray {
				out = append(out, item.Arr.Items...)
			} else {
				out = append(out, item)
			}
		}
		return Arr(out)
	})
	ip.RegisterBuiltin("__method_concat", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VArray || args[1].Tag != VArray {
			if len(args) >= 1 && args[0].Tag == VArray {
				return args[0]
			}
			return Arr(nil)
		}
		out := make([]Value, 0, len(args[0].Arr.Items)+len(args[1].Arr.Items))
		out = append(out, args[0].Arr.Items...)
		out = append(out, args[1].Arr.Items...)
		return Arr(out)
	})
	ip.RegisterBuiltin("__method_push", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VArray {
			return Null
		}
		args[0].Arr.Items = append(args[0].Arr.Items, args[1])
		return Null
	})
	ip.RegisterBuiltin("__method_pop", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VArray {
			return Null
		}
		return arrayPop(args[0].Arr)
	})
	ip.RegisterBuiltin("__method_length", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 {
			return Num(0)
		}
		switch args[0].Tag {
		case VString:
			return Num(float64(len(args[0].Str)))
		case VArray:
			return Num(float64(len(args[0].Arr.Items)))
		case VObject:
			return Num(float64(args[0].Obj.Len()))
		}
		return Num(0)
	})

	// object methods
	ip.RegisterBuiltin("__method_keys", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VObject {
			return Arr(nil)
		}
		return args[0].Obj.Keys()
	})
	ip.RegisterBuiltin("__method_values", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VObject {
			return Arr(nil)
		}
		return args[0].Obj.Values()
	})
	ip.RegisterBuiltin("__method_has", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VObject || args[1].Tag != VString {
			return Bool(false)
		}
		return Bool(args[0].Obj.Has(args[1].Str))
	})
}
