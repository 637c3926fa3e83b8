package jung

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// osExit is swappable so tests can observe the exit builtin.
var osExit = os.Exit

// ---- core builtins: conversions, collections, introspection ----

func registerCoreBuiltins(ip *Interpreter) {
	// str(x) / toString(x)
	str := func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 {
			return Str("")
		}
		return Str(ToString(args[0]))
	}
	ip.RegisterBuiltin("str", str)
	ip.RegisterBuiltin("toString", str)

	// len(x)
	ip.RegisterBuiltin("len", func(_ *Interpreter, args []Value) Value {
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

	// push(arr, item)
	ip.RegisterBuiltin("push", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VArray {
			return Null
		}
		args[0].Arr.Items = append(args[0].Arr.Items, args[1])
		return Null
	})

	// pop(arr)
	ip.RegisterBuiltin("pop", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VArray {
			return Null
		}
		return arrayPop(args[0].Arr)
	})

	// range(n) / range(start, end)
	ip.RegisterBuiltin("range", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 {
			return Arr(nil)
		}
		start, end := 0, 0
		if len(args) == 1 {
			end = int(args[0].Num)
		} else {
			start = int(args[0].Num)
			end = int(args[1].Num)
		}
		items := []Value{}
		for i := start; i < end; i++ {
			items = append(items, Num(float64(i)))
		}
		return Arr(items)
	})

	// int(x): truncates numbers toward zero, parses strings, bool to 0/1
	ip.RegisterBuiltin("int", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 {
			return Num(0)
		}
		switch args[0].Tag {
		case VNumber:
			return Num(float64(int64(args[0].Num)))
		case VString:
			return Num(float64(int64(parseNumberPrefix(args[0].Str))))
		case VBool:
			if args[0].Bool {
				return Num(1)
			}
			return Num(0)
		}
		return Num(0)
	})

	// float(x) / number(x): results are fractional-kind numbers
	toNum := func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 {
			return Flt(0)
		}
		switch args[0].Tag {
		case VNumber:
			return Flt(args[0].Num)
		case VString:
			return Flt(parseNumberPrefix(args[0].Str))
		case VBool:
			if args[0].Bool {
				return Flt(1)
			}
			return Flt(0)
		}
		return Flt(0)
	}
	ip.RegisterBuiltin("float", toNum)
	ip.RegisterBuiltin("number", toNum)

	// type(x)
	ip.RegisterBuiltin("type", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 {
			return Str("null")
		}
		return Str(TypeName(args[0]))
	})

	// slice(str_or_arr, start, end?)
	ip.RegisterBuiltin("slice", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 {
			return Null
		}
		switch args[0].Tag {
		case VString:
			s := args[0].Str
			start, end := sliceBounds(len(s), args)
			if start >= end {
				return Str("")
			}
			return Str(s[start:end])
		case VArray:
			items := args[0].Arr.Items
			start, end := sliceBounds(len(items), args)
			out := []Value{}
			for i := start; i < end; i++ {
				out = append(out, items[i])
			}
			return Arr(out)
		}
		return Null
	})

	// sort(arr): new array, numeric ascending or lexicographic; mixed-type
	// pairs compare as unordered, so where they end up relative to each
	// other is not defined (the sort never fails on them)
	ip.RegisterBuiltin("sort", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VArray {
			return Arr(nil)
		}
		out := append([]Value(nil), args[0].Arr.Items...)
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.Tag == VNumber && b.Tag == VNumber {
				return a.Num < b.Num
			}
			if a.Tag == VString && b.Tag == VString {
				return a.Str < b.Str
			}
			return false
		})
		return Arr(out)
	})

	// reverse(arr): new reversed array
	ip.RegisterBuiltin("reverse", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VArray {
			return Arr(nil)
		}
		items := args[0].Arr.Items
		out := make([]Value, 0, len(items))
		for i := len(items) - 1; i >= 0; i-- {
			out = append(out, items[i])
		}
		return Arr(out)
	})

	// keys(obj) / values(obj) / has(obj, key) / delete(obj, key)
	ip.RegisterBuiltin("keys", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VObject {
			return Arr(nil)
		}
		return args[0].Obj.Keys()
	})
	ip.RegisterBuiltin("values", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VObject {
			return Arr(nil)
		}
		return args[0].Obj.Values()
	})
	ip.RegisterBuiltin("has", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VObject || args[1].Tag != VString {
			return Bool(false)
		}
		return Bool(args[0].Obj.Has(args[1].Str))
	})
	ip.RegisterBuiltin("delete", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VObject || args[1].Tag != VString {
			return Null
		}
		args[0].Obj.Delete(args[1].Str)
		return Null
	})

	// map/filter/reduce are dispatched ahead of the registry; the stubs keep
	// the names resolvable when the argument shapes do not match.
	stub := func(_ *Interpreter, _ []Value) Value { return Null }
	ip.RegisterBuiltin("map", stub)
	ip.RegisterBuiltin("filter", stub)
	ip.RegisterBuiltin("reduce", stub)

	// exit(code?)
	ip.RegisterBuiltin("exit", func(_ *Interpreter, args []Value) Value {
		code := 0
		if len(args) > 0 && args[0].Tag == VNumber {
			code = int(args[0].Num)
		}
		osExit(code)
		return Null
	})
}

func arrayPop(a *ArrayObject) Value {
	if len(a.Items) == 0 {
		return Null
	}
	v := a.Items[len(a.Items)-1]
	a.Items = a.Items[:len(a.Items)-1]
	return v
}

// parseNumberPrefix parses the longest numeric prefix of s, strtod-style.
func parseNumberPrefix(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '+' || c == '-' {
			if i != 0 {
				break
			}
			end = i + 1
			continue
		}
		if c >= '0' && c <= '9' {
			seenDigit = true
			end = i + 1
			continue
		}
		if c == '.' && !strings.ContainsRune(s[:i], '.') {
			end = i + 1
			continue
		}
		break
	}
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// sliceBounds resolves start/end arguments with negative-from-end semantics
// and clamps them to [0, n].
func sliceBounds(n int, args []Value) (int, int) {
	start := int(args[1].Num)
	end := n
	if len(args) >= 3 && args[2].Tag == VNumber {
		end = int(args[2].Num)
	}
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}
