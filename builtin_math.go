package jung

import "math"

func registerMathBuiltins(ip *Interpreter) {
	unary := func(f func(float64) float64) BuiltinFn {
		return func(_ *Interpreter, args []Value) Value {
			if len(args) < 1 || args[0].Tag != VNumber {
				return Num(0)
			}
			return Num(f(args[0].Num))
		}
	}
	binary := func(f func(a, b float64) float64) BuiltinFn {
		return func(_ *Interpreter, args []Value) Value {
			if len(args) < 2 || args[0].Tag != VNumber || args[1].Tag != VNumber {
				return Num(0)
			}
			return Num(f(args[0].Num, args[1].Num))
		}
	}

	ip.RegisterBuiltin("abs", unary(math.Abs))
	ip.RegisterBuiltin("floor", unary(math.Floor))
	ip.RegisterBuiltin("ceil", unary(math.Ceil))
	ip.RegisterBuiltin("round", unary(math.Round))
	ip.RegisterBuiltin("sqrt", unary(math.Sqrt))
	ip.RegisterBuiltin("min", binary(math.Min))
	ip.RegisterBuiltin("max", binary(math.Max))
	ip.RegisterBuiltin("pow", binary(math.Pow))
}
