package jung

import (
	"time"

	"github.com/oarkflow/date"
)

var processStart = time.Now()

func registerTimeBuiltins(ip *Interpreter) {
	// time() -> seconds since the Unix epoch
	ip.RegisterBuiltin("time", func(_ *Interpreter, _ []Value) Value {
		return Num(float64(time.Now().UnixNano()) / 1e9)
	})

	// clock() -> seconds of execution time
	ip.RegisterBuiltin("clock", func(_ *Interpreter, _ []Value) Value {
		return Num(time.Since(processStart).Seconds())
	})

	// parseTime(s) -> epoch seconds, or null when the string has no
	// recognizable date form
	ip.RegisterBuiltin("parseTime", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VString {
			return Null
		}
		t, err := date.Parse(args[0].Str)
		if err != nil {
			return Null
		}
		return Num(float64(t.Unix()))
	})
}
