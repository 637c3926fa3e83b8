package jung

import (
	"fmt"
	"os"
	"strings"
)

// File and console I/O, plus the HTTP compatibility sentinels.
func registerFileBuiltins(ip *Interpreter) {
	// readFile(path) -> contents or null
	ip.RegisterBuiltin("readFile", func(_ *Interpreter, args []Value) Value {
		if len(args) < 1 || args[0].Tag != VString {
			return Null
		}
		data, err := os.ReadFile(args[0].Str)
		if err != nil {
			return Null
		}
		return Str(string(data))
	})

	// writeFile(path, content) -> bool
	ip.RegisterBuiltin("writeFile", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VString || args[1].Tag != VString {
			return Bool(false)
		}
		if err := os.WriteFile(args[0].Str, []byte(args[1].Str), 0o644); err != nil {
			return Bool(false)
		}
		return Bool(true)
	})

	// appendFile(path, content) -> bool
	ip.RegisterBuiltin("appendFile", func(_ *Interpreter, args []Value) Value {
		if len(args) < 2 || args[0].Tag != VString || args[1].Tag != VString {
			return Bool(false)
		}
		f, err := os.OpenFile(args[0].Str, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return Bool(false)
		}
		defer f.Close()
		if _, err := f.WriteString(args[1].Str); err != nil {
			return Bool(false)
		}
		return Bool(true)
	})

	// input(prompt?) -> line without the trailing newline
	ip.RegisterBuiltin("input", func(ip *Interpreter, args []Value) Value {
		if len(args) > 0 && args[0].Tag == VString {
			fmt.Fprint(ip.Out, args[0].Str)
		}
		line, err := ip.In.ReadString('\n')
		if err != nil && line == "" {
			return Str("")
		}
		line = strings.TrimRight(line, "\n")
		line = strings.TrimRight(line, "\r")
		return Str(line)
	})

	// HTTP names are registered for source compatibility only.
	httpStub := func(_ *Interpreter, _ []Value) Value {
		fmt.Fprintln(os.Stderr, "http not available")
		return Null
	}
	ip.RegisterBuiltin("httpGet", httpStub)
	ip.RegisterBuiltin("httpPost", httpStub)
}
