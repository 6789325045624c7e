package signal

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// callableName derives a deterministic debug name from the connected
// function's symbol. The name disambiguates connections in host-side
// diagnostics; it carries no semantics.
func callableName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("callable<%T>", fn)
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return fmt.Sprintf("callable@%#x", v.Pointer())
	}

	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
