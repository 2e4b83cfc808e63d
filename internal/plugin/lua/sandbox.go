package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/scribe/internal/log"
)

// unsafeGlobals can load code from disk or from strings.
var unsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring"}

// safeModules are the libraries require may return.
var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

func installSandbox(L *lua.LState) {
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(logPrint))
	L.SetGlobal("require", L.NewFunction(safeRequire))
}

// logPrint writes its arguments, tab-separated, to the plugin log.
func logPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	log.Info(log.CatPlugin, strings.Join(parts, "\t"))
	return 0
}

// safeRequire returns an opened library and rejects everything else.
func safeRequire(L *lua.LState) int {
	name := L.CheckString(1)
	if !safeModules[name] {
		L.RaiseError("module %q is not available", name)
		return 0
	}
	L.Push(L.GetGlobal(name))
	return 1
}
