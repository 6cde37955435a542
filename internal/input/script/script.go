// Package script loads binding collections from Lua configuration
// scripts. Scripts run in a sandboxed state with only the base, table,
// string, and math libraries opened, and declare bindings through two
// globals:
//
//	bind("LeftCtrl+S", "save", "Save the current file")
//	bind("Pad0:South", "jump")
//	disable("jump")
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/internal/input/binding"
	"github.com/dshills/keychord/internal/input/key"
)

// Engine evaluates binding scripts. Each load runs in a fresh Lua state,
// so scripts cannot observe one another.
type Engine struct{}

// NewEngine creates a script engine.
func NewEngine() *Engine {
	return &Engine{}
}

// LoadFile evaluates a Lua script file into a fresh collection.
func (e *Engine) LoadFile(path string) (*binding.Collection, error) {
	return e.load(path, func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// LoadString evaluates Lua source into a fresh collection.
func (e *Engine) LoadString(src string) (*binding.Collection, error) {
	return e.load("<string>", func(L *lua.LState) error {
		return L.DoString(src)
	})
}

func (e *Engine) load(source string, run func(*lua.LState) error) (*binding.Collection, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})
	defer L.Close()

	openSafeLibraries(L)

	c := binding.NewCollection()

	L.SetGlobal("bind", L.NewFunction(func(L *lua.LState) int {
		spec := L.CheckString(1)
		action := L.CheckString(2)
		desc := L.OptString(3, "")

		chord, err := key.ParseChord(spec)
		if err != nil {
			L.RaiseError("bind(%q): %s", spec, err.Error())
			return 0
		}

		c.Add(binding.New(chord, binding.NewAction(action, desc)))
		return 0
	}))

	L.SetGlobal("disable", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(lua.LBool(c.SetEnabled(name, false)))
		return 1
	}))

	if err := run(L); err != nil {
		return nil, fmt.Errorf("bindings script %s: %w", source, err)
	}
	return c, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug, and package stay closed: binding scripts have no
	// business touching the file system or the host process.
}
