// Package scripting wraps a gopher-lua VM that drives world setup and
// spawn tuning. Every bridge has a Go fallback so a missing or broken
// script degrades to built-in defaults instead of halting the game.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for game logic execution.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	worldPath := filepath.Join(scriptsDir, "world")
	if err := e.loadDir(worldPath); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load world scripts: %w", err)
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// BlueprintBlock is one placed block in the player ship layout.
type BlueprintBlock struct {
	Block string // block name in the block table
	X, Y  int    // tile coordinates relative to the core
}

// defaultBlueprint is used when the Lua blueprint is missing or invalid.
func defaultBlueprint() []BlueprintBlock {
	return []BlueprintBlock{
		{Block: "core", X: 0, Y: 0},
		{Block: "miner", X: -1, Y: 0},
		{Block: "laser", X: 1, Y: 0},
		{Block: "cooler", X: 0, Y: 1},
	}
}

// ShipBlueprint calls the Lua ship_blueprint function and returns the
// block layout for the player ship.
func (e *Engine) ShipBlueprint() []BlueprintBlock {
	fn := e.vm.GetGlobal("ship_blueprint")
	if fn == lua.LNil {
		e.log.Warn("lua function ship_blueprint not found, using default layout")
		return defaultBlueprint()
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}); err != nil {
		e.log.Error("lua ship_blueprint error", zap.Error(err))
		return defaultBlueprint()
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua ship_blueprint returned non-table")
		return defaultBlueprint()
	}

	var blocks []BlueprintBlock
	rt.ForEach(func(_, v lua.LValue) {
		if row, ok := v.(*lua.LTable); ok {
			blocks = append(blocks, BlueprintBlock{
				Block: lStr(row, "block"),
				X:     lInt(row, "x"),
				Y:     lInt(row, "y"),
			})
		}
	})
	if len(blocks) == 0 {
		e.log.Error("lua ship_blueprint returned empty layout")
		return defaultBlueprint()
	}
	return blocks
}

// SpawnRoll calls the Lua spawn_roll function to decide whether the
// next asteroid spawn is an attack run. ok is false when no script
// provides the function, in which case the caller applies its own
// default roll.
func (e *Engine) SpawnRoll(level, maxLevel int) (attack bool, ok bool) {
	fn := e.vm.GetGlobal("spawn_roll")
	if fn == lua.LNil {
		return false, false
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(level), lua.LNumber(maxLevel)); err != nil {
		e.log.Error("lua spawn_roll error", zap.Error(err))
		return false, false
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return result == lua.LTrue, true
}

// --- Lua helpers ---

// lInt reads an integer field from a Lua table.
func lInt(t *lua.LTable, key string) int {
	return int(lua.LVAsNumber(t.RawGetString(key)))
}

// lStr reads a string field from a Lua table.
func lStr(t *lua.LTable, key string) string {
	return lua.LVAsString(t.RawGetString(key))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
