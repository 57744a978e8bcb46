// Package scripting runs optional Lua overrides of combat formulas.
package scripting

import (
	"fmt"

	"cavecrawler/internal/system"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

const damageFn = "calc_damage"

// Engine wraps a single gopher-lua VM. Single-goroutine access only: each
// session owns its own engine.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

func newEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, log: log}
}

// NewEngine loads the script at path.
func NewEngine(path string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.vm.DoFile(path); err != nil {
		e.vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return e, nil
}

// NewEngineFromString loads a script from source.
func NewEngineFromString(src string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.vm.DoString(src); err != nil {
		e.vm.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	return e, nil
}

// Close releases the VM.
func (e *Engine) Close() { e.vm.Close() }

// HasDamage reports whether the script defines calc_damage.
func (e *Engine) HasDamage() bool {
	return e.vm.GetGlobal(damageFn).Type() == lua.LTFunction
}

// CalcDamage calls calc_damage(attack, defense, roll) and returns its number.
func (e *Engine) CalcDamage(attack, defense int, roll float64) (int, error) {
	fn := e.vm.GetGlobal(damageFn)
	if fn.Type() != lua.LTFunction {
		return 0, fmt.Errorf("lua function %s not found", damageFn)
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(attack), lua.LNumber(defense), lua.LNumber(roll)); err != nil {
		return 0, fmt.Errorf("lua %s: %w", damageFn, err)
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("lua %s returned %s, want number", damageFn, ret.Type())
	}
	return int(n), nil
}

// DamageFunc adapts the script to the rules' damage hook. Script errors are
// logged and the fallback formula is used for that attack.
func (e *Engine) DamageFunc(fallback system.DamageFunc) system.DamageFunc {
	if fallback == nil {
		fallback = system.BaseDamage
	}
	return func(attack, defense int, roll float64) int {
		dmg, err := e.CalcDamage(attack, defense, roll)
		if err != nil {
			e.log.Error("scripted damage failed", zap.Error(err))
			return fallback(attack, defense, roll)
		}
		return dmg
	}
}
