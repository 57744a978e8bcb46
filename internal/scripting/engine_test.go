package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"cavecrawler/internal/system"
)

const flatDamage = `
function calc_damage(attack, defense, roll)
  return attack * 2 - defense
end
`

func TestCalcDamage(t *testing.T) {
	e, err := NewEngineFromString(flatDamage, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()
	if !e.HasDamage() {
		t.Fatal("calc_damage not registered")
	}
	cases := []struct {
		attack, defense int
		want            int
	}{
		{10, 0, 20},
		{10, 5, 15},
		{1, 4, -2},
	}
	for _, c := range cases {
		got, err := e.CalcDamage(c.attack, c.defense, 0.5)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("CalcDamage(%d, %d) = %d, want %d", c.attack, c.defense, got, c.want)
		}
	}
}

func TestDamageFuncFallsBack(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing function", `x = 1`},
		{"runtime error", `function calc_damage(a, d, r) error("boom") end`},
		{"non-number", `function calc_damage(a, d, r) return "lots" end`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngineFromString(tt.src, nil)
			if err != nil {
				t.Fatal(err)
			}
			defer e.Close()
			fn := e.DamageFunc(nil)
			if got, want := fn(10, 2, 0.5), system.BaseDamage(10, 2, 0.5); got != want {
				t.Errorf("got %d, want fallback %d", got, want)
			}
		})
	}
}

func TestNewEngineFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "damage.lua")
	if err := os.WriteFile(path, []byte(flatDamage), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := NewEngine(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()
	if got := e.DamageFunc(nil)(3, 1, 0); got != 5 {
		t.Errorf("damage = %d, want 5", got)
	}
	if _, err := NewEngine(filepath.Join(t.TempDir(), "missing.lua"), nil); err == nil {
		t.Error("expected an error for a missing script")
	}
	if _, err := NewEngineFromString("function (", nil); err == nil {
		t.Error("expected a syntax error")
	}
}
