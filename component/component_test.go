package component

import (
	"testing"

	"github.com/lixenwraith/stress-bomb/parameter"
)

func TestParseWeaponKind(t *testing.T) {
	tests := []struct {
		name string
		want WeaponKind
		ok   bool
	}{
		{"bomb", WeaponImpact, true},
		{"impact", WeaponImpact, true},
		{"dart", WeaponPiercing, true},
		{"piercing", WeaponPiercing, true},
		{"arrow", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseWeaponKind(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseWeaponKind(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}

	for _, k := range []WeaponKind{WeaponImpact, WeaponPiercing} {
		if got, ok := ParseWeaponKind(k.String()); !ok || got != k {
			t.Errorf("round trip of %v failed", k)
		}
	}
	if WeaponKind(9).String() != "unknown" {
		t.Error("unregistered kind should print unknown")
	}
}

func TestChargeStateRatio(t *testing.T) {
	cs := ChargeState{Power: parameter.PowerMax / 2}
	if cs.Ratio() != 0.5 {
		t.Errorf("Ratio() = %f, want 0.5", cs.Ratio())
	}
	cs.Power = parameter.PowerMax
	if cs.Ratio() != 1 {
		t.Errorf("Ratio() = %f, want 1", cs.Ratio())
	}
}

func TestChargeStateCanCharge(t *testing.T) {
	tests := []struct {
		name      string
		reloading bool
		idle      bool
		want      bool
	}{
		{"ready", false, true, true},
		{"reloading", true, false, false},
		{"reload done but no weapon yet", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := ChargeState{Reloading: tt.reloading}
			if tt.idle {
				cs.Idle = 1
			}
			if got := cs.CanCharge(); got != tt.want {
				t.Errorf("CanCharge() = %v, want %v", got, tt.want)
			}
		})
	}
}
