package autogradzero

import (
	"testing"

	"github.com/gradir/autogradzero/ir"
)

func TestSeedState(t *testing.T) {
	tests := []struct {
		name string
		typ  ir.Type
		want State
	}{
		{"tensor flagged zero", ir.TensorUndefined(true), Zero},
		{"tensor flagged nonzero", ir.TensorUndefined(false), Nonzero},
		{"unrefined tensor", ir.Tensor(), Unknown},
		{"tensor list", ir.ListOf(ir.Tensor()), Nonzero},
		{"flagged tensor list", ir.ListOf(ir.TensorUndefined(false)), Nonzero},
		{"int list", ir.ListOf(ir.Int), Unknown},
		{"int", ir.Int, Unknown},
		{"bool", ir.Bool, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seedState(tt.typ); got != tt.want {
				t.Errorf("seedState(%s) = %s, want %s", tt.typ, got, tt.want)
			}
		})
	}
}

func TestGuardState(t *testing.T) {
	tests := []struct {
		name string
		typ  ir.Type
		want State
	}{
		{"tensor flagged zero", ir.TensorUndefined(true), Zero},
		{"tensor flagged nonzero", ir.TensorUndefined(false), Nonzero},
		{"unrefined tensor", ir.Tensor(), Unknown},
		{"non-tensor", ir.Bool, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guardState(tt.typ); got != tt.want {
				t.Errorf("guardState(%s) = %s, want %s", tt.typ, got, tt.want)
			}
		})
	}
}

// Values never visited must read back as Unknown, not as a guarantee.
func TestLatticeAbsentEntryIsUnknown(t *testing.T) {
	l := make(lattice)
	v := ir.New().AddInput(ir.Tensor())
	if got := l.state(v); got != Unknown {
		t.Errorf("absent entry = %s, want Unknown", got)
	}
}

func TestStateString(t *testing.T) {
	if Zero.String() != "Zero" || Nonzero.String() != "Nonzero" || Unknown.String() != "Unknown" {
		t.Errorf("unexpected State strings: %s %s %s", Zero, Nonzero, Unknown)
	}
}
