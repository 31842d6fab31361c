package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage removes n hit points, stopping at zero.
func (h *HealthData) Damage(n int) {
	if n <= 0 {
		return
	}
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
}

// Depleted reports whether the actor has no hit points left.
func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

// Fraction returns Current/Max clamped to [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
