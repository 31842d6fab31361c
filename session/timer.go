package session

// WaveTimer is a repeating countdown measured in seconds.
type WaveTimer struct {
	Period  float64
	elapsed float64
}

func NewWaveTimer(period float64) *WaveTimer {
	return &WaveTimer{Period: period}
}

// Tick advances the timer and returns how many periods completed.
func (t *WaveTimer) Tick(dt float64) int {
	if t.Period <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := 0
	for t.elapsed >= t.Period {
		t.elapsed -= t.Period
		n++
	}
	return n
}

// Elapsed returns the time accumulated toward the next completion.
func (t *WaveTimer) Elapsed() float64 {
	return t.elapsed
}

func (t *WaveTimer) Reset() {
	t.elapsed = 0
}
