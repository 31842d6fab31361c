package config

// DisplayQuality selects how much post-processing the renderer applies.
type DisplayQuality int

const (
	QualityLow DisplayQuality = iota
	QualityMedium
	QualityHigh
)

func (q DisplayQuality) String() string {
	switch q {
	case QualityLow:
		return "Low"
	case QualityMedium:
		return "Medium"
	case QualityHigh:
		return "High"
	}
	return "Unknown"
}

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit
	SoundLose
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	// Tone frequency (Hz) and length (seconds) for each generated effect
	Tones map[SoundID]Tone
}

// Tone describes a generated square-wave blip.
type Tone struct {
	Frequency float64
	Duration  float64
	EndFreq   float64 // linear sweep target, 0 = constant
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Qualities      []DisplayQuality
	DefaultQuality DisplayQuality
	MaxVolume      int // volume steps run 0..MaxVolume
	DefaultVolume  int
}

var Audio AudioConfig

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Tones: map[SoundID]Tone{
			SoundHit:          {Frequency: 220, Duration: 0.08, EndFreq: 110},
			SoundLose:         {Frequency: 330, Duration: 0.6, EndFreq: 55},
			SoundMenuNavigate: {Frequency: 660, Duration: 0.03},
			SoundMenuSelect:   {Frequency: 880, Duration: 0.06, EndFreq: 1320},
		},
	}

	SettingsMenu = SettingsMenuConfig{
		Qualities:      []DisplayQuality{QualityLow, QualityMedium, QualityHigh},
		DefaultQuality: QualityMedium,
		MaxVolume:      9,
		DefaultVolume:  7,
	}
}

// VolumeFraction converts a 0..MaxVolume step into a 0..1 gain.
func VolumeFraction(step int) float64 {
	if step <= 0 || SettingsMenu.MaxVolume <= 0 {
		return 0
	}
	if step >= SettingsMenu.MaxVolume {
		return 1
	}
	return float64(step) / float64(SettingsMenu.MaxVolume)
}
