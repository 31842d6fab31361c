package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file fails validation.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning overrides gameplay constants from a YAML file. Nil fields keep the
// compiled-in defaults.
type Tuning struct {
	Arena  *ArenaTuning  `yaml:"arena"`
	Player *PlayerTuning `yaml:"player"`
	Enemy  *EnemyTuning  `yaml:"enemy"`
	Wave   *WaveTuning   `yaml:"wave"`
}

type ArenaTuning struct {
	Left   *float64 `yaml:"left"`
	Right  *float64 `yaml:"right"`
	Bottom *float64 `yaml:"bottom"`
	Top    *float64 `yaml:"top"`
}

type PlayerTuning struct {
	Size   *float64 `yaml:"size"`
	Speed  *float64 `yaml:"speed"`
	Health *int     `yaml:"health"`
	StartX *float64 `yaml:"startX"`
	StartY *float64 `yaml:"startY"`
}

type EnemyTuning struct {
	Size   *float64 `yaml:"size"`
	Speed  *float64 `yaml:"speed"`
	Health *int     `yaml:"health"`
	Damage *int     `yaml:"damage"`
}

type WaveTuning struct {
	IntervalSeconds  *float64 `yaml:"intervalSeconds"`
	SpawnPerWave     *int     `yaml:"spawnPerWave"`
	MinSpawnDistance *float64 `yaml:"minSpawnDistance"`
}

// LoadTuning reads and validates a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes and validates tuning YAML.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the tuning merged over the current defaults.
func (t *Tuning) Validate() error {
	arena, player, enemy, wave := t.merged()

	if arena.Left >= arena.Right {
		return fmt.Errorf("%w: arena left %.1f must be less than right %.1f", ErrInvalidTuning, arena.Left, arena.Right)
	}
	if arena.Bottom >= arena.Top {
		return fmt.Errorf("%w: arena bottom %.1f must be less than top %.1f", ErrInvalidTuning, arena.Bottom, arena.Top)
	}
	if player.Size <= 0 {
		return fmt.Errorf("%w: player size must be positive, got %.1f", ErrInvalidTuning, player.Size)
	}
	if player.Speed <= 0 {
		return fmt.Errorf("%w: player speed must be positive, got %.1f", ErrInvalidTuning, player.Speed)
	}
	if player.Health <= 0 {
		return fmt.Errorf("%w: player health must be positive, got %d", ErrInvalidTuning, player.Health)
	}
	if player.Size >= arena.Width() || player.Size >= arena.Height() {
		return fmt.Errorf("%w: player size %.1f does not fit the arena", ErrInvalidTuning, player.Size)
	}
	if enemy.Size <= 0 {
		return fmt.Errorf("%w: enemy size must be positive, got %.1f", ErrInvalidTuning, enemy.Size)
	}
	if enemy.Speed <= 0 {
		return fmt.Errorf("%w: enemy speed must be positive, got %.2f", ErrInvalidTuning, enemy.Speed)
	}
	if enemy.Damage < 0 {
		return fmt.Errorf("%w: enemy damage cannot be negative, got %d", ErrInvalidTuning, enemy.Damage)
	}
	if wave.IntervalSeconds <= 0 {
		return fmt.Errorf("%w: wave interval must be positive, got %.2f", ErrInvalidTuning, wave.IntervalSeconds)
	}
	if wave.SpawnPerWave < 0 {
		return fmt.Errorf("%w: spawn per wave cannot be negative, got %d", ErrInvalidTuning, wave.SpawnPerWave)
	}
	if wave.MinSpawnDistance < 0 {
		return fmt.Errorf("%w: min spawn distance cannot be negative, got %.1f", ErrInvalidTuning, wave.MinSpawnDistance)
	}
	return nil
}

// Apply writes the overrides into the global configuration.
func (t *Tuning) Apply() {
	Arena, Player, Enemy, Wave = t.merged()
}

func (t *Tuning) merged() (ArenaConfig, PlayerConfig, EnemyConfig, WaveConfig) {
	arena, player, enemy, wave := Arena, Player, Enemy, Wave

	if a := t.Arena; a != nil {
		setFloat(&arena.Left, a.Left)
		setFloat(&arena.Right, a.Right)
		setFloat(&arena.Bottom, a.Bottom)
		setFloat(&arena.Top, a.Top)
	}
	if p := t.Player; p != nil {
		setFloat(&player.Size, p.Size)
		setFloat(&player.Speed, p.Speed)
		setInt(&player.Health, p.Health)
		setFloat(&player.StartX, p.StartX)
		setFloat(&player.StartY, p.StartY)
	}
	if e := t.Enemy; e != nil {
		setFloat(&enemy.Size, e.Size)
		setFloat(&enemy.Speed, e.Speed)
		setInt(&enemy.Health, e.Health)
		setInt(&enemy.Damage, e.Damage)
	}
	if w := t.Wave; w != nil {
		setFloat(&wave.IntervalSeconds, w.IntervalSeconds)
		setInt(&wave.SpawnPerWave, w.SpawnPerWave)
		setFloat(&wave.MinSpawnDistance, w.MinSpawnDistance)
	}
	return arena, player, enemy, wave
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
