package config

import "time"

// DifficultyManager derives the level and auto-drop interval from progress.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// StartLevel returns the level a fresh game begins at.
func (d *DifficultyManager) StartLevel() int {
	return max(d.cfg.StartLevel, 0)
}

// IsEnabled returns whether level progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the level reached after clearing the given number of lines.
func (d *DifficultyManager) Level(lines int) int {
	start := d.StartLevel()
	if !d.IsEnabled() {
		return start
	}

	perLevel := d.cfg.Progression.LinesPerLevel
	if perLevel <= 0 {
		perLevel = 10 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "lines", "":
		return start + lines/perLevel
	default:
		return start
	}
}

// Interval returns the auto-drop interval for a level:
// base - level*step, floored at min, and pinned to min past the level cap.
func (d *DifficultyManager) Interval(level int) time.Duration {
	s := d.cfg.Speed
	ms := s.BaseIntervalMS - level*s.StepMS
	if ms <= 0 || (s.LevelCap > 0 && level > s.LevelCap) {
		ms = s.MinIntervalMS
	}
	ms = max(ms, s.MinIntervalMS)
	return time.Duration(ms) * time.Millisecond
}
