package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// soundVolume is the gain applied to every effect.
const soundVolume = 0.6

// session holds what every game run shares: configuration, terminal size,
// the logger and the optional sound output.
type session struct {
	cfg     config.BlockfallConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	sound   *audio.SoundManager
	logFile *os.File
}

// loadConfig resolves the config file and applies the difficulty flag.
func loadConfig() (config.BlockfallConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BlockfallConfig{}, err
	}

	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return config.BlockfallConfig{}, err
	}
	config.ApplyBlockfallPreset(&cfg, preset)
	return cfg, nil
}

func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}

	// The TUI owns the terminal, so logs only go to a file
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		s.logFile = f
		s.logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "blockfall",
			Level:           log.DebugLevel,
		})
	}

	s.runtime = core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		s.runtime.ScreenW = w
		s.runtime.ScreenH = h
	}
	s.runtime.Seed = flagSeed

	if flagSound {
		sm := audio.NewSoundManager(soundVolume)
		if initErr := sm.Initialize(); initErr != nil {
			s.logger.Warn("sound disabled", "error", initErr)
		} else {
			s.sound = sm
		}
	}

	return s, nil
}

// play runs one variant until the player quits.
func (s *session) play(gameID string) error {
	seed := s.runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := registry.Create(gameID, s.cfg, seed)
	if err != nil {
		return err
	}

	opts := tui.Options{Logger: s.logger}
	if s.sound != nil {
		opts.Notifier = s.sound
	}

	s.logger.Info("starting game", "game", gameID, "seed", seed,
		"width", s.cfg.Playfield.Width, "height", s.cfg.Playfield.Height)
	return tui.Run(game, s.runtime, opts)
}

// Close releases the sound device and the log file.
func (s *session) Close() {
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}
