package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type TrainSpinner []string

var (
	TrainEmojis TrainSpinner = []string{"🚝", "🚅", "🚄", "🚇", "🚞", "🚈", "🚉", "🚂", "🚃", "🚊", "🚋"}
)

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var s *spinner.Spinner

// StartSpinner shows a spinner on stderr. Nothing is drawn when stderr is
// not a terminal.
func StartSpinner(cfg *SpinnerCfg) {
	if !IsTerminal(os.Stderr) {
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = TrainEmojis
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stderr

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	if s == nil {
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	s = nil
}
