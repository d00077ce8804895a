// Package controller provides output adapters for displaying navhdr results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "aeronib.com/pkg/navhdr/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeInject
	ModeImages
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to page listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithInjectMode sets the UI to header injection mode.
func WithInjectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInject
	}
}

// WithImagesMode sets the UI to gallery image processing mode.
func WithImagesMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeImages
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how workflow progress and results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish
	DisplayMessage(ctx context.Context, message string)
	DisplayPages(ctx context.Context, pages []m.Page) error
	DisplayUpcoming(ctx context.Context, kind string, total int)
	DisplayPageReport(ctx context.Context, report m.PageReport)
	DisplayImageReport(ctx context.Context, report m.ImageReport)
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI returns a TUI when output goes to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
