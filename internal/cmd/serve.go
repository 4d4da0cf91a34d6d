package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"pomodial/internal/server"
	"pomodial/internal/services"
)

// ServeCmd serves the timer TUI over SSH. Each connection gets its own
// independent session.
type ServeCmd struct {
	Host           string `help:"Host to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
	AuthorizedOnly bool   `help:"Require client keys to be in ~/.ssh/authorized_keys"`
	Sound          bool   `help:"Play tones on the server host (default muted: served sessions are remote)"`
	RedrawInterval int    `help:"Minimum milliseconds between redraws" default:"0"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	redrawInterval := int64(s.RedrawInterval)
	if redrawInterval <= 0 {
		redrawInterval = services.DefaultMinRedrawIntervalMs
	}

	srv, err := server.New(server.Options{
		Host:                 s.Host,
		Port:                 s.Port,
		Settings:             cli.Settings().SessionSettings(),
		Mute:                 !s.Sound,
		RequireAuthorizedKey: s.AuthorizedOnly,
		RedrawIntervalMs:     redrawInterval,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
