package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"pomodial/internal/adapters/clock"
	"pomodial/internal/adapters/sound"
	"pomodial/internal/domain"
	"pomodial/internal/logging"
	"pomodial/internal/ports"
	"pomodial/internal/services"
	"pomodial/internal/ui"
)

// Options configures the SSH server.
type Options struct {
	Host string
	Port string

	// Settings seed each connection's session; connections never share
	// session state, so no cross-connection locking is needed.
	Settings domain.Settings

	// Mute disables the tone output for served sessions. Server-side audio
	// rarely makes sense, but the flag leaves it possible.
	Mute bool

	// RequireAuthorizedKey restricts access to keys in ~/.ssh/authorized_keys.
	RequireAuthorizedKey bool

	RedrawIntervalMs int64
}

// Server serves the timer TUI over SSH, one independent session per
// connection.
type Server struct {
	opts       Options
	wishServer *ssh.Server
}

// New creates the SSH server.
func New(opts Options) (*Server, error) {
	s := &Server{opts: opts}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	sshDir := filepath.Join(homeDir, ".pomodial", "ssh")
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}
	hostKeyPath := filepath.Join(sshDir, "id_ed25519")

	serverOpts := []ssh.Option{
		wish.WithAddress(fmt.Sprintf("%s:%s", opts.Host, opts.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		// Middleware executes in reverse order (last to first)
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	}
	if opts.RequireAuthorizedKey {
		serverOpts = append(serverOpts, wish.WithPublicKeyAuth(authorizedKeyAuth))
	}

	wishServer, err := wish.NewServer(serverOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", fmt.Sprintf("%s:%s", s.opts.Host, s.opts.Port))
	fmt.Printf("SSH server listening on %s:%s\n", s.opts.Host, s.opts.Port)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logging.Logger.Info("SSH server stopped")
	return nil
}

// teaHandler creates an independent timer session for each SSH connection.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logging.Logger.Info("New SSH session",
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	var tones *sound.Player
	if !s.opts.Mute {
		tones = sound.NewPlayer()
	}

	session := services.NewSession(s.opts.Settings, toneOutputOrNil(tones))
	model := ui.NewModel(session, clock.NewMonotonic(), s.opts.RedrawIntervalMs)

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// toneOutputOrNil keeps a nil player from becoming a non-nil interface.
func toneOutputOrNil(p *sound.Player) ports.ToneOutput {
	if p == nil {
		return nil
	}
	return p
}
