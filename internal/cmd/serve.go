package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"codetally/internal/adapters/httpapi"
	"codetally/internal/adapters/sshwatch"
	"codetally/internal/config"
	"codetally/internal/logging"
)

// ServeCmd runs the HTTP API, the progress keep-alive loop and the optional SSH watcher
type ServeCmd struct {
	Addr    string `help:"HTTP listen address" default:"127.0.0.1:3001"`
	SSHAddr string `help:"SSH watcher listen address (empty disables it)" name:"ssh-addr"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := cli.Container
	httpServer := httpapi.NewServer(s.Addr, container.ScanService, container.Registry, container.Store)

	var sshServer *sshwatch.Server
	if s.SSHAddr != "" {
		var err error
		sshServer, err = sshwatch.NewServer(s.SSHAddr, container.Registry)
		if err != nil {
			return err
		}
	}

	fmt.Printf("HTTP server listening on %s\n", s.Addr)
	if sshServer != nil {
		fmt.Printf("SSH watcher listening on %s\n", s.SSHAddr)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return container.Registry.Run(ctx)
	})
	g.Go(func() error {
		return httpServer.Run(ctx)
	})
	if sshServer != nil {
		g.Go(func() error {
			return sshServer.Run(ctx)
		})
	}

	err := g.Wait()
	logging.Logger.Info("Server stopped", "error", err)
	return err
}

// applySettings fills flags left at their defaults from settings.json
func (s *ServeCmd) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	if s.Addr == config.DefaultListenAddr && settings.ListenAddr != "" {
		s.Addr = settings.ListenAddr
	}
	if s.SSHAddr == "" && settings.SSHAddr != "" {
		s.SSHAddr = settings.SSHAddr
	}
}
