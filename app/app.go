package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/logging"
	"github.com/devu-community/chatsview/devserver"
	"github.com/devu-community/chatsview/middleware"
	"github.com/devu-community/chatsview/util"
)

// App represents the main application with all its servers and dependencies
type App struct {
	config     *util.AppConfig
	sshServer  *ssh.Server
	httpServer *http.Server
	store      *devserver.Store
	done       chan os.Signal
}

// New creates a new App instance with the given configuration
func New(conf *util.AppConfig) (*App, error) {
	return &App{
		config: conf,
		done:   make(chan os.Signal, 1),
	}, nil
}

// Initialize sets up the SSH server and, when enabled, the local forum API
func (a *App) Initialize() error {
	if a.config.Conf.WithDevServer {
		if err := a.initDevServer(); err != nil {
			return err
		}
	}

	sshKeyPath := util.ResolveFilePathWithSubdir(".ssh", util.Name+"hostkey")
	log.Printf("Using SSH host key at: %s", sshKeyPath)

	sshServer, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf("%s:%d", a.config.Conf.Host, a.config.Conf.SshPort)),
		wish.WithHostKeyPath(sshKeyPath),
		wish.WithPublicKeyAuth(func(ssh.Context, ssh.PublicKey) bool { return true }),
		wish.WithMiddleware(
			middleware.MainTui(a.config),
			middleware.AuthMiddleware(a.config),
			logging.MiddlewareWithLogger(log.Default()),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}
	a.sshServer = sshServer

	return nil
}

// initDevServer opens and seeds the local store and serves the forum API from it
func (a *App) initDevServer() error {
	ctx := context.Background()

	log.Printf("Opening dev store at %s", a.config.Conf.DevServerDsn)
	store, err := devserver.NewStore(ctx, a.config.Conf.DevServerDsn)
	if err != nil {
		return fmt.Errorf("failed to open dev store: %w", err)
	}
	if err := store.Seed(ctx); err != nil {
		store.Close()
		return fmt.Errorf("failed to seed dev store: %w", err)
	}
	a.store = store

	a.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", a.config.Conf.Host, a.config.Conf.HttpPort),
		Handler: devserver.Router(store, devserver.DefaultRouterConfig()),
	}
	return nil
}

// Start starts all servers and blocks until a shutdown signal is received
func (a *App) Start() error {
	signal.Notify(a.done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Starting SSH server on %s:%d", a.config.Conf.Host, a.config.Conf.SshPort)
	go func() {
		if err := a.sshServer.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Fatalf("SSH server error: %v", err)
		}
	}()

	if a.httpServer != nil {
		log.Printf("Starting dev API server on %s", a.httpServer.Addr)
		go func() {
			if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("HTTP server error: %v", err)
			}
		}()
	}

	<-a.done
	log.Println("Shutdown signal received")

	return a.Shutdown()
}

// Shutdown gracefully stops all servers with a 30 second timeout
func (a *App) Shutdown() error {
	log.Println("Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var shutdownErr error

	log.Println("Stopping SSH server...")
	if err := a.sshServer.Shutdown(ctx); err != nil {
		log.Printf("SSH server shutdown error: %v", err)
		shutdownErr = err
	} else {
		log.Println("SSH server stopped gracefully")
	}

	if a.httpServer != nil {
		log.Println("Stopping HTTP server...")
		if err := a.httpServer.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
			if shutdownErr == nil {
				shutdownErr = err
			}
		} else {
			log.Println("HTTP server stopped gracefully")
		}
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("Dev store close error: %v", err)
		}
	}

	log.Println("All servers stopped")
	return shutdownErr
}
