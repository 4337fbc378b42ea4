// pkg/server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultAddr binds every interface on the standard HTTP port.
const DefaultAddr = "0.0.0.0:80"

// Options configures the HTTP server. Zero values are replaced by defaults.
type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	Logger            *logrus.Logger
}

// Server owns the listener and the http.Server serving on it.
type Server struct {
	http     *http.Server
	listener net.Listener
	opts     Options
	log      *logrus.Entry
	errLog   *io.PipeWriter
}

// New constructs a server for handler. It does not bind until Listen is called.
func New(handler http.Handler, opts Options) *Server {
	if handler == nil {
		panic("server.New: handler is nil")
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 15 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 5 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 15 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 15 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	entry := opts.Logger.WithField("instance", uuid.NewString())
	errLog := entry.WriterLevel(logrus.ErrorLevel)

	return &Server{
		opts:   opts,
		log:    entry,
		errLog: errLog,
		http: &http.Server{
			Addr:              opts.Addr,
			Handler:           handler,
			ReadTimeout:       opts.ReadTimeout,
			ReadHeaderTimeout: opts.ReadHeaderTimeout,
			WriteTimeout:      opts.WriteTimeout,
			IdleTimeout:       opts.IdleTimeout,
			ErrorLog:          log.New(errLog, "", 0),
		},
	}
}

// Listen binds the TCP listener. A port already in use or a privileged
// port without permission fails here, before anything is served.
func (s *Server) Listen() error {
	if s.listener != nil {
		return errors.New("server: already listening")
	}
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.opts.Addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.opts.Addr
}

// Serve blocks serving requests until Shutdown. A clean shutdown returns nil.
func (s *Server) Serve() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	s.log.WithField("addr", s.Addr()).Info("server listening")
	if err := s.http.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by ShutdownTimeout. If that fails the server is closed outright.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ShutdownTimeout)
	defer cancel()
	defer s.errLog.Close()

	if err := s.http.Shutdown(ctx); err != nil {
		s.log.WithError(err).Error("graceful shutdown failed, closing")
		if closeErr := s.http.Close(); closeErr != nil {
			s.log.WithError(closeErr).Error("close failed")
		}
		return fmt.Errorf("shutdown: %w", err)
	}
	if s.listener != nil {
		// Serve closes it too; this covers a Listen that was never served.
		_ = s.listener.Close()
	}
	s.log.Info("server shutdown complete")
	return nil
}
