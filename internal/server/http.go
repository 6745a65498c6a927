package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/site-vault/internal/config"
	"github.com/MKhiriev/site-vault/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server *http.Server

	certFile string
	keyFile  string

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
	if cfg.TLSEnabled() {
		srv.certFile = cfg.TLSCertFile
		srv.keyFile = cfg.TLSKeyFile
	}
	return srv
}

func (h *httpServer) tls() bool {
	return h.certFile != "" && h.keyFile != ""
}

func (h *httpServer) RunServer() {
	var err error
	if h.tls() {
		h.logger.Info().Str("address", h.server.Addr).Msg("HTTPS server listening")
		err = h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	} else {
		h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")
		err = h.server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
