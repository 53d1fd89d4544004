package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/openmaterials/auction-engine/internal/infrastructure/config"
	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

// Server is the thin HTTP boundary over the bidding engine. All business
// decisions live in the service; handlers only translate.
type Server struct {
	httpServer *http.Server
	service    bidding.Service
	logger     *zap.Logger
}

// NewServer creates the HTTP server and wires routes.
func NewServer(cfg *config.ServerConfig, service bidding.Service, logger *zap.Logger) *Server {
	s := &Server{
		service: service,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.Handle("POST /v1/auctions/{id}/bids", instrument("submit_bid", http.HandlerFunc(s.handleSubmitBid)))
	mux.Handle("GET /v1/auctions/{id}/minimum-bid", instrument("minimum_bid", http.HandlerFunc(s.handleMinimumBid)))
	mux.Handle("GET /v1/auctions/{id}/bids", instrument("list_bids", http.HandlerFunc(s.handleListBids)))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Start blocks serving requests until shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
