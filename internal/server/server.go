//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/claims"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/config"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/storage"
)

// Items is the descriptive side of the catalogue.
type Items interface {
	Report(ctx context.Context, ownerID string, input storage.ItemInput) (*repository.Item, error)
	Get(ctx context.Context, id string) (*repository.Item, error)
	Update(ctx context.Context, id, ownerID string, input storage.ItemInput) (*repository.Item, error)
	Delete(ctx context.Context, id, ownerID string) error
	List(ctx context.Context, filter repository.ItemFilter, page, limit int) ([]*repository.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*repository.Item, error)
	AttachImage(ctx context.Context, id, ownerID, imageRef string) error
}

// Engine is the claim lifecycle state machine.
type Engine interface {
	FileClaim(ctx context.Context, itemID, claimantID string, contact claims.Contact) error
	ResolveClaim(ctx context.Context, token string, decision claims.Decision) error
}

// Users is the identity provider.
type Users interface {
	Create(ctx context.Context, firstName, lastName, email, password, phone string) (*repository.User, error)
	GetByID(ctx context.Context, id string) (*repository.User, error)
	Authenticate(ctx context.Context, email, password string) (*repository.User, error)
}

type Server struct {
	items        Items
	engine       Engine
	users        Users
	images       *storage.ImageStore
	auth         config.AuthConfig
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(items Items, engine Engine, users Users, images *storage.ImageStore, auth config.AuthConfig, audit *AuditManager, logger *zap.Logger) *Server {
	return &Server{
		items:        items,
		engine:       engine,
		users:        users,
		images:       images,
		auth:         auth,
		AuditManager: audit,
		logger:       logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler())

	if s.images != nil {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.images.Dir()))))
	}

	// Token resolution is unauthenticated: the token is the credential.
	r.HandleFunc("/claim/accept/{token}", s.handleAcceptClaim).Methods(http.MethodPut)
	r.HandleFunc("/claim/reject/{token}", s.handleRejectClaim).Methods(http.MethodPut)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/users/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/users/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/items", s.handleListItems).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", s.handleGetItem).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)
	authed.HandleFunc("/users/me", s.handleMe).Methods(http.MethodGet)
	authed.HandleFunc("/users/me/items", s.handleMyItems).Methods(http.MethodGet)
	authed.HandleFunc("/items", s.handleReportItem).Methods(http.MethodPost)
	authed.HandleFunc("/items/{id}", s.handleUpdateItem).Methods(http.MethodPut)
	authed.HandleFunc("/items/{id}", s.handleDeleteItem).Methods(http.MethodDelete)
	authed.HandleFunc("/items/{id}/images", s.handleUploadImage).Methods(http.MethodPost)
	authed.HandleFunc("/items/{id}/claim", s.handleFileClaim).Methods(http.MethodPost)

	return s.auditLogMiddleware(r)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps the engine taxonomy onto HTTP statuses. Unknown
// and consumed tokens share one message so the endpoints cannot be probed
// for claim existence.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, claims.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, claims.ErrInvalidToken):
		respondError(w, http.StatusBadRequest, "invalid or unknown token")
	case errors.Is(err, claims.ErrNotFound):
		respondError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, claims.ErrForbidden):
		respondError(w, http.StatusForbidden, "not allowed")
	case errors.Is(err, claims.ErrConflict):
		respondError(w, http.StatusConflict, "item is not in the required state")
	case errors.Is(err, claims.ErrExpiredToken):
		respondError(w, http.StatusGone, "token expired")
	default:
		s.logger.Error("internal error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
