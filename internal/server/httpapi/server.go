// Package httpapi exposes the task-management service over HTTP/JSON.
// It is a thin adapter: request parsing, identity resolution and mapping of
// service errors to status codes; business rules live in the services layer.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/go-chi/chi/v5"
)

// UserService is the slice of the user service consumed by the handlers.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TaskService is the slice of the task service consumed by the handlers.
type TaskService interface {
	Create(ctx context.Context, ownerID int64, title, description string, deadline time.Time, completed bool) (*models.Task, error)
	List(ctx context.Context, ownerID int64) ([]*models.Task, error)
	Get(ctx context.Context, id, ownerID int64) (*models.Task, error)
	Update(ctx context.Context, id, ownerID int64, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type Server struct {
	address    string
	logger     logging.Logger
	users      UserService
	tasks      TaskService
	tokens     *auth.TokenService
	corsOrigin string
}

func NewServer(address string, l logging.Logger, us UserService, ts TaskService, tokens *auth.TokenService, corsOrigin string) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "httpapi"),
		users:      us,
		tasks:      ts,
		tokens:     tokens,
		corsOrigin: corsOrigin,
	}
}

// Routes assembles the chi router: public auth endpoints and bearer-protected
// task endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	r.Use(s.cors)

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/tasks", s.handleCreateTask)
		r.Get("/tasks", s.handleListTasks)
		r.Get("/tasks/{taskID}", s.handleGetTask)
		r.Put("/tasks/{taskID}", s.handleUpdateTask)
		r.Delete("/tasks/{taskID}", s.handleDeleteTask)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
