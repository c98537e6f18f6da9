// Package server exposes the task board over HTTP: register/login plus
// owner-scoped task and category CRUD behind bearer-token auth. It is the
// remote peer of the client package and shares its persistence with local
// mode.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// Server bundles the services behind the HTTP handlers.
type Server struct {
	auth       *service.AuthService
	tasks      *service.TaskService
	categories *service.CategoryService
	jwt        *service.JWTManager
}

// New wires repositories and services over db and returns the router.
func New(db *gorm.DB, jwtManager *service.JWTManager, allowedOrigins []string) http.Handler {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	s := &Server{
		auth:       service.NewAuthService(userRepo, jwtManager),
		tasks:      service.NewTaskService(taskRepo, categoryRepo),
		categories: service.NewCategoryService(categoryRepo),
		jwt:        jwtManager,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Route("/task", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/", s.handleListTasks)
		r.Post("/", s.handleCreateTask)
		r.Get("/{id}", s.handleGetTask)
		r.Put("/{id}", s.handleUpdateTask)
		r.Delete("/{id}", s.handleDeleteTask)
	})

	r.Route("/category", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/", s.handleListCategories)
		r.Post("/", s.handleCreateCategory)
		r.Put("/{id}", s.handleUpdateCategory)
		r.Delete("/{id}", s.handleDeleteCategory)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/meta", s.handleMeta)
	})

	return r
}

type metaResponse struct {
	Statuses   []model.Status   `json:"statuses"`
	Priorities []model.Priority `json:"priorities"`
}

// handleMeta lists the fixed status and priority sets.
func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, metaResponse{
		Statuses:   model.Statuses(),
		Priorities: model.Priorities(),
	})
}
