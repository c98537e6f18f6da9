// Package taskboard is the surface UI pages call into: auth plus
// owner-scoped task/category CRUD, with two interchangeable backing
// strategies. Local keeps everything in an embedded database; remote proxies
// to the HTTP API. Both read and write the same session store.
package taskboard

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/client"
	"taskboard/internal/config"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/session"
)

// ErrNoSession is returned when an owner-scoped operation runs while logged
// out. Route guards should check IsAuthenticated before calling in.
var ErrNoSession = errors.New("not logged in")

// Board is the repository surface shared by both strategies. Status and
// priority sets are fixed; Meta exposes them for pickers.
type Board interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.Session, error)
	Logout() error

	ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	GetTask(ctx context.Context, id uint) (*model.Task, error)
	CreateTask(ctx context.Context, input model.TaskInput) (*model.Task, error)
	UpdateTask(ctx context.Context, id uint, input model.TaskInput) (*model.Task, error)
	DeleteTask(ctx context.Context, id uint) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	Meta() ([]model.Status, []model.Priority)
}

// New builds the board for the configured mode. Local mode opens (and seeds)
// the embedded database; remote mode only needs the base URL.
func New(cfg config.Config, sessions *session.Store) (Board, error) {
	switch cfg.Mode {
	case config.ModeRemote:
		return NewRemote(client.New(cfg.RemoteBaseURL, sessions)), nil
	case config.ModeLocal:
		db, err := repository.NewDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewLocal(db, sessions), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

var _ Board = (*Local)(nil)
var _ Board = (*Remote)(nil)
