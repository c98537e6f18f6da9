package taskboard

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/internal/session"
)

// Local backs the board with the embedded database. Operations are scoped
// to the user recorded in the session store.
type Local struct {
	auth       *service.AuthService
	tasks      *service.TaskService
	categories *service.CategoryService
	sessions   *session.Store
}

// NewLocal wires repositories and services over db. Tokens are opaque: local
// mode has no server to verify them, the session just marks who is signed in.
func NewLocal(db *gorm.DB, sessions *session.Store) *Local {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &Local{
		auth:       service.NewAuthService(userRepo, service.OpaqueTokenIssuer{}),
		tasks:      service.NewTaskService(taskRepo, categoryRepo),
		categories: service.NewCategoryService(categoryRepo),
		sessions:   sessions,
	}
}

// owner returns the signed-in user id or ErrNoSession.
func (l *Local) owner() (uint, error) {
	sess := l.sessions.Get()
	if sess == nil || sess.Token == "" {
		return 0, ErrNoSession
	}
	return sess.User.ID, nil
}

func (l *Local) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return l.auth.Register(ctx, name, email, password)
}

func (l *Local) Login(ctx context.Context, email, password string) (*model.Session, error) {
	sess, err := l.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := l.sessions.Set(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (l *Local) Logout() error {
	return l.sessions.Clear()
}

func (l *Local) ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	userID, err := l.owner()
	if err != nil {
		return nil, err
	}
	return l.tasks.List(ctx, userID, filter)
}

func (l *Local) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	userID, err := l.owner()
	if err != nil {
		return nil, err
	}
	return l.tasks.Get(ctx, userID, id)
}

func (l *Local) CreateTask(ctx context.Context, input model.TaskInput) (*model.Task, error) {
	userID, err := l.owner()
	if err != nil {
		return nil, err
	}
	return l.tasks.Create(ctx, userID, input)
}

func (l *Local) UpdateTask(ctx context.Context, id uint, input model.TaskInput) (*model.Task, error) {
	userID, err := l.owner()
	if err != nil {
		return nil, err
	}
	return l.tasks.Update(ctx, userID, id, input)
}

// DeleteTask is idempotent locally: deleting an id that is already gone is
// not an error.
func (l *Local) DeleteTask(ctx context.Context, id uint) error {
	userID, err := l.owner()
	if err != nil {
		return err
	}
	if err := l.tasks.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

func (l *Local) ListCategories(ctx context.Context) ([]model.Category, error) {
	userID, err := l.owner()
	if err != nil {
		return nil, err
	}
	return l.categories.List(ctx, userID)
}

func (l *Local) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	userID, err := l.owner()
	if err != nil {
		return nil, err
	}
	return l.categories.Create(ctx, userID, name)
}

func (l *Local) UpdateCategory(ctx context.Context, id uint, name string) (*model.Category, error) {
	userID, err := l.owner()
	if err != nil {
		return nil, err
	}
	return l.categories.Update(ctx, userID, id, name)
}

func (l *Local) DeleteCategory(ctx context.Context, id uint) error {
	userID, err := l.owner()
	if err != nil {
		return err
	}
	return l.categories.Delete(ctx, userID, id)
}

func (l *Local) Meta() ([]model.Status, []model.Priority) {
	return model.Statuses(), model.Priorities()
}
