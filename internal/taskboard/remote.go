package taskboard

import (
	"context"

	"taskboard/internal/client"
	"taskboard/internal/model"
)

// Remote backs the board with the HTTP API. The client owns credential
// attachment and session clearing; this type only adapts the surface.
type Remote struct {
	api *client.Client
}

func NewRemote(api *client.Client) *Remote {
	return &Remote{api: api}
}

func (r *Remote) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return r.api.Register(ctx, name, email, password)
}

func (r *Remote) Login(ctx context.Context, email, password string) (*model.Session, error) {
	return r.api.Login(ctx, email, password)
}

func (r *Remote) Logout() error {
	return r.api.Logout()
}

func (r *Remote) ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	return r.api.ListTasks(ctx, filter)
}

func (r *Remote) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return r.api.GetTask(ctx, id)
}

func (r *Remote) CreateTask(ctx context.Context, input model.TaskInput) (*model.Task, error) {
	return r.api.CreateTask(ctx, input)
}

func (r *Remote) UpdateTask(ctx context.Context, id uint, input model.TaskInput) (*model.Task, error) {
	return r.api.UpdateTask(ctx, id, input)
}

func (r *Remote) DeleteTask(ctx context.Context, id uint) error {
	return r.api.DeleteTask(ctx, id)
}

func (r *Remote) ListCategories(ctx context.Context) ([]model.Category, error) {
	return r.api.ListCategories(ctx)
}

func (r *Remote) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	return r.api.CreateCategory(ctx, name)
}

func (r *Remote) UpdateCategory(ctx context.Context, id uint, name string) (*model.Category, error) {
	return r.api.UpdateCategory(ctx, id, name)
}

func (r *Remote) DeleteCategory(ctx context.Context, id uint) error {
	return r.api.DeleteCategory(ctx, id)
}

// Meta returns the fixed sets from client-side constants; the API exposes
// /meta but the sets never change, so no round trip is needed.
func (r *Remote) Meta() ([]model.Status, []model.Priority) {
	return model.Statuses(), model.Priorities()
}
