// Package client is the remote backing strategy: a thin HTTP client for the
// task board API. It attaches the stored bearer token to every call,
// normalizes response envelopes and error payloads, and clears the session
// when the server rejects the token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/service"
	"taskboard/internal/session"
)

// ErrUnauthorized is returned when the server rejects the bearer token. The
// session has already been cleared by the time the caller sees this.
var ErrUnauthorized = errors.New("authorization expired")

// Client talks to a remote task board API.
type Client struct {
	base     string
	http     *http.Client
	sessions *session.Store
}

// New returns a client rooted at baseURL whose requests carry the session
// store's token.
func New(baseURL string, sessions *session.Store) *Client {
	return &Client{
		base:     baseURL,
		sessions: sessions,
		http: &http.Client{
			Transport: &authTransport{next: http.DefaultTransport, sessions: sessions},
		},
	}
}

// do issues one request and decodes a 2xx body into out (when non-nil).
// Non-2xx responses become error-kind-wrapped messages; transport failures
// surface as a generic network error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	switch out := out.(type) {
	case *[]model.Task:
		tasks, err := decodeTaskList(raw)
		if err != nil {
			return err
		}
		*out = tasks
		return nil
	default:
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
}

// apiError wraps the server's message in the matching error kind so callers
// branch the same way they do against the local strategy.
func (c *Client) apiError(status int, raw []byte) error {
	msg := errorMessage(raw, http.StatusText(status))
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", service.ErrNotFound, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", service.ErrValidation, msg)
	default:
		return fmt.Errorf("server error: %s", msg)
	}
}

// Register creates an account. The server returns no token; log in after.
func (c *Client) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and persists the returned session. A 401 here means
// bad credentials, not an expired session.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var sess model.Session
	if err := c.do(ctx, http.MethodPost, "/login", body, &sess); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %s", service.ErrInvalidCredentials, err.Error())
		}
		return nil, err
	}
	if err := c.sessions.Set(&sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Logout drops the stored session. Purely local; the API keeps no state.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

type taskPayload struct {
	CategoryID   *uint   `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
	StatusID     int     `json:"status_id"`
	PriorityID   int     `json:"priority_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	DueDate      *string `json:"due_date"`
}

func toPayload(input model.TaskInput) taskPayload {
	p := taskPayload{
		CategoryID:   input.CategoryID,
		CategoryName: input.CategoryName,
		StatusID:     input.StatusID,
		PriorityID:   input.PriorityID,
		Title:        input.Title,
	}
	if input.Description != "" {
		desc := input.Description
		p.Description = &desc
	}
	if input.DueDate != nil {
		due := input.DueDate.Format("2006-01-02")
		p.DueDate = &due
	}
	return p
}

// ListTasks fetches the user's tasks and applies the filter locally; the API
// has no filtering parameters. Server order is preserved.
func (c *Client) ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/task", nil, &tasks); err != nil {
		return nil, err
	}
	filtered := tasks[:0]
	for _, task := range tasks {
		if task.Matches(filter) {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

func (c *Client) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/task/%d", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) CreateTask(ctx context.Context, input model.TaskInput) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPost, "/task", toPayload(input), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id uint, input model.TaskInput) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/task/%d", id), toPayload(input), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask surfaces the server's error on a missing id, unlike the local
// strategy's no-op.
func (c *Client) DeleteTask(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/task/%d", id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/category/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPost, "/category/", map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id uint, name string) (*model.Category, error) {
	var category model.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/category/%d", id), map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/category/%d", id), nil, nil)
}
