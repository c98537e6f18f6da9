package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

func TestTaskCreateDefaultsAndNormalization(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	task, err := svc.Create(ctx, user.ID, model.TaskInput{Title: "  Buy milk  ", Description: "  from the corner shop  "})
	require.NoError(t, err)
	require.NotZero(t, task.ID)
	require.Equal(t, "Buy milk", task.Title)
	require.NotNil(t, task.Description)
	require.Equal(t, "from the corner shop", *task.Description)
	require.Equal(t, model.StatusTodo, task.StatusID, "status defaults to todo")
	require.Equal(t, model.PriorityMedium, task.PriorityID, "priority defaults to medium")
	require.Nil(t, task.CategoryID)

	// An empty description stays nil rather than an empty string.
	bare, err := svc.Create(ctx, user.ID, model.TaskInput{Title: "Bare", Description: "   "})
	require.NoError(t, err)
	require.Nil(t, bare.Description)
	require.NotEqual(t, task.ID, bare.ID)
}

func TestTaskCreateEmptyTitle(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, user.ID, model.TaskInput{Title: "   "})
	require.ErrorIs(t, err, ErrValidation)

	tasks, err := svc.List(ctx, user.ID, model.TaskFilter{})
	require.NoError(t, err)
	require.Empty(t, tasks, "a rejected create must not leave a row behind")
}

func TestTaskCreateUnknownStatusOrPriority(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, user.ID, model.TaskInput{Title: "x", StatusID: 9})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, user.ID, model.TaskInput{Title: "x", PriorityID: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestTaskCategoryNameWinsOverID(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	categories := NewCategoryService(repository.NewCategoryRepository(db))
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	existing, err := categories.Create(ctx, user.ID, "Errands")
	require.NoError(t, err)

	task, err := svc.Create(ctx, user.ID, model.TaskInput{
		Title:        "Post letters",
		CategoryID:   &existing.ID,
		CategoryName: "Work",
	})
	require.NoError(t, err)
	require.NotNil(t, task.CategoryID)
	require.NotEqual(t, existing.ID, *task.CategoryID, "category_name must win over category_id")

	created, err := categories.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, created, 2, "the named category is created on the fly")
}

func TestTaskRejectsForeignCategory(t *testing.T) {
	db := newTestDB(t)
	ann := registerUser(t, db, "Ann", "ann@example.com")
	bob := registerUser(t, db, "Bob", "bob@example.com")
	categories := NewCategoryService(repository.NewCategoryRepository(db))
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	bobs, err := categories.Create(ctx, bob.ID, "Private")
	require.NoError(t, err)

	_, err = svc.Create(ctx, ann.ID, model.TaskInput{Title: "Sneak in", CategoryID: &bobs.ID})
	require.ErrorIs(t, err, ErrValidation)
}

func TestTaskUpdate(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	task, err := svc.Create(ctx, user.ID, model.TaskInput{Title: "Draft report"})
	require.NoError(t, err)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, user.ID, task.ID, model.TaskInput{
		Title:      "Draft report v2",
		StatusID:   model.StatusDoing,
		PriorityID: model.PriorityHigh,
		DueDate:    &due,
	})
	require.NoError(t, err)
	require.Equal(t, task.ID, updated.ID)
	require.Equal(t, "Draft report v2", updated.Title)
	require.Equal(t, model.StatusDoing, updated.StatusID)
	require.Equal(t, model.PriorityHigh, updated.PriorityID)
	require.NotNil(t, updated.DueDate)
	require.True(t, updated.DueDate.Equal(due))

	got, err := svc.Get(ctx, user.ID, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Draft report v2", got.Title)
}

func TestTaskUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))

	_, err := svc.Update(context.Background(), user.ID, 9999, model.TaskInput{Title: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTaskDelete(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	task, err := svc.Create(ctx, user.ID, model.TaskInput{Title: "Ephemeral"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID, task.ID))
	require.ErrorIs(t, svc.Delete(ctx, user.ID, task.ID), ErrNotFound)

	_, err = svc.Get(ctx, user.ID, task.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTaskListFilters(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	categories := NewCategoryService(repository.NewCategoryRepository(db))
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	work, err := categories.Create(ctx, user.ID, "Work")
	require.NoError(t, err)

	_, err = svc.Create(ctx, user.ID, model.TaskInput{Title: "Write minutes", CategoryID: &work.ID, StatusID: model.StatusDoing})
	require.NoError(t, err)
	_, err = svc.Create(ctx, user.ID, model.TaskInput{Title: "Buy milk", PriorityID: model.PriorityHigh})
	require.NoError(t, err)
	_, err = svc.Create(ctx, user.ID, model.TaskInput{Title: "Call plumber"})
	require.NoError(t, err)

	byStatus, err := svc.List(ctx, user.ID, model.TaskFilter{StatusID: model.StatusDoing})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	require.Equal(t, "Write minutes", byStatus[0].Title)

	byCategory, err := svc.List(ctx, user.ID, model.TaskFilter{CategoryID: &work.ID})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)

	uncategorized, err := svc.List(ctx, user.ID, model.TaskFilter{Uncategorized: true})
	require.NoError(t, err)
	require.Len(t, uncategorized, 2)

	byQuery, err := svc.List(ctx, user.ID, model.TaskFilter{Query: "MILK"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	require.Equal(t, "Buy milk", byQuery[0].Title)
}

func TestTaskListScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	ann := registerUser(t, db, "Ann", "ann@example.com")
	bob := registerUser(t, db, "Bob", "bob@example.com")
	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	mine, err := svc.Create(ctx, ann.ID, model.TaskInput{Title: "Mine"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, model.TaskInput{Title: "His"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, ann.ID, model.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Mine", tasks[0].Title)

	// Bob cannot read or delete Ann's task.
	_, err = svc.Get(ctx, bob.ID, mine.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, bob.ID, mine.ID), ErrNotFound)
}
