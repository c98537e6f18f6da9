package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

func TestCategoryCreateCaseInsensitiveDuplicate(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	work, err := svc.Create(ctx, user.ID, "Work")
	require.NoError(t, err)
	require.NotZero(t, work.ID)
	require.Equal(t, "Work", work.Name)

	// Same name again, different case: the existing row comes back.
	dup, err := svc.Create(ctx, user.ID, "  work ")
	require.NoError(t, err)
	require.Equal(t, work.ID, dup.ID)
	require.Equal(t, "Work", dup.Name, "the first spelling sticks")

	all, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCategoryCreateValidation(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	_, err := svc.Create(context.Background(), user.ID, "   ")
	require.ErrorIs(t, err, ErrValidation)
}

func TestCategoryPerOwnerNamespace(t *testing.T) {
	db := newTestDB(t)
	ann := registerUser(t, db, "Ann", "ann@example.com")
	bob := registerUser(t, db, "Bob", "bob@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	annWork, err := svc.Create(ctx, ann.ID, "Work")
	require.NoError(t, err)
	bobWork, err := svc.Create(ctx, bob.ID, "Work")
	require.NoError(t, err)
	require.NotEqual(t, annWork.ID, bobWork.ID, "same name under different owners is two rows")
}

func TestCategoryUpdate(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	cat, err := svc.Create(ctx, user.ID, "Hose")
	require.NoError(t, err)

	renamed, err := svc.Update(ctx, user.ID, cat.ID, "House")
	require.NoError(t, err)
	require.Equal(t, cat.ID, renamed.ID)
	require.Equal(t, "House", renamed.Name)

	_, err = svc.Update(ctx, user.ID, 9999, "Ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryUpdateNameConflict(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	work, err := svc.Create(ctx, user.ID, "Work")
	require.NoError(t, err)
	home, err := svc.Create(ctx, user.ID, "Home")
	require.NoError(t, err)

	_, err = svc.Update(ctx, user.ID, home.ID, "WORK")
	require.ErrorIs(t, err, ErrValidation)

	// Renaming onto your own name (case change) is fine.
	renamed, err := svc.Update(ctx, user.ID, work.ID, "WORK")
	require.NoError(t, err)
	require.Equal(t, "WORK", renamed.Name)
}

func TestCategoryDeleteClearsTaskReferences(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "Ann", "ann@example.com")
	categories := NewCategoryService(repository.NewCategoryRepository(db))
	tasks := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	ctx := context.Background()

	work, err := categories.Create(ctx, user.ID, "Work")
	require.NoError(t, err)
	task, err := tasks.Create(ctx, user.ID, model.TaskInput{Title: "Report", CategoryID: &work.ID})
	require.NoError(t, err)
	require.NotNil(t, task.CategoryID)

	require.NoError(t, categories.Delete(ctx, user.ID, work.ID))

	// The task survives, just uncategorized.
	got, err := tasks.Get(ctx, user.ID, task.ID)
	require.NoError(t, err)
	require.Nil(t, got.CategoryID)

	require.ErrorIs(t, categories.Delete(ctx, user.ID, work.ID), ErrNotFound)
}
