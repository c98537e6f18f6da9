package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func TestTaskListNewestFirst(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	ctx := context.Background()

	user := model.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"}
	require.NoError(t, NewUserRepository(db).Create(ctx, &user))

	tasks := NewTaskRepository(db)
	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, tasks.Create(ctx, &model.Task{
			UserID:     user.ID,
			Title:      title,
			StatusID:   model.StatusTodo,
			PriorityID: model.PriorityMedium,
		}))
	}

	listed, err := tasks.ListByUser(ctx, user.ID, model.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, "third", listed[0].Title)
	require.Equal(t, "second", listed[1].Title)
	require.Equal(t, "first", listed[2].Title)
}

func TestSeedIsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	_, err := NewDB(dsn)
	require.NoError(t, err)

	// Reopening the same file must not duplicate seeded rows.
	db2, err := NewDB(dsn)
	require.NoError(t, err)

	var statusCount, userCount int64
	require.NoError(t, db2.Model(&model.Status{}).Count(&statusCount).Error)
	require.NoError(t, db2.Model(&model.User{}).Count(&userCount).Error)
	require.EqualValues(t, 3, statusCount)
	require.EqualValues(t, 1, userCount, "only the demo account is seeded")

	demo := model.Category{}
	require.NoError(t, db2.Where("name = ?", "Personal").First(&demo).Error)
}
