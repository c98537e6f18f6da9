package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// TaskRepository handles CRUD for tasks. Every query is owner-scoped.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// ListByUser returns the owner's tasks newest-first, narrowed by the filter.
func (r *TaskRepository) ListByUser(ctx context.Context, userID uint, filter model.TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.StatusID != 0 {
		q = q.Where("status_id = ?", filter.StatusID)
	}
	if filter.PriorityID != 0 {
		q = q.Where("priority_id = ?", filter.PriorityID)
	}
	if filter.Uncategorized {
		q = q.Where("category_id IS NULL")
	} else if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?", like, like)
	}

	var tasks []model.Task
	if err := q.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, taskID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes the owner's task and returns the number of rows removed,
// so callers can decide whether a missing id is an error.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete task: %w", res.Error)
	}
	return res.RowsAffected, nil
}
