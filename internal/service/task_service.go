package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// TaskService wraps task CRUD with validation and normalization. All
// operations are scoped to the owning user.
type TaskService struct {
	tasks      *repository.TaskRepository
	categories *repository.CategoryRepository
}

func NewTaskService(tasks *repository.TaskRepository, categories *repository.CategoryRepository) *TaskService {
	return &TaskService{tasks: tasks, categories: categories}
}

// normalize trims and validates the input in place, resolving CategoryName
// into a category id and filling status/priority defaults.
func (s *TaskService) normalize(ctx context.Context, userID uint, input *model.TaskInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	input.Description = strings.TrimSpace(input.Description)

	if input.StatusID == 0 {
		input.StatusID = model.StatusTodo
	}
	if input.PriorityID == 0 {
		input.PriorityID = model.PriorityMedium
	}
	if !model.ValidStatusID(input.StatusID) {
		return fmt.Errorf("%w: unknown status id %d", ErrValidation, input.StatusID)
	}
	if !model.ValidPriorityID(input.PriorityID) {
		return fmt.Errorf("%w: unknown priority id %d", ErrValidation, input.PriorityID)
	}

	// A category name wins over an explicit id.
	if name := strings.TrimSpace(input.CategoryName); name != "" {
		category, err := s.categories.GetOrCreate(ctx, userID, name)
		if err != nil {
			return err
		}
		input.CategoryID = &category.ID
	} else if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, userID, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: category does not belong to user", ErrValidation)
			}
			return fmt.Errorf("find category: %w", err)
		}
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, userID uint, input model.TaskInput) (*model.Task, error) {
	if err := s.normalize(ctx, userID, &input); err != nil {
		return nil, err
	}

	task := model.Task{
		UserID:     userID,
		CategoryID: input.CategoryID,
		StatusID:   input.StatusID,
		PriorityID: input.PriorityID,
		Title:      input.Title,
		DueDate:    input.DueDate,
	}
	if input.Description != "" {
		task.Description = &input.Description
	}

	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uint, input model.TaskInput) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return nil, err
	}

	if err := s.normalize(ctx, userID, &input); err != nil {
		return nil, err
	}

	task.CategoryID = input.CategoryID
	task.StatusID = input.StatusID
	task.PriorityID = input.PriorityID
	task.Title = input.Title
	task.DueDate = input.DueDate
	if input.Description != "" {
		task.Description = &input.Description
	} else {
		task.Description = nil
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, userID uint, filter model.TaskFilter) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID, filter)
}

// Delete reports ErrNotFound on a missing id; the local board treats that as
// a no-op while the server surfaces it as a 404.
func (s *TaskService) Delete(ctx context.Context, userID, taskID uint) error {
	deleted, err := s.tasks.Delete(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
	}
	return nil
}
