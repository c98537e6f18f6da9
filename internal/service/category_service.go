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

// CategoryService wraps category CRUD. Names are unique per owner,
// case-insensitively; creating a duplicate hands back the existing row.
type CategoryService struct {
	categories *repository.CategoryRepository
}

func NewCategoryService(categories *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context, userID uint) ([]model.Category, error) {
	return s.categories.ListByUser(ctx, userID)
}

func (s *CategoryService) Create(ctx context.Context, userID uint, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	return s.categories.GetOrCreate(ctx, userID, name)
}

func (s *CategoryService) Update(ctx context.Context, userID, categoryID uint, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category, err := s.categories.FindByID(ctx, userID, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return nil, err
	}

	// Renaming onto another category's name would break per-owner uniqueness.
	if existing, err := s.categories.FindByName(ctx, userID, name); err == nil && existing.ID != categoryID {
		return nil, fmt.Errorf("%w: category %q already exists", ErrValidation, existing.Name)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and clears the reference on its tasks; the
// tasks themselves are kept.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uint) error {
	deleted, err := s.categories.Delete(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
	}
	return nil
}
