package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// CategoryRepository manages owner-scoped task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindByName matches case-insensitively within the owner's categories.
// Returns gorm.ErrRecordNotFound when absent.
func (r *CategoryRepository) FindByName(ctx context.Context, userID uint, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = ?", userID, strings.ToLower(strings.TrimSpace(name))).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetOrCreate returns the owner's category with the given name, creating it
// when absent. The duplicate check is case-insensitive; an existing row wins
// and keeps its original casing.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, userID uint, name string) (*model.Category, error) {
	existing, err := r.FindByName(ctx, userID, name)
	switch {
	case err == nil:
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		category := model.Category{UserID: userID, Name: strings.TrimSpace(name)}
		if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
			return nil, fmt.Errorf("create category: %w", err)
		}
		return &category, nil
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, userID, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes the owner's category and clears the reference on every task
// that pointed at it; referencing tasks survive. Returns the number of
// category rows removed.
func (r *CategoryRepository) Delete(ctx context.Context, userID, id uint) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).
			Where("user_id = ? AND category_id = ?", userID, id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("clear task references: %w", err)
		}
		res := tx.Where("user_id = ? AND id = ?", userID, id).Delete(&model.Category{})
		if res.Error != nil {
			return fmt.Errorf("delete category: %w", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
