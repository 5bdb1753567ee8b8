package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/data/repos"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
	pkgerrors "github.com/rulzurlabs/rulzurapi/internal/pkg/errors"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type IngredientService interface {
	List(ctx context.Context) ([]*domain.Ingredient, error)
	Get(ctx context.Context, id int64) (*domain.Ingredient, error)
	Create(ctx context.Context, name string) (*domain.Ingredient, error)
	Update(ctx context.Context, id int64, name string) (*domain.Ingredient, error)
	BulkUpdate(ctx context.Context, updates []domain.EntityUpdate) ([]*domain.Ingredient, error)
}

type ingredientService struct {
	db   *gorm.DB
	repo repos.IngredientRepo
	log  *logger.Logger
}

func NewIngredientService(gdb *gorm.DB, repo repos.IngredientRepo, baseLog *logger.Logger) IngredientService {
	return &ingredientService{
		db:   gdb,
		repo: repo,
		log:  baseLog.With("service", "IngredientService"),
	}
}

func (s *ingredientService) List(ctx context.Context) ([]*domain.Ingredient, error) {
	return s.repo.List(ctx, nil)
}

func (s *ingredientService) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	row, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("ingredient %d %w", id, pkgerrors.ErrNotFound)
	}
	return row, nil
}

func (s *ingredientService) Create(ctx context.Context, name string) (*domain.Ingredient, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", pkgerrors.ErrInvalidArgument)
	}
	row := &domain.Ingredient{Name: name}
	if _, err := s.repo.Create(ctx, nil, []*domain.Ingredient{row}); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("ingredient %q %w", name, pkgerrors.ErrConflict)
		}
		return nil, err
	}
	s.log.Info("ingredient created", "id", row.ID, "name", row.Name)
	return row, nil
}

func (s *ingredientService) Update(ctx context.Context, id int64, name string) (*domain.Ingredient, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", pkgerrors.ErrInvalidArgument)
	}
	row, found, err := s.repo.UpdateReturning(ctx, nil, id, map[string]interface{}{"name": name})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("ingredient %q %w", name, pkgerrors.ErrConflict)
		}
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("ingredient %d %w", id, pkgerrors.ErrNotFound)
	}
	return row, nil
}

// BulkUpdate renames the given ingredients in one transaction; an unknown id
// rolls the whole batch back.
func (s *ingredientService) BulkUpdate(ctx context.Context, updates []domain.EntityUpdate) ([]*domain.Ingredient, error) {
	out := make([]*domain.Ingredient, 0, len(updates))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, up := range updates {
			if up.Name == "" {
				return fmt.Errorf("%w: missing name for ingredient %d", pkgerrors.ErrInvalidArgument, up.ID)
			}
			row, found, err := s.repo.UpdateReturning(ctx, tx, up.ID, map[string]interface{}{"name": up.Name})
			if err != nil {
				if db.IsUniqueViolation(err) {
					return fmt.Errorf("ingredient %q %w", up.Name, pkgerrors.ErrConflict)
				}
				return err
			}
			if !found {
				return fmt.Errorf("ingredient %d %w", up.ID, pkgerrors.ErrNotFound)
			}
			out = append(out, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
