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

type UtensilService interface {
	List(ctx context.Context) ([]*domain.Utensil, error)
	Get(ctx context.Context, id int64) (*domain.Utensil, error)
	Create(ctx context.Context, name string) (*domain.Utensil, error)
	Update(ctx context.Context, id int64, name string) (*domain.Utensil, error)
	BulkUpdate(ctx context.Context, updates []domain.EntityUpdate) ([]*domain.Utensil, error)
}

type utensilService struct {
	db   *gorm.DB
	repo repos.UtensilRepo
	log  *logger.Logger
}

func NewUtensilService(gdb *gorm.DB, repo repos.UtensilRepo, baseLog *logger.Logger) UtensilService {
	return &utensilService{
		db:   gdb,
		repo: repo,
		log:  baseLog.With("service", "UtensilService"),
	}
}

func (s *utensilService) List(ctx context.Context) ([]*domain.Utensil, error) {
	return s.repo.List(ctx, nil)
}

func (s *utensilService) Get(ctx context.Context, id int64) (*domain.Utensil, error) {
	row, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("utensil %d %w", id, pkgerrors.ErrNotFound)
	}
	return row, nil
}

func (s *utensilService) Create(ctx context.Context, name string) (*domain.Utensil, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", pkgerrors.ErrInvalidArgument)
	}
	row := &domain.Utensil{Name: name}
	if _, err := s.repo.Create(ctx, nil, []*domain.Utensil{row}); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("utensil %q %w", name, pkgerrors.ErrConflict)
		}
		return nil, err
	}
	s.log.Info("utensil created", "id", row.ID, "name", row.Name)
	return row, nil
}

func (s *utensilService) Update(ctx context.Context, id int64, name string) (*domain.Utensil, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", pkgerrors.ErrInvalidArgument)
	}
	row, found, err := s.repo.UpdateReturning(ctx, nil, id, map[string]interface{}{"name": name})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("utensil %q %w", name, pkgerrors.ErrConflict)
		}
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("utensil %d %w", id, pkgerrors.ErrNotFound)
	}
	return row, nil
}

func (s *utensilService) BulkUpdate(ctx context.Context, updates []domain.EntityUpdate) ([]*domain.Utensil, error) {
	out := make([]*domain.Utensil, 0, len(updates))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, up := range updates {
			if up.Name == "" {
				return fmt.Errorf("%w: missing name for utensil %d", pkgerrors.ErrInvalidArgument, up.ID)
			}
			row, found, err := s.repo.UpdateReturning(ctx, tx, up.ID, map[string]interface{}{"name": up.Name})
			if err != nil {
				if db.IsUniqueViolation(err) {
					return fmt.Errorf("utensil %q %w", up.Name, pkgerrors.ErrConflict)
				}
				return err
			}
			if !found {
				return fmt.Errorf("utensil %d %w", up.ID, pkgerrors.ErrNotFound)
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
