package services

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"starwars-api/model"
)

// CatalogService reads the reference tables: characters, planets and vehicles.
type CatalogService struct {
	DB *gorm.DB
}

func (s *CatalogService) ListCharacters(ctx context.Context) ([]model.Character, error) {
	return listAll[model.Character](ctx, s.DB)
}

func (s *CatalogService) GetCharacter(ctx context.Context, id uint) (*model.Character, error) {
	return findByID[model.Character](ctx, s.DB, id)
}

func (s *CatalogService) ListPlanets(ctx context.Context) ([]model.Planet, error) {
	return listAll[model.Planet](ctx, s.DB)
}

func (s *CatalogService) GetPlanet(ctx context.Context, id uint) (*model.Planet, error) {
	return findByID[model.Planet](ctx, s.DB, id)
}

func (s *CatalogService) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return listAll[model.Vehicle](ctx, s.DB)
}

func (s *CatalogService) GetVehicle(ctx context.Context, id uint) (*model.Vehicle, error) {
	return findByID[model.Vehicle](ctx, s.DB, id)
}

func listAll[T any](ctx context.Context, gdb *gorm.DB) ([]T, error) {
	rows := []T{}
	if err := gdb.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func findByID[T any](ctx context.Context, gdb *gorm.DB, id uint) (*T, error) {
	var row T
	err := gdb.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
