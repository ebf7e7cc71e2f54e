package services

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"starwars-api/db"
	"starwars-api/model"
)

type FavoriteService struct {
	DB *gorm.DB
}

// Activate adds target to the user's favorites. The user is looked up
// first, so an unknown user wins over an empty target. Matching is on the
// exact tuple, NULL columns included.
func (s *FavoriteService) Activate(ctx context.Context, userID uint, target model.FavoriteTarget) (*model.Favorite, error) {
	fav := &model.Favorite{
		UserID:      userID,
		VehicleID:   target.VehicleID,
		CharacterID: target.CharacterID,
		PlanetID:    target.PlanetID,
		Active:      true,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}
		if target.Empty() {
			return ErrNoTarget
		}

		var existing model.Favorite
		err := tx.Scopes(matchTarget(userID, target)).First(&existing).Error
		if err == nil {
			return ErrFavoriteExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(fav).Error; err != nil {
			if db.IsDuplicateKey(err) {
				return ErrFavoriteExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fav, nil
}

// Deactivate deletes the favorite matching the exact tuple.
func (s *FavoriteService) Deactivate(ctx context.Context, userID uint, target model.FavoriteTarget) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fav model.Favorite
		if err := tx.Scopes(matchTarget(userID, target)).First(&fav).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFavoriteNotFound
			}
			return err
		}
		return tx.Delete(&fav).Error
	})
}

// ListByUser returns the user's favorites in insertion order.
func (s *FavoriteService) ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error) {
	favs := []model.Favorite{}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUser(tx, userID); err != nil {
			return err
		}
		return tx.Where("usuario_id = ?", userID).Order("id").Find(&favs).Error
	})
	if err != nil {
		return nil, err
	}
	return favs, nil
}

func ensureUser(tx *gorm.DB, userID uint) error {
	var count int64
	if err := tx.Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

func matchTarget(userID uint, t model.FavoriteTarget) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		q = q.Where("usuario_id = ?", userID)
		q = whereNullable(q, "vehiculo_id", t.VehicleID)
		q = whereNullable(q, "personaje_id", t.CharacterID)
		return whereNullable(q, "planeta_id", t.PlanetID)
	}
}

func whereNullable(q *gorm.DB, column string, v *uint) *gorm.DB {
	if v == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", *v)
}
