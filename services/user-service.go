package services

import (
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"log"
	"starwars-api/db"
	"starwars-api/model"
	"strings"
)

type UserService struct {
	DB *gorm.DB
}

// CreateUserInput carries the POST /usuarios body. Only Email and Password
// are required.
type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Name     string `json:"nombre"`
	Surname  string `json:"apellidos"`
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = email
	}

	user := &model.User{
		Username: username,
		Name:     in.Name,
		Surname:  in.Surname,
		Email:    email,
		Password: in.Password,
		IsActive: true,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).
			Where("email = ? OR username = ?", email, username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUserExists
		}
		if err := tx.Create(user).Error; err != nil {
			if db.IsDuplicateKey(err) {
				return ErrUserExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	log.Printf("User created id %d", user.ID)
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// DeleteUser removes the user and, in the same transaction, every favorite
// the user owns.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := tx.Where("usuario_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	log.Printf("User deleted id %d", id)
	return nil
}
