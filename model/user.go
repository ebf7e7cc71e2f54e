package model

import (
	"errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrPasswordRequired = errors.New("password is required")

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"type:varchar(200);unique;not null" json:"username"`
	Name      string     `gorm:"column:nombre;type:varchar(250);not null" json:"nombre"`
	Surname   string     `gorm:"column:apellidos;type:varchar(250);not null" json:"apellidos"`
	Email     string     `gorm:"type:varchar(200);unique;not null" json:"email"`
	Password  string     `gorm:"type:varchar(80);not null" json:"password"`
	IsActive  bool       `gorm:"not null" json:"is_active"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "usuario" }

// BeforeSave stores the password as a bcrypt hash. Values that are already
// hashes are left alone so re-saving a loaded row is a no-op.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" {
		return ErrPasswordRequired
	}
	if isBcryptHash(u.Password) {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// Serialize never includes the password.
func (u User) Serialize() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"nombre":    u.Name,
		"apellidos": u.Surname,
		"email":     u.Email,
		"is_active": u.IsActive,
	}
}

func isBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
