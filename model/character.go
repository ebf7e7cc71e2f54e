package model

import (
	"encoding/json"
	"fmt"
	"gorm.io/datatypes"
	"time"
)

type Gender string

const (
	GenderMale    Gender = "hombre"
	GenderFemale  Gender = "mujer"
	GenderUnknown Gender = "desconocido"
)

// Valid reports whether g is one of the accepted enum values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

// Character is a person from the films.
type Character struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"column:nombre;type:varchar(250);unique;not null" json:"nombre"`
	Surname   string         `gorm:"column:apellidos;type:varchar(250);not null" json:"apellidos"`
	Gender    *Gender        `gorm:"column:genero;type:varchar(20);check:genero IN ('hombre','mujer','desconocido')" json:"genero"`
	BirthDate datatypes.Date `gorm:"column:nacimiento;not null" json:"nacimiento"`
	Height    *int           `gorm:"column:altura" json:"altura"`
	Weight    *int           `gorm:"column:peso" json:"peso"`
	HairColor *string        `gorm:"column:color_pelo;type:varchar(50)" json:"color_pelo"`
	EyeColor  *string        `gorm:"column:color_ojos;type:varchar(50)" json:"color_ojos"`
	Favorites []Favorite     `gorm:"foreignKey:CharacterID" json:"-"`
}

func (Character) TableName() string { return "personajes" }

func (c Character) Serialize() map[string]any {
	var gender any
	if c.Gender != nil {
		gender = string(*c.Gender)
	}
	return map[string]any{
		"id":         c.ID,
		"nombre":     c.Name,
		"apellidos":  c.Surname,
		"genero":     gender,
		"nacimiento": formatDate(time.Time(c.BirthDate)),
		"altura":     c.Height,
		"peso":       c.Weight,
		"color_pelo": c.HairColor,
		"color_ojos": c.EyeColor,
	}
}

// UnmarshalJSON reads nacimiento as YYYY-MM-DD, the format Serialize writes.
// Fields absent from b keep their current values.
func (c *Character) UnmarshalJSON(b []byte) error {
	type plain Character
	aux := struct {
		*plain
		BirthDate *string `json:"nacimiento"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.BirthDate != nil {
		born, err := ParseDate(*aux.BirthDate)
		if err != nil {
			return fmt.Errorf("nacimiento: %w", err)
		}
		c.BirthDate = datatypes.Date(born)
	}
	return nil
}
