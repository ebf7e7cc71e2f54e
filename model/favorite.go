package model

import (
	"fmt"
	"gorm.io/gorm"
	"strconv"
)

// FavoriteTarget is the (vehicle, character, planet) part of a favorite.
// A nil pointer means NULL; absent JSON keys and explicit nulls decode the same.
type FavoriteTarget struct {
	VehicleID   *uint `json:"vehiculo_id"`
	CharacterID *uint `json:"personaje_id"`
	PlanetID    *uint `json:"planeta_id"`
}

// Empty reports whether no target column is set.
func (t FavoriteTarget) Empty() bool {
	return t.VehicleID == nil && t.CharacterID == nil && t.PlanetID == nil
}

// Key renders the tuple as a stable string, e.g. "v:-;c:-;p:3".
func (t FavoriteTarget) Key() string {
	return fmt.Sprintf("v:%s;c:%s;p:%s", keyPart(t.VehicleID), keyPart(t.CharacterID), keyPart(t.PlanetID))
}

func keyPart(id *uint) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatUint(uint64(*id), 10)
}

// Favorite links a user to a vehicle, character and/or planet.
type Favorite struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	VehicleID   *uint  `gorm:"column:vehiculo_id;index" json:"vehiculo_id"`
	CharacterID *uint  `gorm:"column:personaje_id;index" json:"personaje_id"`
	PlanetID    *uint  `gorm:"column:planeta_id;index" json:"planeta_id"`
	UserID      uint   `gorm:"column:usuario_id;not null;uniqueIndex:idx_favoritos_usuario_target" json:"usuario_id"`
	TargetKey   string `gorm:"column:target_key;type:varchar(80);not null;uniqueIndex:idx_favoritos_usuario_target" json:"-"`
	Active      bool   `gorm:"column:activo;default:true" json:"activo"`
}

func (Favorite) TableName() string { return "favoritos" }

// Target returns the favorite's tuple.
func (f Favorite) Target() FavoriteTarget {
	return FavoriteTarget{VehicleID: f.VehicleID, CharacterID: f.CharacterID, PlanetID: f.PlanetID}
}

// BeforeSave keeps target_key in step with the FK columns on every write path.
func (f *Favorite) BeforeSave(tx *gorm.DB) error {
	f.TargetKey = f.Target().Key()
	return nil
}

func (f Favorite) Serialize() map[string]any {
	return map[string]any{
		"id":           f.ID,
		"vehiculo_id":  f.VehicleID,
		"personaje_id": f.CharacterID,
		"planeta_id":   f.PlanetID,
		"usuario_id":   f.UserID,
		"activo":       f.Active,
	}
}
