package model

type Planet struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"column:nombre;type:varchar(250);unique;not null" json:"nombre"`
	Temperature  *string    `gorm:"column:temperatura;type:varchar(200)" json:"temperatura"`
	Diameter     *int       `gorm:"column:diametro" json:"diametro"`
	Gravity      *int       `gorm:"column:gravedad" json:"gravedad"`
	Population   *int64     `gorm:"column:poblacion" json:"poblacion"`
	Terrain      *string    `gorm:"column:terreno;type:varchar(250)" json:"terreno"`
	WaterSurface *int       `gorm:"column:superficie_agua" json:"superficie_agua"`
	Description  *string    `gorm:"column:descripcion;type:varchar(2000)" json:"descripcion"`
	Favorites    []Favorite `gorm:"foreignKey:PlanetID" json:"-"`
}

func (Planet) TableName() string { return "planetas" }

func (p Planet) Serialize() map[string]any {
	return map[string]any{
		"id":              p.ID,
		"nombre":          p.Name,
		"temperatura":     p.Temperature,
		"diametro":        p.Diameter,
		"gravedad":        p.Gravity,
		"poblacion":       p.Population,
		"terreno":         p.Terrain,
		"superficie_agua": p.WaterSurface,
		"descripcion":     p.Description,
	}
}
