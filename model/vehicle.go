package model

type Vehicle struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"column:nombre;type:varchar(250);unique;not null" json:"nombre"`
	Type         *string    `gorm:"column:tipo_vehiculo;type:varchar(200)" json:"tipo_vehiculo"`
	Manufacturer *string    `gorm:"column:fabricante;type:varchar(200)" json:"fabricante"`
	Price        *string    `gorm:"column:precio;type:varchar(200)" json:"precio"`
	Length       *float64   `gorm:"column:longitud" json:"longitud"`
	Pilots       *int       `gorm:"column:pilotos" json:"pilotos"`
	Passengers   *int       `gorm:"column:pasajeros" json:"pasajeros"`
	Speed        *int       `gorm:"column:velocidad" json:"velocidad"`
	Capacity     *int       `gorm:"column:capacidad" json:"capacidad"`
	Consumables  *int       `gorm:"column:consumibles" json:"consumibles"`
	Description  *string    `gorm:"column:descripcion;type:varchar(2000)" json:"descripcion"`
	Favorites    []Favorite `gorm:"foreignKey:VehicleID" json:"-"`
}

func (Vehicle) TableName() string { return "vehiculos" }

func (v Vehicle) Serialize() map[string]any {
	return map[string]any{
		"id":            v.ID,
		"nombre":        v.Name,
		"tipo_vehiculo": v.Type,
		"fabricante":    v.Manufacturer,
		"precio":        v.Price,
		"longitud":      v.Length,
		"pilotos":       v.Pilots,
		"pasajeros":     v.Passengers,
		"velocidad":     v.Speed,
		"capacidad":     v.Capacity,
		"consumibles":   v.Consumables,
		"descripcion":   v.Description,
	}
}
