// Package admin is a generic table editor driven by an explicit list of
// entity descriptors.
package admin

import (
	"gorm.io/gorm"
	"starwars-api/model"
)

// Record is what the console needs from an entity.
type Record interface {
	model.Serializer
	PrimaryKey() uint
}

type Field struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// Descriptor describes one editable table.
type Descriptor struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Fields []Field `json:"fields"`

	newRecord func() Record
	list      func(q *gorm.DB) ([]map[string]any, error)
}

// Entity builds the descriptor for T. PT is always *T.
func Entity[T any, PT interface {
	*T
	Record
}](name, label string, fields ...Field) Descriptor {
	return Descriptor{
		Name:      name,
		Label:     label,
		Fields:    fields,
		newRecord: func() Record { return PT(new(T)) },
		list: func(q *gorm.DB) ([]map[string]any, error) {
			var rows []T
			if err := q.Order("id").Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]map[string]any, 0, len(rows))
			for i := range rows {
				out = append(out, PT(&rows[i]).Serialize())
			}
			return out, nil
		},
	}
}

type Registry struct {
	order  []string
	byName map[string]Descriptor
}

func NewRegistry(descriptors ...Descriptor) *Registry {
	r := &Registry{byName: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, dup := r.byName[d.Name]; !dup {
			r.order = append(r.order, d.Name)
		}
		r.byName[d.Name] = d
	}
	return r
}

func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// All returns the descriptors in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// DefaultRegistry lists the five API tables.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Entity[model.User]("usuario", "Usuario",
			Field{"id", "integer", "ID"},
			Field{"username", "string", "Username"},
			Field{"nombre", "string", "Nombre"},
			Field{"apellidos", "string", "Apellidos"},
			Field{"email", "string", "Email"},
			Field{"password", "password", "Password"},
			Field{"is_active", "boolean", "Activo"},
		),
		Entity[model.Favorite]("favoritos", "Favoritos",
			Field{"id", "integer", "ID"},
			Field{"usuario_id", "integer", "Usuario"},
			Field{"vehiculo_id", "integer", "Vehículo"},
			Field{"personaje_id", "integer", "Personaje"},
			Field{"planeta_id", "integer", "Planeta"},
			Field{"activo", "boolean", "Activo"},
		),
		Entity[model.Vehicle]("vehiculos", "Vehículos",
			Field{"id", "integer", "ID"},
			Field{"nombre", "string", "Nombre"},
			Field{"tipo_vehiculo", "string", "Tipo"},
			Field{"fabricante", "string", "Fabricante"},
			Field{"precio", "string", "Precio"},
			Field{"longitud", "float", "Longitud"},
			Field{"pilotos", "integer", "Pilotos"},
			Field{"pasajeros", "integer", "Pasajeros"},
			Field{"velocidad", "integer", "Velocidad"},
			Field{"capacidad", "integer", "Capacidad"},
			Field{"consumibles", "integer", "Consumibles"},
			Field{"descripcion", "text", "Descripción"},
		),
		Entity[model.Character]("personajes", "Personajes",
			Field{"id", "integer", "ID"},
			Field{"nombre", "string", "Nombre"},
			Field{"apellidos", "string", "Apellidos"},
			Field{"genero", "enum:hombre,mujer,desconocido", "Género"},
			Field{"nacimiento", "date", "Nacimiento"},
			Field{"altura", "integer", "Altura"},
			Field{"peso", "integer", "Peso"},
			Field{"color_pelo", "string", "Color de pelo"},
			Field{"color_ojos", "string", "Color de ojos"},
		),
		Entity[model.Planet]("planetas", "Planetas",
			Field{"id", "integer", "ID"},
			Field{"nombre", "string", "Nombre"},
			Field{"temperatura", "string", "Temperatura"},
			Field{"diametro", "integer", "Diámetro"},
			Field{"gravedad", "integer", "Gravedad"},
			Field{"poblacion", "integer", "Población"},
			Field{"terreno", "string", "Terreno"},
			Field{"superficie_agua", "integer", "Superficie de agua"},
			Field{"descripcion", "text", "Descripción"},
		),
	)
}
