package model

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func TestUserSerializeOmitsPassword(t *testing.T) {
	u := User{ID: 4, Username: "leia", Name: "Leia", Surname: "Organa", Email: "leia@x.com", Password: "secret", IsActive: true}
	got := u.Serialize()
	assert.NotContains(t, got, "password")
	assert.Equal(t, map[string]any{
		"id":        uint(4),
		"username":  "leia",
		"nombre":    "Leia",
		"apellidos": "Organa",
		"email":     "leia@x.com",
		"is_active": true,
	}, got)
}

func TestUserPasswordHashing(t *testing.T) {
	u := &User{Password: "secret"}
	require.NoError(t, u.BeforeSave(nil))
	assert.NotEqual(t, "secret", u.Password)
	assert.True(t, u.CheckPassword("secret"))
	assert.False(t, u.CheckPassword("other"))

	hashed := u.Password
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, hashed, u.Password)
}

func TestUserEmptyPasswordRejected(t *testing.T) {
	assert.ErrorIs(t, (&User{}).BeforeSave(nil), ErrPasswordRequired)
}

func TestCharacterSerialize(t *testing.T) {
	c := Character{
		ID:        1,
		Name:      "Luke",
		Surname:   "Skywalker",
		Gender:    ptr(GenderMale),
		BirthDate: datatypes.Date(time.Date(1977, 5, 25, 0, 0, 0, 0, time.UTC)),
		Height:    ptr(172),
	}
	b, err := json.Marshal(c.Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "nombre": "Luke", "apellidos": "Skywalker", "genero": "hombre",
		"nacimiento": "1977-05-25", "altura": 172, "peso": null,
		"color_pelo": null, "color_ojos": null
	}`, string(b))

	c.Gender = nil
	assert.Nil(t, c.Serialize()["genero"])
}

func TestGenderValid(t *testing.T) {
	assert.True(t, GenderUnknown.Valid())
	assert.False(t, Gender("droid").Valid())
}

func TestVehicleAndPlanetSerializeNulls(t *testing.T) {
	b, err := json.Marshal(Vehicle{ID: 2, Name: "AT-AT", Length: ptr(20.0)}.Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 2, "nombre": "AT-AT", "tipo_vehiculo": null, "fabricante": null, "precio": null,
		"longitud": 20, "pilotos": null, "pasajeros": null, "velocidad": null,
		"capacidad": null, "consumibles": null, "descripcion": null
	}`, string(b))

	b, err = json.Marshal(Planet{ID: 3, Name: "Hoth", Population: ptr(int64(0))}.Serialize())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"poblacion":0`)
	assert.Contains(t, string(b), `"diametro":null`)
}

func TestFavoriteTarget(t *testing.T) {
	assert.True(t, FavoriteTarget{}.Empty())
	assert.Equal(t, "v:-;c:-;p:-", FavoriteTarget{}.Key())

	var target FavoriteTarget
	require.NoError(t, json.Unmarshal([]byte(`{"planeta_id": 3, "vehiculo_id": null}`), &target))
	assert.False(t, target.Empty())
	assert.Nil(t, target.VehicleID)
	assert.Equal(t, "v:-;c:-;p:3", target.Key())

	f := &Favorite{UserID: 1, VehicleID: ptr(uint(7)), CharacterID: ptr(uint(2))}
	require.NoError(t, f.BeforeSave(nil))
	assert.Equal(t, "v:7;c:2;p:-", f.TargetKey)
	assert.Equal(t, FavoriteTarget{VehicleID: ptr(uint(7)), CharacterID: ptr(uint(2))}, f.Target())
}

func TestSerializeAllNeverNil(t *testing.T) {
	out := SerializeAll[Planet](nil)
	require.NotNil(t, out)
	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1980-05-21")
	require.NoError(t, err)
	assert.Equal(t, time.May, d.Month())
	_, err = ParseDate("21/05/1980")
	assert.Error(t, err)
}

func TestCharacterUnmarshalISODate(t *testing.T) {
	var c Character
	require.NoError(t, json.Unmarshal([]byte(`{"nombre": "Han", "apellidos": "Solo", "genero": "hombre", "nacimiento": "1942-07-13", "altura": 180}`), &c))
	assert.Equal(t, "Han", c.Name)
	assert.Equal(t, GenderMale, *c.Gender)
	assert.Equal(t, 180, *c.Height)
	assert.Equal(t, "1942-07-13", c.Serialize()["nacimiento"])

	// Absent keys keep what is already there.
	require.NoError(t, json.Unmarshal([]byte(`{"peso": 80}`), &c))
	assert.Equal(t, "Han", c.Name)
	assert.Equal(t, 80, *c.Weight)
	assert.Equal(t, "1942-07-13", c.Serialize()["nacimiento"])

	err := json.Unmarshal([]byte(`{"nacimiento": "13/07/1942"}`), &c)
	assert.ErrorContains(t, err, "nacimiento")
}
