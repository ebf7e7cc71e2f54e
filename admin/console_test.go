package admin

import (
	"bytes"
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"net/http"
	"net/http/httptest"
	"starwars-api/db/dbtest"
	"starwars-api/model"
	"testing"
)

func newConsole(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := dbtest.New(t)
	r := gin.New()
	NewConsole(gdb, DefaultRegistry()).Register(r.Group("/admin"))
	return r, gdb
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegistryOrderAndLookup(t *testing.T) {
	reg := DefaultRegistry()
	var names []string
	for _, d := range reg.All() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Fields, d.Name)
	}
	assert.Equal(t, []string{"usuario", "favoritos", "vehiculos", "personajes", "planetas"}, names)

	_, ok := reg.Lookup("planetas")
	assert.True(t, ok)
	_, ok = reg.Lookup("droids")
	assert.False(t, ok)
}

func TestIndex(t *testing.T) {
	r, _ := newConsole(t)
	w := call(r, http.MethodGet, "/admin", "")
	require.Equal(t, http.StatusOK, w.Code)

	var ds []Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ds))
	require.Len(t, ds, 5)
	assert.Equal(t, "Usuario", ds[0].Label)
	assert.Equal(t, Field{Name: "password", Type: "password", Label: "Password"}, ds[0].Fields[5])
}

func TestPlanetCRUD(t *testing.T) {
	r, _ := newConsole(t)

	w := call(r, http.MethodPost, "/admin/planetas", `{"nombre": "Naboo", "diametro": 12120}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":1,"nombre":"Naboo","temperatura":null,"diametro":12120,"gravedad":null,
		"poblacion":null,"terreno":null,"superficie_agua":null,"descripcion":null}`, w.Body.String())

	w = call(r, http.MethodPost, "/admin/planetas", `{"nombre": "Naboo"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(r, http.MethodPut, "/admin/planetas/1", `{"terreno": "grassy hills"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"terreno":"grassy hills"`)
	assert.Contains(t, w.Body.String(), `"diametro":12120`)

	w = call(r, http.MethodPut, "/admin/planetas/1", `{"id": 2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, http.MethodGet, "/admin/planetas", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Naboo", rows[0]["nombre"])

	assert.Equal(t, http.StatusOK, call(r, http.MethodDelete, "/admin/planetas/1", "").Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodGet, "/admin/planetas/1", "").Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodDelete, "/admin/planetas/1", "").Code)
}

func TestUserPasswordIsHashedAndHidden(t *testing.T) {
	r, gdb := newConsole(t)

	w := call(r, http.MethodPost, "/admin/usuario", `{"username": "han", "email": "han@x.com", "password": "solo", "is_active": true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	var user model.User
	require.NoError(t, gdb.First(&user).Error)
	assert.True(t, user.CheckPassword("solo"))

	w = call(r, http.MethodPut, "/admin/usuario/1", `{"nombre": "Han"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, gdb.First(&user).Error)
	assert.Equal(t, "Han", user.Name)
	assert.True(t, user.CheckPassword("solo"))
}

func TestUserPasswordCannotBeEmptied(t *testing.T) {
	r, gdb := newConsole(t)

	w := call(r, http.MethodPost, "/admin/usuario", `{"username": "lando", "email": "lando@x.com", "is_active": true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = call(r, http.MethodPost, "/admin/usuario", `{"username": "lando", "email": "lando@x.com", "password": "cloud", "is_active": true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(r, http.MethodPut, "/admin/usuario/1", `{"password": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var user model.User
	require.NoError(t, gdb.First(&user).Error)
	assert.True(t, user.CheckPassword("cloud"))
}

func TestFavoriteKeyFollowsAdminEdits(t *testing.T) {
	r, gdb := newConsole(t)
	ref := dbtest.SeedReference(t, gdb)
	require.NoError(t, gdb.Create(&model.User{Username: "u", Email: "u@x.com", Password: "p", IsActive: true}).Error)

	w := call(r, http.MethodPost, "/admin/favoritos", `{"usuario_id": 1, "planeta_id": 1, "activo": true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var fav model.Favorite
	require.NoError(t, gdb.First(&fav).Error)
	assert.Equal(t, "v:-;c:-;p:1", fav.TargetKey)

	w = call(r, http.MethodPut, "/admin/favoritos/1", `{"planeta_id": null, "vehiculo_id": 1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, gdb.First(&fav).Error)
	assert.Equal(t, "v:1;c:-;p:-", fav.TargetKey)
	assert.Equal(t, ref.Vehicle.ID, *fav.VehicleID)
}

func TestUnknownEntity(t *testing.T) {
	r, _ := newConsole(t)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodGet, "/admin/droids", "").Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodPost, "/admin/droids", "{}").Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodGet, "/admin/planetas/x", "").Code)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPost, "/admin/planetas", "{").Code)
}

func TestCharacterDatesRoundTrip(t *testing.T) {
	r, _ := newConsole(t)

	w := call(r, http.MethodPost, "/admin/personajes",
		`{"nombre": "Han", "apellidos": "Solo", "genero": "hombre", "nacimiento": "1942-07-13"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "1942-07-13", created["nacimiento"])

	w = call(r, http.MethodPut, "/admin/personajes/1", `{"altura": 180}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "1942-07-13", updated["nacimiento"])
	assert.EqualValues(t, 180, updated["altura"])

	w = call(r, http.MethodPut, "/admin/personajes/1", `{"nacimiento": "yesterday"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
