package services

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"starwars-api/db/dbtest"
	"starwars-api/model"
	"strings"
	"testing"
)

const seedJSON = `{
  "personajes": [
    {"nombre": "Leia", "apellidos": "Organa", "genero": "mujer", "nacimiento": "1956-10-21", "altura": 150, "color_pelo": "brown"}
  ],
  "planetas": [
    {"nombre": "Alderaan", "temperatura": "temperate", "diametro": 12500, "poblacion": 2000000000},
    {"nombre": "Hoth", "terreno": "tundra"}
  ],
  "vehiculos": [
    {"id": 77, "nombre": "Snowspeeder", "longitud": 4.5, "pilotos": 2}
  ]
}`

type memStore map[string][]byte

func (m memStore) GetObject(_ context.Context, key string) (io.ReadCloser, error) {
	b, ok := m[key]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m memStore) PutObject(_ context.Context, key string, body []byte, _ string) error {
	m[key] = body
	return nil
}

func TestSeedLoadIsIdempotent(t *testing.T) {
	gdb := dbtest.New(t)
	svc := &SeedService{DB: gdb}
	ctx := context.Background()

	res, err := svc.Load(ctx, strings.NewReader(seedJSON))
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Characters: 1, Planets: 2, Vehicles: 1}, res)

	_, err = svc.Load(ctx, strings.NewReader(seedJSON))
	require.NoError(t, err)

	var planets []model.Planet
	require.NoError(t, gdb.Order("id").Find(&planets).Error)
	require.Len(t, planets, 2)
	assert.Equal(t, "Alderaan", planets[0].Name)
	assert.EqualValues(t, 2000000000, *planets[0].Population)
	assert.Nil(t, planets[1].Diameter)

	var vehicle model.Vehicle
	require.NoError(t, gdb.First(&vehicle).Error)
	assert.NotEqual(t, uint(77), vehicle.ID)
	assert.InDelta(t, 4.5, *vehicle.Length, 0.001)
}

func TestSeedRejectsBadRows(t *testing.T) {
	svc := &SeedService{DB: dbtest.New(t)}
	ctx := context.Background()

	_, err := svc.Load(ctx, strings.NewReader(`{"personajes": [{"nombre": "R2", "nacimiento": "yesterday"}]}`))
	assert.ErrorContains(t, err, "nacimiento")

	_, err = svc.Load(ctx, strings.NewReader(`{"personajes": [{"nombre": "R2", "genero": "droid", "nacimiento": "1977-05-25"}]}`))
	assert.ErrorContains(t, err, "genero")

	_, err = svc.Load(ctx, strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestSeedStoreRoundTrip(t *testing.T) {
	src := &SeedService{DB: dbtest.New(t)}
	ctx := context.Background()
	store := memStore{"seed.json": []byte(seedJSON)}

	_, err := src.LoadFromStore(ctx, store, "seed.json")
	require.NoError(t, err)
	require.NoError(t, src.ExportToStore(ctx, store, "export.json"))
	assert.Contains(t, string(store["export.json"]), `"Snowspeeder"`)

	dst := &SeedService{DB: dbtest.New(t)}
	res, err := dst.LoadFromStore(ctx, store, "export.json")
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Characters: 1, Planets: 2, Vehicles: 1}, res)

	_, err = dst.LoadFromStore(ctx, store, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}
