package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"io"
	"log"
	"starwars-api/model"
	"time"
)

// SeedService loads and exports the reference tables. Rows are keyed by
// their unique nombre, so loading the same document twice is idempotent.
type SeedService struct {
	DB *gorm.DB
}

// SeedResult counts the rows written per table.
type SeedResult struct {
	Characters int `json:"personajes"`
	Planets    int `json:"planetas"`
	Vehicles   int `json:"vehiculos"`
}

type seedDocument struct {
	Characters []model.Character `json:"personajes"`
	Planets    []model.Planet    `json:"planetas"`
	Vehicles   []model.Vehicle   `json:"vehiculos"`
}

// Load upserts every row of the JSON document read from r in one transaction.
func (s *SeedService) Load(ctx context.Context, r io.Reader) (SeedResult, error) {
	var doc seedDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return SeedResult{}, fmt.Errorf("decode seed document: %w", err)
	}

	characters := doc.Characters
	for i := range characters {
		c := &characters[i]
		if time.Time(c.BirthDate).IsZero() {
			return SeedResult{}, fmt.Errorf("personaje %q: nacimiento is required", c.Name)
		}
		if c.Gender != nil && !c.Gender.Valid() {
			return SeedResult{}, fmt.Errorf("personaje %q: genero %q", c.Name, *c.Gender)
		}
		c.ID = 0
	}
	for i := range doc.Planets {
		doc.Planets[i].ID = 0
	}
	for i := range doc.Vehicles {
		doc.Vehicles[i].ID = 0
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertByName(tx, characters); err != nil {
			return fmt.Errorf("personajes: %w", err)
		}
		if err := upsertByName(tx, doc.Planets); err != nil {
			return fmt.Errorf("planetas: %w", err)
		}
		if err := upsertByName(tx, doc.Vehicles); err != nil {
			return fmt.Errorf("vehiculos: %w", err)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	res := SeedResult{Characters: len(characters), Planets: len(doc.Planets), Vehicles: len(doc.Vehicles)}
	log.Printf("Reference data loaded: %d personajes, %d planetas, %d vehiculos", res.Characters, res.Planets, res.Vehicles)
	return res, nil
}

// Export writes every reference row in the document format Load accepts.
func (s *SeedService) Export(ctx context.Context, w io.Writer) error {
	var (
		characters []model.Character
		planets    []model.Planet
		vehicles   []model.Vehicle
	)
	q := s.DB.WithContext(ctx)
	if err := q.Order("id").Find(&characters).Error; err != nil {
		return err
	}
	if err := q.Order("id").Find(&planets).Error; err != nil {
		return err
	}
	if err := q.Order("id").Find(&vehicles).Error; err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"personajes":  model.SerializeAll(characters),
		"planetas":    model.SerializeAll(planets),
		"vehiculos":   model.SerializeAll(vehicles),
		"exported_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// LoadFromStore loads the document stored under key.
func (s *SeedService) LoadFromStore(ctx context.Context, store ObjectStore, key string) (SeedResult, error) {
	body, err := store.GetObject(ctx, key)
	if err != nil {
		return SeedResult{}, err
	}
	defer body.Close()
	return s.Load(ctx, body)
}

// ExportToStore writes the exported document under key.
func (s *SeedService) ExportToStore(ctx context.Context, store ObjectStore, key string) error {
	var buf bytes.Buffer
	if err := s.Export(ctx, &buf); err != nil {
		return err
	}
	return store.PutObject(ctx, key, buf.Bytes(), "application/json")
}

func upsertByName[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nombre"}},
		UpdateAll: true,
	}).Create(&rows).Error
}

// Refresh reloads the reference tables from s3://bucket/key.
func (s *SeedService) Refresh(ctx context.Context, bucket, key string) (SeedResult, error) {
	store, err := NewS3Client(ctx, bucket)
	if err != nil {
		return SeedResult{}, err
	}
	return s.LoadFromStore(ctx, store, key)
}
