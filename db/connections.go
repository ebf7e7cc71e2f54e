package db

import (
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"log"
	"starwars-api/config"
	"starwars-api/model"
	"sync"
)

var (
	DB      *gorm.DB
	once    sync.Once
	initErr error
)

// Models lists every table managed by the API.
func Models() []any {
	return []any{&model.User{}, &model.Character{}, &model.Planet{}, &model.Vehicle{}, &model.Favorite{}}
}

// Open connects through the given dialector with the settings every
// entry point shares: translated driver errors and a quiet logger.
func Open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
}

func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// InitDB opens the postgres connection pool once per process and migrates it.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	once.Do(func() {
		var err error
		DB, err = Open(postgres.Open(cfg.DSN()), cfg.DBDebug)
		if err != nil {
			initErr = fmt.Errorf("connect to database: %w", err)
			return
		}
		log.Println("Successfully connected to the database")

		if err = Migrate(DB); err != nil {
			initErr = err
			return
		}
		log.Println("Migrated")
	})
	return DB, initErr
}
