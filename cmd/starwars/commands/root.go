package commands

import (
	"fmt"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"os"
	"starwars-api/config"
	"starwars-api/db"
)

var (
	// Global flags
	dbURL   string
	verbose bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "starwars",
	Short: "Star Wars characters, planets, vehicles and user favorites over HTTP",
	Long: `starwars serves the reference catalogue (personajes, planetas, vehiculos),
user accounts and their favorites as a JSON API, plus an admin console
under /admin.

Configuration is read from .env and the environment (DATABASE_URL or
DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME, PORT, CORS_ORIGINS,
SEED_BUCKET, SEED_KEY). Flags override the environment.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if dbURL != "" {
			cfg.DatabaseURL = dbURL
		}
		if verbose {
			cfg.DBDebug = true
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every SQL statement")
}

func connect() (*gorm.DB, error) {
	return db.InitDB(cfg)
}
