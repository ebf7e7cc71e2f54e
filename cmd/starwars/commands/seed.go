package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"starwars-api/services"
)

var (
	seedFile   string
	seedFromS3 bool
	bucket     string
	objectKey  string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load personajes, planetas and vehiculos from a seed document",
	Long: `seed upserts reference data by nombre from a JSON document of the form
{"personajes": [...], "planetas": [...], "vehiculos": [...]}, read either
from --file or from S3 (--s3, with --bucket/--key or SEED_BUCKET/SEED_KEY).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := connect()
		if err != nil {
			return err
		}
		seeds := &services.SeedService{DB: database}

		var res services.SeedResult
		switch {
		case seedFromS3:
			store, err := s3Store(cmd)
			if err != nil {
				return err
			}
			res, err = seeds.LoadFromStore(cmd.Context(), store, key())
			if err != nil {
				return err
			}
		case seedFile != "":
			f, err := os.Open(seedFile)
			if err != nil {
				return err
			}
			defer f.Close()
			if res, err = seeds.Load(cmd.Context(), f); err != nil {
				return err
			}
		default:
			return errors.New("either --file or --s3 is required")
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the reference data as a seed document",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := connect()
		if err != nil {
			return err
		}
		seeds := &services.SeedService{DB: database}

		switch {
		case seedFromS3:
			store, err := s3Store(cmd)
			if err != nil {
				return err
			}
			if err := seeds.ExportToStore(cmd.Context(), store, key()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to s3://%s/%s\n", store.Bucket, key())
			return nil
		case seedFile != "":
			f, err := os.Create(seedFile)
			if err != nil {
				return err
			}
			defer f.Close()
			return seeds.Export(cmd.Context(), f)
		default:
			return seeds.Export(cmd.Context(), cmd.OutOrStdout())
		}
	},
}

func s3Store(cmd *cobra.Command) (*services.S3Client, error) {
	b := bucket
	if b == "" {
		b = cfg.SeedBucket
	}
	return services.NewS3Client(cmd.Context(), b)
}

func key() string {
	if objectKey != "" {
		return objectKey
	}
	return cfg.SeedKey
}

func init() {
	for _, c := range []*cobra.Command{seedCmd, exportCmd} {
		c.Flags().StringVarP(&seedFile, "file", "f", "", "Local seed document")
		c.Flags().BoolVar(&seedFromS3, "s3", false, "Use the S3 object instead of a local file")
		c.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (overrides SEED_BUCKET)")
		c.Flags().StringVar(&objectKey, "key", "", "S3 object key (overrides SEED_KEY)")
		rootCmd.AddCommand(c)
	}
}
