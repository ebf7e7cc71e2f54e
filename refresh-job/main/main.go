package main

import (
	"context"
	"github.com/aws/aws-lambda-go/lambda"
	"starwars-api/config"
	"starwars-api/db"
	"starwars-api/services"
)

func handler(ctx context.Context) (services.SeedResult, error) {
	cfg := config.Load()
	database, err := db.InitDB(cfg)
	if err != nil {
		return services.SeedResult{}, err
	}

	seeds := services.SeedService{DB: database}
	return seeds.Refresh(ctx, cfg.SeedBucket, cfg.SeedKey)
}

func main() {
	lambda.Start(handler)
}
