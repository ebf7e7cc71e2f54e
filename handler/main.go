package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"log"
	"starwars-api/api"
	"starwars-api/config"
	"starwars-api/db"
	"starwars-api/gateway"
	"starwars-api/services"
)

var (
	cfg         *config.Config
	proxy       *gateway.Proxy
	seedService *services.SeedService
)

func init() {
	cfg = config.Load()
	database, err := db.InitDB(cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to DB: %v", err))
	}
	proxy = gateway.New(api.SetupRouter(database, cfg))
	seedService = &services.SeedService{DB: database}
}

func eventBridgeHandler(ctx context.Context, event events.CloudWatchEvent) (string, error) {
	log.Printf("EventBridge (%s) triggered reference data refresh", event.DetailType)

	res, err := seedService.Refresh(ctx, cfg.SeedBucket, cfg.SeedKey)
	if err != nil {
		log.Printf("Error refreshing reference data: %v", err)
		return "Failed to refresh reference data", err
	}

	return fmt.Sprintf("Reference data refreshed: %d personajes, %d planetas, %d vehiculos",
		res.Characters, res.Planets, res.Vehicles), nil
}

func handler(ctx context.Context, rawEvent json.RawMessage) (interface{}, error) {
	// Try to unmarshal as API Gateway event
	var apiReq events.APIGatewayProxyRequest
	if err := json.Unmarshal(rawEvent, &apiReq); err == nil && apiReq.HTTPMethod != "" {
		return proxy.Handle(ctx, apiReq)
	}

	// Try to unmarshal as EventBridge event
	var ebEvent events.CloudWatchEvent
	if err := json.Unmarshal(rawEvent, &ebEvent); err == nil && ebEvent.Source != "" {
		return eventBridgeHandler(ctx, ebEvent)
	}

	log.Println("Unknown event format")
	return nil, fmt.Errorf("unsupported event format")
}

func main() {
	lambda.Start(handler)
}
