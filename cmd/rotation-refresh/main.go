package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dom/league-profile-gateway/internal/app"
	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/job"
	"github.com/dom/league-profile-gateway/internal/observability"
	log "github.com/sirupsen/logrus"
)

func main() {
	once := flag.Bool("once", false, "run a single refresh locally and print the response")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	observability.SetupLogging(cfg)

	metrics := observability.NewMetricsProvider(cfg, "league-rotation-refresh")
	if err := metrics.Initialize(context.Background()); err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	refreshJob := job.NewRotationRefreshJob(cfg, app.RefreshSetup(metrics)).WithFlusher(metrics)

	if *once {
		resp, _ := refreshJob.Handle(context.Background())
		out, _ := json.Marshal(resp)
		fmt.Println(string(out))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		metrics.Shutdown(ctx)
		return
	}

	lambda.Start(refreshJob.Handle)
}
