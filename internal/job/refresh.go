// Package job runs the scheduled champion rotation refresh.
package job

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/dom/league-profile-gateway/internal/config"
	"github.com/dom/league-profile-gateway/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Refresher rewrites the cached rotation and reports how many champions it wrote.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Flusher exports buffered telemetry before the invocation is frozen.
type Flusher interface {
	ForceFlush(ctx context.Context) error
}

// Setup builds a Refresher for one invocation. The returned func releases it.
type Setup func(ctx context.Context, cfg *config.Config) (Refresher, func(), error)

type CountResponse struct {
	Count int `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// RotationRefreshJob is the Lambda handler for the refresh job.
type RotationRefreshJob struct {
	cfg     *config.Config
	setup   Setup
	flusher Flusher
}

func NewRotationRefreshJob(cfg *config.Config, setup Setup) *RotationRefreshJob {
	return &RotationRefreshJob{cfg: cfg, setup: setup}
}

// WithFlusher makes Handle flush f after every invocation, whatever its outcome.
func (j *RotationRefreshJob) WithFlusher(f Flusher) *RotationRefreshJob {
	j.flusher = f
	return j
}

// Validate checks the settings a refresh cannot run without.
func Validate(cfg *config.Config) error {
	if cfg.RiotAPIKey == "" {
		return domain.ErrMissingAPIKey
	}

	switch cfg.CacheBackend {
	case config.CacheBackendS3:
		if cfg.S3Bucket == "" {
			return domain.ErrMissingBucket
		}
	case config.CacheBackendPostgres:
		if cfg.DatabaseURL == "" {
			return domain.ErrMissingDatabase
		}
	default:
		return domain.ErrNoCacheStore
	}
	return nil
}

// Handle runs one refresh. Failures are reported in the response, never as a
// returned error, so the invocation itself always succeeds.
func (j *RotationRefreshJob) Handle(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	defer j.flush(ctx)

	if err := Validate(j.cfg); err != nil {
		log.WithError(err).Error("refresh job misconfigured")
		return errorResponse(err), nil
	}

	refresher, release, err := j.setup(ctx, j.cfg)
	if err != nil {
		log.WithError(err).Error("failed to set up refresh job")
		return errorResponse(err), nil
	}
	defer release()

	count, err := refresher.Refresh(ctx)
	if err != nil {
		return errorResponse(err), nil
	}

	return response(http.StatusOK, CountResponse{Count: count}), nil
}

func (j *RotationRefreshJob) flush(ctx context.Context) {
	if j.flusher == nil {
		return
	}
	if err := j.flusher.ForceFlush(ctx); err != nil {
		log.WithError(err).Warn("failed to flush metrics")
	}
}

func errorResponse(err error) events.APIGatewayProxyResponse {
	return response(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func response(status int, v interface{}) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(v)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
