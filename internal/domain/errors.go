package domain

import "errors"

// Champion catalog errors
var (
	ErrChampionNotFound = errors.New("champion not found")
	ErrInvalidChampion  = errors.New("invalid champion id")
)

// Refresh job errors
var (
	ErrMissingAPIKey   = errors.New("missing RIOT_API_KEY")
	ErrMissingBucket   = errors.New("missing S3_BUCKET")
	ErrMissingDatabase = errors.New("missing DATABASE_URL")
	ErrNoCacheStore    = errors.New("no rotation cache store configured")
)
