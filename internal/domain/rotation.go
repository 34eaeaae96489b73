package domain

import "time"

type RotationSource string

const (
	RotationSourceCache RotationSource = "cache"
	RotationSourceRiot  RotationSource = "riot"
)

// RotationDocument is the cached rotation as stored in the object store.
// Timestamp is in epoch seconds.
type RotationDocument struct {
	Timestamp     int64      `json:"timestamp"`
	FreeChampions []Champion `json:"freeChampions"`
}

func NewRotationDocument(now time.Time, champions []Champion) *RotationDocument {
	if champions == nil {
		champions = []Champion{}
	}
	return &RotationDocument{
		Timestamp:     now.Unix(),
		FreeChampions: champions,
	}
}

// IsFresh reports whether the document is at most maxAge old at now.
func (d *RotationDocument) IsFresh(now time.Time, maxAge time.Duration) bool {
	return now.Unix()-d.Timestamp <= int64(maxAge/time.Second)
}

// Rotation is the champion rotation returned to API clients.
type Rotation struct {
	Source        RotationSource `json:"source,omitempty"`
	FreeChampions []Champion     `json:"freeChampions"`
}
