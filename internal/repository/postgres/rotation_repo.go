package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RotationCacheEntry holds one cached rotation document per key.
type RotationCacheEntry struct {
	Key       string         `gorm:"primaryKey"`
	Document  datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (RotationCacheEntry) TableName() string {
	return "rotation_cache"
}

type rotationCacheRepository struct {
	db  *gorm.DB
	key string
}

// NewRotationCacheRepository stores the document in the row identified by key.
func NewRotationCacheRepository(db *gorm.DB, key string) *rotationCacheRepository {
	return &rotationCacheRepository{db: db, key: key}
}

func (r *rotationCacheRepository) Get(ctx context.Context) (*domain.RotationDocument, error) {
	var entry RotationCacheEntry
	err := r.db.WithContext(ctx).First(&entry, "key = ?", r.key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}

	var doc domain.RotationDocument
	if err := json.Unmarshal(entry.Document, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode rotation document: %w", err)
	}
	return &doc, nil
}

func (r *rotationCacheRepository) Put(ctx context.Context, doc *domain.RotationDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode rotation document: %w", err)
	}

	entry := &RotationCacheEntry{
		Key:       r.key,
		Document:  datatypes.JSON(body),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(entry).Error
}

func NewRepositories(db *gorm.DB, key string) *repository.Repositories {
	return &repository.Repositories{
		RotationCache: NewRotationCacheRepository(db, key),
	}
}
