package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/phenrril/flexlinen/internal/domain"
)

// SnapshotRepo stores snapshots in the snapshots table, one row per key.
type SnapshotRepo struct{ db *gorm.DB }

func NewSnapshotRepo(db *gorm.DB) *SnapshotRepo { return &SnapshotRepo{db: db} }

// Migrate creates or updates the snapshots table.
func (r *SnapshotRepo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&domain.Snapshot{})
}

func (r *SnapshotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var s domain.Snapshot
	if err := r.db.WithContext(ctx).First(&s, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return []byte(s.Value), nil
}

// Set upserts the row for key.
func (r *SnapshotRepo) Set(ctx context.Context, key string, value []byte) error {
	s := domain.Snapshot{Key: key, Value: string(value), UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&s).Error
}

func (r *SnapshotRepo) Delete(ctx context.Context, key string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Snapshot{}, "key = ?", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
