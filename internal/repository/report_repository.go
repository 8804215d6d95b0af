package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"easytax-service/internal/models"
)

// Cache TTL constants
const (
	ReportCacheTTL   = 30 * time.Minute
	SnapshotCacheTTL = 24 * time.Hour
)

const cacheKeyPrefix = "easytax:"

// ReportRepository handles persistence of generated reports and raw form
// snapshots. Postgres is the source of truth; Redis fronts reads and holds
// the last-write-wins snapshot blobs.
type ReportRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB, redisClient *redis.Client) *ReportRepository {
	return &ReportRepository{
		db:    db,
		redis: redisClient,
	}
}

func reportCacheKey(kind string, id uuid.UUID) string {
	return fmt.Sprintf("%sreport:%s:%s", cacheKeyPrefix, kind, id.String())
}

func snapshotCacheKey(tenantID, key string) string {
	return fmt.Sprintf("%ssnapshot:%s:%s", cacheKeyPrefix, tenantID, key)
}

// SaveITRReport stores a generated ITR report
func (r *ReportRepository) SaveITRReport(ctx context.Context, report *models.ITRReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// SaveGSTReport stores a generated GST report
func (r *ReportRepository) SaveGSTReport(ctx context.Context, report *models.GSTReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// GetITRReport gets a stored ITR report by ID
func (r *ReportRepository) GetITRReport(ctx context.Context, id uuid.UUID) (*models.ITRReport, error) {
	cacheKey := reportCacheKey("itr", id)

	// Try cache first
	if r.redis != nil {
		val, err := r.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var report models.ITRReport
			if err := json.Unmarshal([]byte(val), &report); err == nil {
				return &report, nil
			}
		}
	}

	var report models.ITRReport
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(report); err == nil {
			r.redis.Set(ctx, cacheKey, data, ReportCacheTTL)
		}
	}

	return &report, nil
}

// GetGSTReport gets a stored GST report by ID
func (r *ReportRepository) GetGSTReport(ctx context.Context, id uuid.UUID) (*models.GSTReport, error) {
	cacheKey := reportCacheKey("gst", id)

	if r.redis != nil {
		val, err := r.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var report models.GSTReport
			if err := json.Unmarshal([]byte(val), &report); err == nil {
				return &report, nil
			}
		}
	}

	var report models.GSTReport
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(report); err == nil {
			r.redis.Set(ctx, cacheKey, data, ReportCacheTTL)
		}
	}

	return &report, nil
}

// ListITRReports lists stored ITR reports for a tenant, newest first
func (r *ReportRepository) ListITRReports(ctx context.Context, tenantID string) ([]models.ITRReport, error) {
	var reports []models.ITRReport
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// ListGSTReports lists stored GST reports for a tenant, newest first
func (r *ReportRepository) ListGSTReports(ctx context.Context, tenantID string) ([]models.GSTReport, error) {
	var reports []models.GSTReport
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// SaveSnapshot upserts a raw form snapshot blob, last write wins per
// (tenant, key). The Redis copy is refreshed best-effort.
func (r *ReportRepository) SaveSnapshot(ctx context.Context, tenantID, key, payload string) error {
	snapshot := models.FormSnapshot{
		TenantID: tenantID,
		Key:      key,
		Payload:  payload,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&snapshot).Error
	if err != nil {
		return err
	}

	if r.redis != nil {
		r.redis.Set(ctx, snapshotCacheKey(tenantID, key), payload, SnapshotCacheTTL)
	}
	return nil
}

// GetSnapshot fetches a raw form snapshot blob
func (r *ReportRepository) GetSnapshot(ctx context.Context, tenantID, key string) (string, error) {
	if r.redis != nil {
		val, err := r.redis.Get(ctx, snapshotCacheKey(tenantID, key)).Result()
		if err == nil {
			return val, nil
		}
	}

	var snapshot models.FormSnapshot
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND key = ?", tenantID, key).
		First(&snapshot).Error; err != nil {
		return "", err
	}

	if r.redis != nil {
		r.redis.Set(ctx, snapshotCacheKey(tenantID, key), snapshot.Payload, SnapshotCacheTTL)
	}
	return snapshot.Payload, nil
}
