package models

import (
	"time"

	"github.com/google/uuid"
)

// FormSnapshot persists raw (un-aggregated) wizard form state as an opaque
// blob. Writes are last-write-wins per (tenant, key).
type FormSnapshot struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID  string    `json:"tenantId" gorm:"type:varchar(255);not null;uniqueIndex:idx_snapshot_unique,priority:1"`
	Key       string    `json:"key" gorm:"type:varchar(255);not null;uniqueIndex:idx_snapshot_unique,priority:2"`
	Payload   string    `json:"payload" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
