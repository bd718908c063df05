package models

import "time"

// AuditLog records who changed an entity, with before/after JSON snapshots.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EntityType  string    `gorm:"type:varchar(32);not null;index" json:"entity_type"`
	EntityID    uint      `gorm:"not null;index" json:"entity_id"`
	Action      string    `gorm:"type:varchar(16);not null" json:"action"`
	Actor       string    `gorm:"type:varchar(32)" json:"actor,omitempty"`
	OldValue    *string   `gorm:"type:text" json:"old_value,omitempty"`
	NewValue    *string   `gorm:"type:text" json:"new_value,omitempty"`
	Changes     *string   `gorm:"type:text" json:"changes,omitempty"`
	IPAddress   *string   `gorm:"type:varchar(64)" json:"ip_address,omitempty"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// All lists every model the server migrates.
func All() []any {
	return []any{&User{}, &MenuItem{}, &Order{}, &OrderItem{}, &OrderSequence{}, &AuditLog{}}
}
