package shared

import "time"

// BaseEntity provides common fields for all entities.
// IDs are database-assigned auto-increment integers so that foreign keys
// such as the default menu category can be referenced by a stable number.
type BaseEntity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uint {
	return e.ID
}
