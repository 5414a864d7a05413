package identity

import "github.com/littlelemon/backend/internal/domain/shared"

// Well-known group names
const (
	GroupManager      = "manager"
	GroupDeliveryCrew = "delivery-crew"
)

// Group is a named role container granting elevated permissions.
type Group struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(150);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Group) TableName() string {
	return "groups"
}

// KnownGroup reports whether name is one of the well-known groups
func KnownGroup(name string) bool {
	return name == GroupManager || name == GroupDeliveryCrew
}
