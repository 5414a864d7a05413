package identity

import "context"

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByUsername loads the user with group memberships attached.
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, user *User) error
}

// GroupRepository defines persistence operations for groups and membership
type GroupRepository interface {
	FindByName(ctx context.Context, name string) (*Group, error)
	ListMembers(ctx context.Context, groupName string) ([]User, error)
	AddMember(ctx context.Context, groupName string, userID uint) error
	RemoveMember(ctx context.Context, groupName string, userID uint) error
}
