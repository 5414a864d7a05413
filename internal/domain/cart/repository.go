package cart

import "context"

// Repository defines persistence operations for cart rows
type Repository interface {
	// Upsert atomically inserts the row or, when a row for the same
	// (user, menu item) already exists, replaces its quantity and
	// recomputes price from the stored unit price. The returned row is
	// the post-mutation state.
	Upsert(ctx context.Context, item *Item) (*Item, error)
	FindByUserAndMenuItem(ctx context.Context, userID, menuItemID uint) (*Item, error)
	// ListByUser returns the caller's rows joined with menu item data.
	ListByUser(ctx context.Context, userID uint) ([]Line, error)
	// ClearByUser removes all of one user's rows and returns the count.
	ClearByUser(ctx context.Context, userID uint) (int64, error)
}
