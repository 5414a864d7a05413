package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID with group memberships
func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).Preload("Groups").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username with group memberships
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var user identity.User
	if err := r.db.WithContext(ctx).
		Preload("Groups").
		Where("username = ?", strings.ToLower(username)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername checks whether a username is taken
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Where("username = ?", strings.ToLower(username)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	if err := r.db.WithContext(ctx).Omit("Groups").Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Ensure GormUserRepository implements identity.UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)

// GormGroupRepository implements identity.GroupRepository using GORM
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GormGroupRepository
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// FindByName finds a group by its name
func (r *GormGroupRepository) FindByName(ctx context.Context, name string) (*identity.Group, error) {
	var group identity.Group
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// ListMembers returns all users belonging to the named group
func (r *GormGroupRepository) ListMembers(ctx context.Context, groupName string) ([]identity.User, error) {
	group, err := r.FindByName(ctx, groupName)
	if err != nil {
		return nil, err
	}

	var users []identity.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Where("user_groups.group_id = ?", group.ID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddMember adds a user to the named group; adding twice is a no-op
func (r *GormGroupRepository) AddMember(ctx context.Context, groupName string, userID uint) error {
	group, err := r.FindByName(ctx, groupName)
	if err != nil {
		return err
	}

	var user identity.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}

	return r.db.WithContext(ctx).Model(&user).Association("Groups").Append(group)
}

// RemoveMember removes a user from the named group
func (r *GormGroupRepository) RemoveMember(ctx context.Context, groupName string, userID uint) error {
	group, err := r.FindByName(ctx, groupName)
	if err != nil {
		return err
	}

	var user identity.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}

	return r.db.WithContext(ctx).Model(&user).Association("Groups").Delete(group)
}

// Ensure GormGroupRepository implements identity.GroupRepository
var _ identity.GroupRepository = (*GormGroupRepository)(nil)
