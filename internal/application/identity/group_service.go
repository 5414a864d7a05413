package identity

import (
	"context"

	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MemberRequest names the user to add to or remove from a group
type MemberRequest struct {
	Username string `json:"username" binding:"required"`
}

// GroupService manages membership of the staff groups
type GroupService struct {
	users  identity.UserRepository
	groups identity.GroupRepository
	logger *zap.Logger
}

func NewGroupService(users identity.UserRepository, groups identity.GroupRepository, logger *zap.Logger) *GroupService {
	return &GroupService{users: users, groups: groups, logger: logger}
}

// ListMembers returns the users in a group
func (s *GroupService) ListMembers(ctx context.Context, groupName string) ([]UserResponse, error) {
	if !identity.KnownGroup(groupName) {
		return nil, shared.ErrNotFound
	}
	members, err := s.groups.ListMembers(ctx, groupName)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(members))
	for i := range members {
		out = append(out, toUserResponse(&members[i]))
	}
	return out, nil
}

// AddMember puts the named user into a group. Adding an existing member
// is a no-op.
func (s *GroupService) AddMember(ctx context.Context, groupName, username string) error {
	if !identity.KnownGroup(groupName) {
		return shared.ErrNotFound
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.InGroup(groupName) {
		return nil
	}
	if err := s.groups.AddMember(ctx, groupName, user.ID); err != nil {
		return err
	}
	s.logger.Info("group member added",
		zap.String("group", groupName),
		zap.String("username", username))
	return nil
}

// RemoveMember takes the named user out of a group. The user must
// currently be a member.
func (s *GroupService) RemoveMember(ctx context.Context, groupName, username string) error {
	if !identity.KnownGroup(groupName) {
		return shared.ErrNotFound
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !user.InGroup(groupName) {
		return shared.ErrNotFound
	}
	if err := s.groups.RemoveMember(ctx, groupName, user.ID); err != nil {
		return err
	}
	s.logger.Info("group member removed",
		zap.String("group", groupName),
		zap.String("username", username))
	return nil
}
