package identity

// Role is the access level of a request principal, resolved once at
// request entry and passed explicitly to handlers. Higher values include
// all permissions of lower ones.
type Role int

const (
	RoleAnonymous Role = iota
	RoleAuthenticated
	RoleManager
	RoleAdmin
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleAuthenticated:
		return "authenticated"
	case RoleManager:
		return "manager"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// AtLeast reports whether the role grants at least the given level
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// Principal is the authenticated caller of a request. The zero value is
// the anonymous principal.
type Principal struct {
	UserID   uint
	Username string
	Role     Role
}

// Anonymous returns the unauthenticated principal
func Anonymous() Principal {
	return Principal{Role: RoleAnonymous}
}

// ResolveRole maps the admin flag and group names to a Role.
func ResolveRole(isAdmin bool, groups []string) Role {
	if isAdmin {
		return RoleAdmin
	}
	for _, g := range groups {
		if g == GroupManager {
			return RoleManager
		}
	}
	return RoleAuthenticated
}
