package authorization

// UserRole is the coarse role carried in access tokens. Fine-grained
// capabilities are resolved from it by the policy enforcer.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole maps unknown values to RoleUser.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if !role.IsValid() {
		return RoleUser
	}
	return role
}
