package authorization

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RolePrincipal  UserRole = "principal"
	RoleTeacher    UserRole = "teacher"
	RoleStudent    UserRole = "student"
	RoleParent     UserRole = "parent"
)

var validRoles = map[UserRole]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RolePrincipal:  true,
	RoleTeacher:    true,
	RoleStudent:    true,
	RoleParent:     true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

// IsStaff reports whether the role belongs to school personnel with
// administrative or teaching duties.
func (r UserRole) IsStaff() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RolePrincipal, RoleTeacher:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// ParseUserRole falls back to student, the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleStudent
}

// AllRoles returns every valid role, used for policy seeding.
func AllRoles() []UserRole {
	return []UserRole{
		RoleSuperAdmin,
		RoleAdmin,
		RolePrincipal,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}
}
