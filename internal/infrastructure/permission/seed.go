package permission

import (
	"fmt"

	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/logger"
)

// SeedPolicies installs the default role policies. AddPolicy is a no-op
// for rows that already exist, so seeding is safe to run on every boot.
func SeedPolicies(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admins manage the whole school.
		{authorization.RoleAdmin.String(), "accounts", "manage"},
		{authorization.RoleAdmin.String(), "students", "manage"},
		{authorization.RoleAdmin.String(), "staff", "manage"},
		{authorization.RoleAdmin.String(), "attendance", "manage"},
		{authorization.RoleAdmin.String(), "fees", "manage"},
		{authorization.RoleAdmin.String(), "library", "manage"},
		{authorization.RoleAdmin.String(), "transport", "manage"},
		{authorization.RoleAdmin.String(), "announcements", "manage"},
		{authorization.RoleAdmin.String(), "exams", "manage"},
		{authorization.RoleAdmin.String(), "activity", "read"},

		// Principals oversee academics and people but not billing.
		{authorization.RolePrincipal.String(), "students", "manage"},
		{authorization.RolePrincipal.String(), "staff", "read"},
		{authorization.RolePrincipal.String(), "attendance", "manage"},
		{authorization.RolePrincipal.String(), "announcements", "manage"},
		{authorization.RolePrincipal.String(), "exams", "manage"},
		{authorization.RolePrincipal.String(), "activity", "read"},

		// Teachers mark attendance and read their classes.
		{authorization.RoleTeacher.String(), "students", "read"},
		{authorization.RoleTeacher.String(), "attendance", "manage"},
		{authorization.RoleTeacher.String(), "announcements", "read"},
		{authorization.RoleTeacher.String(), "exams", "read"},
		{authorization.RoleTeacher.String(), "library", "read"},

		// Students and parents see their own slices.
		{authorization.RoleStudent.String(), "attendance", "read"},
		{authorization.RoleStudent.String(), "fees", "read"},
		{authorization.RoleStudent.String(), "library", "read"},
		{authorization.RoleStudent.String(), "announcements", "read"},
		{authorization.RoleStudent.String(), "exams", "read"},

		{authorization.RoleParent.String(), "students", "read"},
		{authorization.RoleParent.String(), "attendance", "read"},
		{authorization.RoleParent.String(), "fees", "read"},
		{authorization.RoleParent.String(), "announcements", "read"},
		{authorization.RoleParent.String(), "exams", "read"},
	}

	enf := e.Raw()
	for _, p := range policies {
		if _, err := enf.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s %s %s]: %w", p[0], p[1], p[2], err)
		}
	}

	// super_admin inherits everything admin can do.
	if _, err := enf.AddGroupingPolicy(authorization.RoleSuperAdmin.String(), authorization.RoleAdmin.String()); err != nil {
		return fmt.Errorf("failed to add role inheritance: %w", err)
	}

	if err := enf.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policies: %w", err)
	}

	log.Info("permission policies seeded")
	return nil
}
