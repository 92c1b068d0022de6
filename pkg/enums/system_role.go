package enums

// SystemRole identifies platform-level privileges carried on a user row.
type SystemRole string

const (
	SystemRoleMember SystemRole = "member"
	SystemRoleAdmin  SystemRole = "admin"
)

// IsValid reports whether the value matches a known system role.
func (r SystemRole) IsValid() bool {
	return r == SystemRoleMember || r == SystemRoleAdmin
}
