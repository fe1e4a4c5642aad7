package models

// Role identifies which account namespace a login belongs to
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// String implements fmt.Stringer
func (r Role) String() string {
	return string(r)
}
