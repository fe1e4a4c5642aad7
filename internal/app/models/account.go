package models

// Account is a student or teacher identity record. Both roles share one shape;
// their identifiers live in separate namespaces (tables).
type Account struct {
	Role         Role    `db:"-"`
	ID           string  `db:"id"` // login name, primary key
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	Phone        *string `db:"phone_number"`
	PasswordHash string  `db:"password"` // never rendered
	Gender       *string `db:"gender"`
	Dept         *string `db:"dept"`
}

// DeptOrEmpty returns the department or "" when unset
func (a *Account) DeptOrEmpty() string {
	if a.Dept == nil {
		return ""
	}
	return *a.Dept
}
