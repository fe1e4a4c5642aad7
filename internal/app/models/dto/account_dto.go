package dto

// RegisterRequest represents an account registration form. The identifier,
// name, gender and dept inputs carry a role prefix on the page
// (student_id, teacher_name, ...), so controllers fill this struct by hand.
// Optional fields are nil when the input was absent and "" when posted empty.
type RegisterRequest struct {
	ID       string  `form:"id" validate:"required,max=50"`
	Name     string  `form:"name" validate:"required,max=120"`
	Email    string  `form:"email" validate:"required,max=120"`
	Phone    *string `form:"phone_number" validate:"omitempty,max=20"`
	Password string  `form:"password" validate:"-"`
	Gender   *string `form:"gender" validate:"omitempty,max=20"`
	Dept     *string `form:"dept" validate:"omitempty,max=80"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Identifier string
	Password   string
}
