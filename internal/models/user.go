package models

// User represents a registered account. The username doubles as the public
// portfolio key.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

// RegisterForm carries the registration form fields.
type RegisterForm struct {
	Username string `form:"username" binding:"required,username"`
	Password string `form:"password" binding:"required"`
}

// LoginForm carries the login form fields.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
