package users

type UserRepo interface {
	// Create stores a new user, failing with errors.ErrEmailTaken if the email exists
	Create(user *User) error
	GetByEmail(email string) (*User, error)
	SetLastLogin(email string) error
}
