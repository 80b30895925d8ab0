package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, and create blogs.
type User struct {
	ID           string    // Unique identifier
	Name         string    // Display name
	Username     string    // Login username (unique)
	PasswordHash string    // Bcrypt hashed password
	CreatedAt    time.Time // Account creation timestamp
	UpdatedAt    time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	GetByIDs(ctx context.Context, ids []string) ([]User, error)

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	// Returns ErrConflict if the username already exists.
	Insert(ctx context.Context, u *User) error

	// Fetch lists every user.
	Fetch(ctx context.Context) ([]User, error)
}

// Session is what a successful login hands back to the client.
type Session struct {
	Token    string
	Username string
	Name     string
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrBadParamInput if the username is taken or the input is too short.
	Register(ctx context.Context, name, username, password string) (User, error)

	// Login verifies user credentials and returns a signed token.
	// Returns ErrUnauthorized if the username or password is wrong.
	Login(ctx context.Context, username, password string) (Session, error)

	Fetch(ctx context.Context) ([]User, error)
}
