package database

import "context"

// DB defines the persistence operations used by the API layer.
type DB interface {
	// User operations
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)

	// GeneratedText operations
	CreateGeneratedText(ctx context.Context, userID uint, prompt, response string) (*GeneratedText, error)
	ListGeneratedTextsByUser(ctx context.Context, userID uint) ([]GeneratedText, error)
}
