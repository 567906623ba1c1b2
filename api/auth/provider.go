package auth

import (
	"github.com/genvault/genvault/config"
	"github.com/genvault/genvault/database"
)

// Provider authenticates users against the local user store. Passwords are
// verified with bcrypt, sessions carry the authenticated state, and a signed
// bearer token is issued as an alternative credential.
type Provider struct {
	db            database.DB
	secretKey     []byte
	sessionMaxAge int
}

// New creates a new credentials provider.
func New(db database.DB, cfg *config.Config) *Provider {
	return &Provider{
		db:            db,
		secretKey:     []byte(cfg.SecretKey),
		sessionMaxAge: cfg.SessionMaxAge,
	}
}
