package users

import (
	"context"
	"time"
)

// Identity is the authenticated principal attached to each request.
type Identity struct {
	UserID    string
	LicenseID string
	Email     string
	Role      string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// UserService defines user management operations, all scoped to a license.
type UserService interface {
	// Create adds a user to the license. Fails with
	// licensing.ErrSeatLimitReached when every seat is occupied.
	Create(ctx context.Context, licenseID, email, name, role, password string) (*User, error)

	// List retrieves users belonging to the license.
	List(ctx context.Context, licenseID string) ([]*User, error)

	// GetByID retrieves a user, enforcing license scope.
	GetByID(ctx context.Context, licenseID, userID string) (*User, error)

	// SetActive activates or deactivates a user. Deactivation revokes all
	// of the user's tokens.
	SetActive(ctx context.Context, licenseID, userID string, active bool) (*User, error)
}

// AuthService defines login and token lifecycle operations.
type AuthService interface {
	// Login verifies email+password and issues a bearer token. The plain
	// token is returned exactly once.
	Login(ctx context.Context, email, password, tokenName string) (plainToken string, token *ApiToken, err error)

	// IssueToken creates an additional token for an existing user.
	IssueToken(ctx context.Context, licenseID, userID, tokenName string) (plainToken string, token *ApiToken, err error)

	// RevokeToken deletes a token by ID, enforcing license scope.
	RevokeToken(ctx context.Context, licenseID, tokenID string) error

	// ListTokens retrieves a user's tokens, hashes redacted by the handler.
	ListTokens(ctx context.Context, licenseID, userID string) ([]*ApiToken, error)

	// Authenticate resolves a plain bearer token to an identity and touches
	// LastUsedAt. Expired or unknown tokens fail with ErrInvalidCredentials.
	Authenticate(ctx context.Context, plainToken string) (*Identity, error)
}

// UserRepository defines the persistence interface for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, licenseID string) ([]*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
}

// TokenRepository defines the persistence interface for API tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *ApiToken) error
	GetByHash(ctx context.Context, tokenHash string) (*ApiToken, error)
	GetByID(ctx context.Context, tokenID string) (*ApiToken, error)
	ListByUser(ctx context.Context, userID string) ([]*ApiToken, error)
	TouchLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error
	DeleteByID(ctx context.Context, tokenID string) error
	DeleteByUser(ctx context.Context, userID string) error
}
