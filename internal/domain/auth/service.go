package auth

import "context"

type AuthService interface {
	// Register creates a staff account from an email/password signup and
	// signs the new user in
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login authenticates an email/password pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle signs a Google account in, provisioning a staff user on
	// first sight and linking the Google ID for returning password users
	LoginWithGoogle(ctx context.Context, email string, name string, googleID string) (TokenResponse, error)

	// RefreshToken exchanges a live refresh token for a new access token
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, token string) error
}
