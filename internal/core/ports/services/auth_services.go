package services

import (
	"context"
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvc issues the application's JWT access tokens.
type TokenSvc interface {
	// GenerateAccessToken creates a signed JWT for the user carrying the role
	// claim, returning the token and its expiry instant.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvc wraps the Google authorization-code exchange and ID token
// verification used by the dashboard's "Sign in with Google" flow.
type GoogleOAuthSvc interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, rawIDToken string) (*idtoken.Payload, error)
}
