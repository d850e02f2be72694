package services

import (
	"context"
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/platform/config"
	"github.com/maktab-hr/manpower_office_app/internal/utils"
)

// tokenService implements TokenSvc for issuing JWT access tokens.
type tokenService struct {
	cfg *config.Config
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a signed JWT carrying the user's role claim.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	return utils.GenerateJWT(user.UserID, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}
