package services

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/hmonterrosa/scoring-dashboard/utils"
)

// AuthService validates logins against the configured shared secrets. There
// is no user table: admins present the configured username and password,
// attendants present any display name plus the shared attendant password.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.User, error)
}

type LoginInput struct {
	Name     string
	Password string
	Admin    bool
}

type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	AttendantPassword string
}

type authService struct {
	cfg AuthConfig
}

func NewAuthService(cfg AuthConfig) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(_ context.Context, input LoginInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	if input.Admin {
		if name != s.cfg.AdminUsername {
			return nil, ErrInvalidCredentials
		}
		if !utils.CheckPasswordHash(input.Password, s.cfg.AdminPasswordHash) {
			return nil, ErrInvalidCredentials
		}
		return &models.User{Name: "Administrador", Role: models.RoleAdmin}, nil
	}

	if subtle.ConstantTimeCompare([]byte(input.Password), []byte(s.cfg.AttendantPassword)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return &models.User{Name: name, Role: models.RoleAttendant}, nil
}
