package services

import (
	"context"
	"testing"

	"github.com/hmonterrosa/scoring-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-admin"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		AttendantPassword: "feria2024",
	})
}

func TestAuthServiceAdminLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Login(context.Background(), LoginInput{
		Name:     "admin",
		Password: "s3cret-admin",
		Admin:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Administrador", user.Name)
}

func TestAuthServiceAdminWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{
		Name:     "admin",
		Password: "wrong",
		Admin:    true,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceAdminWrongUsername(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{
		Name:     "root",
		Password: "s3cret-admin",
		Admin:    true,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceAttendantLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Login(context.Background(), LoginInput{
		Name:     "Carlos",
		Password: "feria2024",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAttendant, user.Role)
	assert.Equal(t, "Carlos", user.Name)
}

func TestAuthServiceAttendantWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{
		Name:     "Carlos",
		Password: "feria2023",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceEmptyCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginInput{Name: "", Password: "feria2024"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Name: "Carlos", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
