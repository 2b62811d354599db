package client

import (
	"context"

	"github.com/dmitrijs2005/lmsclient/internal/client/models"
)

// Requester issues a single JSON request. body and out may be nil; token is
// sent as a bearer credential when non-empty.
type Requester interface {
	Do(ctx context.Context, method, url string, body any, token string, out any) error
}

// Client is the typed LMS API surface used by the auth and profile services.
type Client interface {
	RequestRegistrationCode(ctx context.Context, profile models.RegistrationProfile) error
	VerifyRegistration(ctx context.Context, profile models.RegistrationProfile, otp string) (*models.AuthResult, error)
	RequestLoginCode(ctx context.Context, email string) error
	VerifyLogin(ctx context.Context, email, otp string) (*models.AuthResult, error)
	ResendOTP(ctx context.Context, email string, purpose models.Purpose) error
	AdminLogin(ctx context.Context, email string, password []byte) (*models.AuthResult, error)
	Departments(ctx context.Context) ([]models.Department, error)
	Me(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, token string, id models.UserID, upd models.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, token string, id models.UserID, current, next []byte) error
}
