package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/client/notify"
	"github.com/dmitrijs2005/lmsclient/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/lmsclient/internal/client/session"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	RequestRegErr   error
	LastRegProfile  models.RegistrationProfile
	VerifyRegRes    *models.AuthResult
	VerifyRegErr    error
	RequestLoginErr error
	LastLoginEmail  string
	VerifyLoginRes  *models.AuthResult
	VerifyLoginErr  error
	LastOTP         string
	ResendErr       error
	LastResend      [2]string
	AdminRes        *models.AuthResult
	AdminErr        error
	DepartmentsRet  []models.Department
	DepartmentsErr  error
	MeRet           *models.User
	MeErr           error
	UpdateRet       *models.User
	UpdateErr       error
	LastUpdate      models.ProfileUpdate
	PasswordErr     error
	LastToken       string

	// block, when set, is waited on inside RequestLoginCode.
	block chan struct{}
	// entered is closed once RequestLoginCode is running.
	entered chan struct{}
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) RequestRegistrationCode(_ context.Context, p models.RegistrationProfile) error {
	f.record("RequestRegistrationCode")
	f.LastRegProfile = p
	return f.RequestRegErr
}

func (f *fakeClient) VerifyRegistration(_ context.Context, p models.RegistrationProfile, otp string) (*models.AuthResult, error) {
	f.record("VerifyRegistration")
	f.LastRegProfile = p
	f.LastOTP = otp
	return f.VerifyRegRes, f.VerifyRegErr
}

func (f *fakeClient) RequestLoginCode(_ context.Context, email string) error {
	f.record("RequestLoginCode")
	f.LastLoginEmail = email
	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	return f.RequestLoginErr
}

func (f *fakeClient) VerifyLogin(_ context.Context, email, otp string) (*models.AuthResult, error) {
	f.record("VerifyLogin")
	f.LastLoginEmail = email
	f.LastOTP = otp
	return f.VerifyLoginRes, f.VerifyLoginErr
}

func (f *fakeClient) ResendOTP(_ context.Context, email string, purpose models.Purpose) error {
	f.record("ResendOTP")
	f.LastResend = [2]string{email, string(purpose)}
	return f.ResendErr
}

func (f *fakeClient) AdminLogin(_ context.Context, email string, _ []byte) (*models.AuthResult, error) {
	f.record("AdminLogin")
	f.LastLoginEmail = email
	return f.AdminRes, f.AdminErr
}

func (f *fakeClient) Departments(context.Context) ([]models.Department, error) {
	f.record("Departments")
	return f.DepartmentsRet, f.DepartmentsErr
}

func (f *fakeClient) Me(_ context.Context, token string) (*models.User, error) {
	f.record("Me")
	f.LastToken = token
	return f.MeRet, f.MeErr
}

func (f *fakeClient) UpdateUser(_ context.Context, token string, _ models.UserID, upd models.ProfileUpdate) (*models.User, error) {
	f.record("UpdateUser")
	f.LastToken = token
	f.LastUpdate = upd
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) ChangePassword(_ context.Context, token string, _ models.UserID, _, _ []byte) error {
	f.record("ChangePassword")
	f.LastToken = token
	return f.PasswordErr
}

type note struct {
	Level   notify.Level
	Message string
}

// recorder collects notifications.
type recorder struct {
	mu    sync.Mutex
	notes []note
}

func (r *recorder) Notify(level notify.Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, note{level, message})
}

func (r *recorder) Last() note {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return note{}
	}
	return r.notes[len(r.notes)-1]
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.New(credentials.NewMemoryRepository())
}

func authResult(id models.UserID, role models.Role, token string) *models.AuthResult {
	return &models.AuthResult{User: &models.User{ID: id, Role: role, Email: "a@b.com"}, Token: token}
}

var engineering = []models.Department{
	{Name: "Eng", Description: "Engineering", Roles: []string{"dev", "lead"}},
	{Name: "Design", Roles: []string{"designer"}},
}
