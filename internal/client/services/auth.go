package services

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/lmsclient/internal/client/client"
	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/client/session"
)

const (
	msgCodeSent    = "OTP sent to your email. Please check your inbox."
	msgCodeResent  = "New OTP sent to your email."
	msgLoginOK     = "Login successful! Welcome back!"
	msgRegisterOK  = "Registration successful! Welcome to BRAINX!"
	msgVerifyFail  = "OTP verification failed"
	msgResendFail  = "Failed to resend OTP"
	msgLoginFail   = "Login failed"
	msgRegFail     = "Registration failed"
	msgDepsFail    = "Failed to load departments"
	msgNoChallenge = "Please request a verification code first"
	msgBadCode     = "Please enter the 6-digit code"
	msgBusy        = "A request is already in progress"
)

// CodeRequest carries the input of the first OTP step. Login uses Email;
// registration uses Profile, with Email filling in a blank Profile.Email.
type CodeRequest struct {
	Email   string
	Profile models.RegistrationProfile
}

// AuthFlow is one login or registration attempt. It allows at most one
// network step at a time; a concurrent call fails with ErrRequestInFlight.
type AuthFlow struct {
	base
	purpose models.Purpose

	mu          sync.Mutex
	state       State
	busy        bool
	departments []models.Department
}

func NewAuthFlow(purpose models.Purpose, api client.Client, store *session.Store, opts ...Option) *AuthFlow {
	return &AuthFlow{
		base:    newBase(api, store, opts),
		purpose: purpose,
		state:   Idle{},
	}
}

func (f *AuthFlow) Purpose() models.Purpose { return f.purpose }

func (f *AuthFlow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether a network step is outstanding.
func (f *AuthFlow) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// acquire marks the flow busy and returns the state at that moment.
func (f *AuthFlow) acquire() (State, *FlowError) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return nil, validationError(ErrRequestInFlight, msgBusy)
	}
	f.busy = true
	return f.state, nil
}

func (f *AuthFlow) release() {
	f.mu.Lock()
	f.busy = false
	f.mu.Unlock()
}

func (f *AuthFlow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

func (f *AuthFlow) requestFallback() string {
	if f.purpose == models.PurposeRegistration {
		return msgRegFail
	}
	return msgLoginFail
}

// RequestCode validates the input and asks the server to email a code.
// It is allowed from Idle and Failed.
func (f *AuthFlow) RequestCode(ctx context.Context, req CodeRequest) error {
	cur, fe := f.acquire()
	if fe != nil {
		return fe
	}
	defer f.release()

	switch cur.(type) {
	case Idle, Failed:
	default:
		return f.report(ctx, "request code", validationError(ErrInvalidState, "A code has already been requested"))
	}

	challenge, fe := f.prepare(ctx, req)
	if fe != nil {
		f.setState(Failed{Err: fe})
		return f.report(ctx, "request code", fe)
	}

	var err error
	if f.purpose == models.PurposeRegistration {
		err = f.api.RequestRegistrationCode(ctx, *challenge.Profile)
	} else {
		err = f.api.RequestLoginCode(ctx, challenge.Email)
	}
	if err != nil {
		fe := toFlowError(err, f.requestFallback())
		f.setState(Failed{Err: fe})
		return f.report(ctx, "request code", fe)
	}

	f.setState(CodeRequested{Challenge: challenge})
	f.log.Info(ctx, "code requested", "purpose", f.purpose, "email", challenge.Email)
	f.succeed(msgCodeSent)
	return nil
}

func (f *AuthFlow) prepare(ctx context.Context, req CodeRequest) (models.Challenge, *FlowError) {
	ch := models.Challenge{Purpose: f.purpose, RequestedAt: f.now()}

	if f.purpose != models.PurposeRegistration {
		ch.Email = strings.TrimSpace(req.Email)
		if fe := validateEmail(ch.Email); fe != nil {
			return ch, fe
		}
		return ch, nil
	}

	p := req.Profile
	if p.Email == "" {
		p.Email = req.Email
	}
	p = p.Normalize()

	deps, err := f.loadDepartments(ctx)
	if err != nil {
		return ch, toFlowError(err, msgDepsFail)
	}
	if fe := validateProfile(p, deps); fe != nil {
		return ch, fe
	}
	ch.Email = p.Email
	ch.Profile = &p
	return ch, nil
}

// loadDepartments fetches the department list once per flow.
func (f *AuthFlow) loadDepartments(ctx context.Context) ([]models.Department, error) {
	f.mu.Lock()
	cached := f.departments
	f.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	deps, err := f.api.Departments(ctx)
	if err != nil {
		return nil, err
	}
	if deps == nil {
		deps = []models.Department{}
	}
	f.mu.Lock()
	f.departments = deps
	f.mu.Unlock()
	return deps, nil
}

// Departments returns the department list used for registration, fetching
// it on first use.
func (f *AuthFlow) Departments(ctx context.Context) ([]models.Department, error) {
	return f.loadDepartments(ctx)
}

// Verify submits code for the pending challenge. On success the session is
// committed to the store and the flow becomes Verified. On failure the flow
// stays in CodeRequested so the user may retry or resend.
func (f *AuthFlow) Verify(ctx context.Context, code string) error {
	cur, fe := f.acquire()
	if fe != nil {
		return fe
	}
	defer f.release()

	pending, ok := cur.(CodeRequested)
	if !ok {
		return f.report(ctx, "verify", validationError(ErrNoPendingChallenge, msgNoChallenge))
	}
	if !validCode(code) {
		return f.report(ctx, "verify", validationError(ErrInvalidCode, msgBadCode))
	}

	ch := pending.Challenge
	var (
		res *models.AuthResult
		err error
	)
	if f.purpose == models.PurposeRegistration {
		res, err = f.api.VerifyRegistration(ctx, *ch.Profile, code)
	} else {
		res, err = f.api.VerifyLogin(ctx, ch.Email, code)
	}
	if err != nil {
		return f.report(ctx, "verify", toFlowError(err, msgVerifyFail))
	}

	sess, ok := res.Session()
	if !ok {
		return f.report(ctx, "verify", toFlowError(client.ErrBadResponse, msgVerifyFail))
	}
	if err := f.store.Set(ctx, sess); err != nil {
		return f.report(ctx, "verify", toFlowError(err, msgVerifyFail))
	}

	f.setState(Verified{Session: sess})
	f.log.Info(ctx, "verified", "purpose", f.purpose, "user_id", sess.User.ID)
	if f.purpose == models.PurposeRegistration {
		f.succeed(msgRegisterOK)
	} else {
		f.succeed(msgLoginOK)
	}
	return nil
}

// Resend asks for a fresh code for the pending challenge. The state does
// not change either way.
func (f *AuthFlow) Resend(ctx context.Context) error {
	cur, fe := f.acquire()
	if fe != nil {
		return fe
	}
	defer f.release()

	pending, ok := cur.(CodeRequested)
	if !ok {
		return f.report(ctx, "resend", validationError(ErrNoPendingChallenge, msgNoChallenge))
	}

	if err := f.api.ResendOTP(ctx, pending.Challenge.Email, f.purpose); err != nil {
		return f.report(ctx, "resend", toFlowError(err, msgResendFail))
	}

	f.log.Info(ctx, "code resent", "purpose", f.purpose, "email", pending.Challenge.Email)
	f.succeed(msgCodeResent)
	return nil
}

// Abandon drops the pending challenge and returns to Idle without
// contacting the server.
func (f *AuthFlow) Abandon() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return ErrRequestInFlight
	}
	if _, ok := f.state.(CodeRequested); !ok {
		return ErrNoPendingChallenge
	}
	f.state = Idle{}
	return nil
}

// Reset returns the flow to Idle from any state.
func (f *AuthFlow) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return ErrRequestInFlight
	}
	f.state = Idle{}
	return nil
}
