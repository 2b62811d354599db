package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/client/services"
	"github.com/dmitrijs2005/lmsclient/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errAlreadySignedIn = errors.New("already signed in")

const codePrompt = "Enter the 6-digit code ('resend' for a new code, 'back' to cancel)"

func (a *App) requireGuest() error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use 'logout' first.")
		return errAlreadySignedIn
	}
	return nil
}

// Login runs the email OTP login.
func (a *App) Login(ctx context.Context) error {
	if err := a.requireGuest(); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	flow := services.NewAuthFlow(models.PurposeLogin, a.api, a.store, a.opts...)
	if err := flow.RequestCode(ctx, services.CodeRequest{Email: email}); err != nil {
		return err
	}
	return a.completeOTP(ctx, flow)
}

// Register collects the profile, shows the departments and their roles,
// and runs the registration OTP sequence.
func (a *App) Register(ctx context.Context) error {
	if err := a.requireGuest(); err != nil {
		return err
	}

	flow := services.NewAuthFlow(models.PurposeRegistration, a.api, a.store, a.opts...)

	deps, err := flow.Departments(ctx)
	if err != nil {
		printlnFn("Failed to load departments. Please try again.")
		return err
	}

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	printlnFn("Departments:")
	for _, d := range deps {
		printlnFn(fmt.Sprintf("  %s: %s", d.Name, strings.Join(d.Roles, ", ")))
	}
	dept, err := getSimpleText(a.reader, "Enter department", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role", a.out)
	if err != nil {
		return err
	}

	req := services.CodeRequest{Profile: models.RegistrationProfile{
		Name:       name,
		Email:      email,
		Department: dept,
		Role:       models.Role(role),
	}}
	if err := flow.RequestCode(ctx, req); err != nil {
		return err
	}
	return a.completeOTP(ctx, flow)
}

// completeOTP prompts for codes until the flow is verified or the user
// goes back. A wrong code keeps the prompt open.
func (a *App) completeOTP(ctx context.Context, flow *services.AuthFlow) error {
	for {
		input, err := getSimpleText(a.reader, codePrompt, a.out)
		if err != nil {
			_ = flow.Abandon()
			return err
		}

		switch strings.ToLower(input) {
		case "resend":
			_ = flow.Resend(ctx)
			continue
		case "back":
			_ = flow.Abandon()
			printlnFn("Cancelled.")
			return nil
		}

		if err := flow.Verify(ctx, input); err != nil {
			continue
		}
		return nil
	}
}

// AdminLogin signs in with email and password.
func (a *App) AdminLogin(ctx context.Context) error {
	if err := a.requireGuest(); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter admin email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.admin.Login(ctx, email, password)
}

// Logout clears the session and the persisted token.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	a.profile.Logout(ctx)
	return nil
}
