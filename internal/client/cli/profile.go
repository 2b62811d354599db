package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/common"
)

// Whoami refreshes and prints the signed-in user.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	u, err := a.profile.Refresh(ctx)
	if err != nil {
		return err
	}
	printUser(u)
	return nil
}

func printUser(u models.User) {
	printlnFn(fmt.Sprintf("ID:         %s", u.ID))
	printlnFn(fmt.Sprintf("Name:       %s", u.Name))
	printlnFn(fmt.Sprintf("Email:      %s", u.Email))
	printlnFn(fmt.Sprintf("Role:       %s", u.Role))
	if u.Department != "" {
		printlnFn(fmt.Sprintf("Department: %s", u.Department))
	}
	if u.Status != "" {
		printlnFn(fmt.Sprintf("Status:     %s", u.Status))
	}
	if u.Bio != "" {
		printlnFn(fmt.Sprintf("Bio:        %s", u.Bio))
	}
	if u.AvatarURL != "" {
		printlnFn(fmt.Sprintf("Avatar:     %s", u.AvatarURL))
	}
}

// Profile edits name, bio and avatar URL. An empty answer keeps the field.
func (a *App) Profile(ctx context.Context) error {
	sess, ok := a.store.Get()
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}

	var upd models.ProfileUpdate
	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"Name", sess.User.Name, &upd.Name},
		{"Bio", sess.User.Bio, &upd.Bio},
		{"Avatar URL", sess.User.AvatarURL, &upd.AvatarURL},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (Enter to keep)", f.prompt, f.current), a.out)
		if err != nil {
			return err
		}
		if v != "" && v != f.current {
			*f.dst = &v
		}
	}

	if upd.Empty() {
		printlnFn("Nothing changed.")
		return nil
	}
	_, err := a.profile.Update(ctx, upd)
	return err
}

// Passwd changes the password of the signed-in user.
func (a *App) Passwd(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword(a.out, "Confirm new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	return a.profile.ChangePassword(ctx, current, next, confirm)
}
