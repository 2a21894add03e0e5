package cli

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/router"
	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/passwords"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = common.Validation("passwords do not match")

// readNewPassword asks for a password twice and runs the password policy.
// The caller owns the returned slice and must wipe it.
func (a *App) readNewPassword(prompt string) ([]byte, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return nil, err
	}
	if err := passwords.Check(string(pw)); err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}

	confirm, err := getPassword("Repeat password", a.out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	if string(confirm) != string(pw) {
		common.WipeByteArray(pw)
		return nil, errPasswordMismatch
	}
	return pw, nil
}

// Register prompts for the registration form and creates an account, which
// also logs the user in. The new password must satisfy the password policy.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.readNewPassword("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Register(ctx, models.RegisterInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(password),
	}); err != nil {
		return err
	}

	a.println("Welcome, " + a.authService.FullName() + "!")
	return a.open(ctx, router.PathDashboard)
}

// Login prompts for credentials and opens a session. On success it shows
// the screen the user was sent to login from, or the dashboard.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Login(ctx, models.LoginInput{Email: email, Password: string(password)}); err != nil {
		return err
	}

	a.println("Logged in as " + a.authService.FullName())

	next := router.AfterLogin(a.loginPath)
	a.loginPath = ""
	return a.open(ctx, next)
}

// Logout closes the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

// WhoAmI prints the logged-in user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	p, ok := a.authService.CurrentUserFullData()
	if !ok {
		return common.ErrNotAuthenticated
	}
	a.println("Name:   ", p.FirstName, p.LastName)
	a.println("Email:  ", p.Email)
	a.println("Since:  ", p.CreatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// Profile lets the user edit their names and email. Empty answers keep
// the current values.
func (a *App) Profile(ctx context.Context) error {
	p, ok := a.authService.CurrentUserFullData()
	if !ok {
		return common.ErrNotAuthenticated
	}

	firstName, err := GetWithDefault(a.reader, "First name", p.FirstName, a.out)
	if err != nil {
		return err
	}
	lastName, err := GetWithDefault(a.reader, "Last name", p.LastName, a.out)
	if err != nil {
		return err
	}
	email, err := GetWithDefault(a.reader, "Email", p.Email, a.out)
	if err != nil {
		return err
	}

	if _, err := a.authService.UpdateProfile(ctx, models.UpdateProfileInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}); err != nil {
		return err
	}
	a.println("Profile updated")
	return nil
}

// ChangePassword asks for the current password and a new one.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := a.readNewPassword("New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	if err := a.authService.ChangePassword(ctx, models.ChangePasswordInput{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	}); err != nil {
		return err
	}
	a.println("Password changed")
	return nil
}

// Users lists every registered account.
func (a *App) Users(ctx context.Context) error {
	users := a.authService.Users()
	if len(users) == 0 {
		a.println("No users")
		return nil
	}
	for _, u := range users {
		a.println(u.FullName(), "<"+u.Email+">")
	}
	return nil
}
