package cli

import (
	"context"
	"os"

	"github.com/avoronin/authkeep/internal/forms"
)

// Signup prompts for the signup fields and submits the signup form. On
// success the new user is signed in immediately.
func (a *App) Signup(ctx context.Context) error {
	form := forms.NewSignupForm(a.manager)

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}
	form.SetField(forms.FieldName, name)

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}
	form.SetField(forms.FieldEmail, email)

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}
	form.SetField(forms.FieldPassword, password)

	confirm, err := GetPassword("Confirm password", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}
	form.SetField(forms.FieldConfirmPassword, confirm)

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	submitErr := form.Submit(opCtx)

	if errs := form.Errors(); len(errs) > 0 {
		printFieldErrors(errs)
		return nil
	}
	if submitErr != nil {
		printlnFn(a.manager.State().Error)
		return submitErr
	}

	printlnFn("Welcome,", a.manager.State().User.Name)
	return nil
}
