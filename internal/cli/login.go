package cli

import (
	"context"
	"os"

	"github.com/avoronin/authkeep/internal/forms"
)

// Login prompts for credentials and submits the login form. Field-level
// validation messages are shown next to the prompt; authentication
// failures surface through the session manager's visible error.
func (a *App) Login(ctx context.Context) error {
	form := forms.NewLoginForm(a.manager)

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

	printlnFn("Login successful")
	return nil
}

func printFieldErrors(errs map[string]string) {
	for _, field := range []string{forms.FieldName, forms.FieldEmail, forms.FieldPassword, forms.FieldConfirmPassword} {
		if msg, ok := errs[field]; ok {
			printlnFn(msg)
		}
	}
}
