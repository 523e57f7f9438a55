package cli

import (
	"context"
	"os"
)

// Logout removes the persisted session. Running it while signed out is a
// harmless no-op.
func (a *App) Logout(ctx context.Context) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.manager.Logout(opCtx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.manager.State()
	if !s.IsAuthenticated {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn(s.User.Name, "<"+s.User.Email+">")
	return nil
}

// ClearError resets the visible auth error.
func (a *App) ClearError(ctx context.Context) error {
	a.manager.ClearError()
	printlnFn("Error cleared")
	return nil
}

// Reset wipes the local database: the registry and any session record.
// There is no way back, so it asks first.
func (a *App) Reset(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Delete all local accounts? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.store.Clear(opCtx); err != nil {
		printlnFn("Reset failed:", err.Error())
		return err
	}
	if err := a.manager.Logout(opCtx); err != nil {
		return err
	}
	printlnFn("Local data removed")
	return nil
}
