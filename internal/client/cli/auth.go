package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, name, email, password); err != nil {
		// Classified message; the user re-enters and retries.
		fmt.Fprintln(a.out, a.session.Err())
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", name)
	a.startFeed(ctx)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, a.session.Err())
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	a.startFeed(ctx)
	return nil
}

// Logout always succeeds locally, whatever the server said.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
