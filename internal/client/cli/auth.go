package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/api"
	"github.com/dmitrijs2005/messagely/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for the account fields and creates the account. The new
// user is logged in on success.
func (a *App) Register(ctx context.Context, args []string) error {
	userName, err := a.argOrPrompt(args, "Enter username")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := &api.RegisterRequest{Username: userName, Password: string(password)}
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter first name", &req.FirstName},
		{"Enter last name", &req.LastName},
		{"Enter phone", &req.Phone},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Register(cctx, req); err != nil {
		return err
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", userName)
	return nil
}

// Login prompts for credentials and authenticates. A failed login leaves
// the previous session untouched.
func (a *App) Login(ctx context.Context, args []string) error {
	userName, err := a.argOrPrompt(args, "Enter username")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Login(cctx, userName, password); err != nil {
		return fmt.Errorf("login unsuccessful: %w", err)
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

func (a *App) Logout(context.Context, []string) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
