package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/noclaf/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for e-mail and password and authenticates through the
// AuthService.
//
// A rejected login is not an error: the server's message is printed and nil
// returned. Transport and decode failures are reported to the user and
// returned. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Authenticate(ctx, email, string(password))
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		if errors.Is(err, common.ErrServerRejected) {
			printlnFn(common.MsgInvalidLogin)
		} else {
			printlnFn(common.UserMessage(err))
		}
		return err
	}

	printlnFn(res.Message)
	if res.Succeeded {
		a.log.Info(ctx, "logged in", "email", a.authService.CurrentSession().DisplayName)
	}
	return nil
}

// Logout drops the stored session. Logging out twice is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.report(ctx, "logout", err)
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Status prints who is logged in, if anyone.
func (a *App) Status(ctx context.Context) error {
	s := a.authService.CurrentSession()
	if !s.IsAuthenticated {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("Logged in as %s", s.DisplayName))
	return nil
}
