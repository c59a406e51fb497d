package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/gophtalk/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and authenticates against the
// server. An unknown username creates the account; a known one must match
// its stored credential. The password never leaves the machine: only the
// derived credential is sent, and the password bytes are wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	credential := cryptox.DeriveCredential(password, userName)
	cryptox.WipeByteArray(password)

	msg, err := a.client.Login(ctx, userName, credential)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.setUsername(userName)
	printlnFn(msg)
	return nil
}

// DeleteAccount removes the logged-in account and everything it holds,
// including messages it sent to other accounts. The username must be
// retyped to confirm.
func (a *App) DeleteAccount(ctx context.Context) error {
	user := a.currentUser()
	if user == "" {
		printlnFn("Log in first.")
		return nil
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Type %q to confirm account deletion", user), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != user {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.client.DeleteAccount(ctx, user); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return err
	}

	a.setUsername("")
	printlnFn("Account deleted.")
	return nil
}
