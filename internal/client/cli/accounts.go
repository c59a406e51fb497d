package cli

import (
	"context"
	"log"
	"os"
)

// Accounts searches the directory for usernames containing the entered
// text. An empty query lists every account. Login is not required.
func (a *App) Accounts(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Enter search text (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	names, err := a.client.ListAccounts(ctx, a.currentUser(), query)
	if err != nil {
		log.Printf("Search unsuccessful: %s", err.Error())
		return err
	}

	if len(names) == 0 {
		printlnFn("No accounts found.")
		return nil
	}
	for _, name := range names {
		printlnFn(name)
	}
	return nil
}
