package cli

import (
	"bufio"
	"context"
	"os"
)

// Root wires the REPL to stdin and starts the unread watcher alongside it.
func (a *App) Root(ctx context.Context) {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartUnreadWatcher(ctx, a.config.UnreadCheckInterval)

	statusFn := func() string {
		if u := a.currentUser(); u != "" {
			return u
		}
		return "not logged in"
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, statusFn, scanner)
}
