// Package cli implements the interactive gophtalk client: a REPL over the
// transport selected in configuration, with a background watcher that
// announces new unread messages.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtalk/internal/client/client"
	"github.com/dmitrijs2005/gophtalk/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader

	mu       sync.RWMutex
	username string
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.New(c)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}

func (a *App) setUsername(u string) {
	a.mu.Lock()
	a.username = u
	a.mu.Unlock()
}

func (a *App) currentUser() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.username
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != ""
}

// StartUnreadWatcher periodically asks the server for the unread backlog
// of the logged-in account and announces when it grows. Poll failures are
// silent; the next tick retries.
func (a *App) StartUnreadWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := 0
	for {
		select {
		case <-ticker.C:
			user := a.currentUser()
			if user == "" {
				continue
			}

			pollCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			msgs, err := a.client.GetUnread(pollCtx, user)
			cancel()

			if err != nil {
				continue
			}
			if len(msgs) > last {
				printlnFn(fmt.Sprintf("You have %d unread message(s); type 'unread' to read them", len(msgs)))
			}
			last = len(msgs)

		case <-ctx.Done():
			return
		}
	}
}
