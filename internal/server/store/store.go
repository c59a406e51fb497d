// Package store implements the in-memory account directory shared by every
// connection: accounts, their read/unread message queues, and the snapshot
// persistence that follows each mutation.
//
// All operations run under one process-wide exclusive lock scoped to the
// whole directory. Granularity is deliberately coarse: correctness matters
// more than parallelism for this workload, and the snapshot write happens
// inside the same critical section as the mutation that triggered it.
package store

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophtalk/internal/common"
	"github.com/dmitrijs2005/gophtalk/internal/logging"
	"github.com/dmitrijs2005/gophtalk/internal/server/snapshot"
)

// Store owns the account directory. No other component reads or writes
// accounts directly; transports call the exported operations and hold no
// state of their own beyond the peer's authenticated username.
type Store struct {
	mu       sync.Mutex
	accounts map[string]*Account
	order    []string // usernames in directory (insertion) order
	snap     snapshot.Snapshot
	logger   logging.Logger
}

// New creates an empty store persisting through snap.
func New(snap snapshot.Snapshot, logger logging.Logger) *Store {
	return &Store{
		accounts: make(map[string]*Account),
		snap:     snap,
		logger:   logger.With("module", "store"),
	}
}

// Load replaces the directory with the persisted snapshot. A missing
// snapshot leaves the directory empty and is not an error.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.snap.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "no snapshot found, starting with empty directory")
			return nil
		}
		return fmt.Errorf("loading snapshot: %w", err)
	}

	accounts, order, err := unmarshalDirectory(data)
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = accounts
	s.order = order

	s.logger.Info(ctx, "snapshot loaded", "accounts", len(order))
	return nil
}

// persist serializes the whole directory and writes it through the
// snapshot backend. Callers must hold s.mu. The in-memory mutation has
// already happened when persist fails; the caller surfaces the error and
// the crash window between mutation and write stays the accepted one.
func (s *Store) persist(ctx context.Context) error {
	data, err := marshalDirectory(s.order, s.accounts)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.snap.Save(ctx, data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Login authenticates username against credential, creating the account if
// it does not exist yet (sign-up and login are one operation). It returns
// created=true when a new account was made, and ErrIncorrectCredential
// when the account exists but the credential does not match.
func (s *Store) Login(ctx context.Context, username, credential string) (created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc, ok := s.accounts[username]; ok {
		if subtle.ConstantTimeCompare([]byte(acc.Credential), []byte(credential)) != 1 {
			return false, common.ErrIncorrectCredential
		}
		return false, nil
	}

	s.accounts[username] = &Account{
		Credential: credential,
		Read:       []Message{},
		Unread:     []Message{},
	}
	s.order = append(s.order, username)

	return true, s.persist(ctx)
}

// SendMessage appends {sender, body} to recipient's unread sequence. The
// sender is not required to exist as an account.
func (s *Store) SendMessage(ctx context.Context, sender, recipient, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[recipient]
	if !ok {
		return common.ErrInvalidRecipient
	}
	acc.Unread = append(acc.Unread, Message{Sender: sender, Body: body})

	return s.persist(ctx)
}

// ReadUnread pops up to count messages off username's unread sequence in
// arrival order, appends them to the read sequence in the same order, and
// returns them. count is clamped to [0, available]; zero pops nothing and
// has no side effects.
func (s *Store) ReadUnread(ctx context.Context, username string, count int) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return nil, common.ErrUnknownAccount
	}

	if count < 0 {
		count = 0
	}
	if count > len(acc.Unread) {
		count = len(acc.Unread)
	}
	if count == 0 {
		return []Message{}, nil
	}

	moved := make([]Message, count)
	copy(moved, acc.Unread[:count])

	acc.Read = append(acc.Read, moved...)
	acc.Unread = append([]Message{}, acc.Unread[count:]...)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return moved, nil
}

// ReadAll returns username's full read sequence, oldest delivered-and-read
// first, without modifying anything.
func (s *Store) ReadAll(ctx context.Context, username string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return nil, common.ErrUnknownAccount
	}
	out := make([]Message, len(acc.Read))
	copy(out, acc.Read)
	return out, nil
}

// CountUnread returns username's full unread sequence without moving
// anything. A peek, not a drain; used for polling.
func (s *Store) CountUnread(ctx context.Context, username string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return nil, common.ErrUnknownAccount
	}
	out := make([]Message, len(acc.Unread))
	copy(out, acc.Unread)
	return out, nil
}

// ListAccounts returns every username whose lowercase form contains the
// lowercase query as a substring, in directory order. An empty query
// matches all accounts.
func (s *Store) ListAccounts(ctx context.Context, query string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	matched := make([]string, 0, len(s.order))
	for _, name := range s.order {
		if strings.Contains(strings.ToLower(name), q) {
			matched = append(matched, name)
		}
	}
	return matched
}

// DeleteMessage removes the message at index (0-based, by current position)
// from username's read sequence.
func (s *Store) DeleteMessage(ctx context.Context, username string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return common.ErrUnknownAccount
	}
	if index < 0 || index >= len(acc.Read) {
		return fmt.Errorf("%w: index %d, %d messages", common.ErrIndexOutOfRange, index, len(acc.Read))
	}

	acc.Read = append(acc.Read[:index], acc.Read[index+1:]...)

	return s.persist(ctx)
}

// DeleteAccount removes username from the directory and cascades: every
// message authored by username disappears from every other account's read
// and unread sequences.
func (s *Store) DeleteAccount(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; !ok {
		return common.ErrUnknownAccount
	}

	delete(s.accounts, username)
	for i, name := range s.order {
		if name == username {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	for _, acc := range s.accounts {
		acc.Read = dropSender(acc.Read, username)
		acc.Unread = dropSender(acc.Unread, username)
	}

	return s.persist(ctx)
}

// dropSender returns msgs without any message authored by sender,
// preserving order. A single compacting pass; indices are never mutated
// while iterating.
func dropSender(msgs []Message, sender string) []Message {
	kept := msgs[:0]
	for _, m := range msgs {
		if m.Sender != sender {
			kept = append(kept, m)
		}
	}
	return kept
}
