package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophtalk/internal/client/client"
	"github.com/dmitrijs2005/gophtalk/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records calls and returns canned answers.
type fakeClient struct {
	loginUser       string
	loginCredential string
	loginMsg        string
	loginErr        error

	sent [][3]string

	unread  []client.Message
	all     []client.Message
	names   []string
	callErr error

	deletedIdx  []int
	deletedUser string
}

func (f *fakeClient) Close() error { return nil }
func (f *fakeClient) Login(ctx context.Context, username, credential string) (string, error) {
	f.loginUser, f.loginCredential = username, credential
	return f.loginMsg, f.loginErr
}
func (f *fakeClient) SendMessage(ctx context.Context, sender, recipient, body string) error {
	f.sent = append(f.sent, [3]string{sender, recipient, body})
	return f.callErr
}
func (f *fakeClient) ReadUnread(ctx context.Context, username string, count int) ([]client.Message, error) {
	return f.unread, f.callErr
}
func (f *fakeClient) ReadAll(ctx context.Context, username string) ([]client.Message, error) {
	return f.all, f.callErr
}
func (f *fakeClient) GetUnread(ctx context.Context, username string) ([]client.Message, error) {
	return f.unread, f.callErr
}
func (f *fakeClient) ListAccounts(ctx context.Context, username, query string) ([]string, error) {
	return f.names, f.callErr
}
func (f *fakeClient) DeleteMessage(ctx context.Context, username string, index int) error {
	f.deletedIdx = append(f.deletedIdx, index)
	return f.callErr
}
func (f *fakeClient) DeleteAccount(ctx context.Context, username string) error {
	f.deletedUser = username
	return f.callErr
}

func newTestApp(f *fakeClient) *App {
	return &App{
		config: &config.Config{},
		client: f,
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

// stubInput replaces the interactive input seams and output for one test.
func stubInput(t *testing.T, texts []string, password string) {
	t.Helper()

	origText, origPass, origPrint := getSimpleText, getPassword, printlnFn
	t.Cleanup(func() { getSimpleText, getPassword, printlnFn = origText, origPass, origPrint })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		text := texts[i]
		i++
		return text, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	printlnFn = func(...any) (int, error) { return 0, nil }
}

func TestApp_Login_DerivesCredential(t *testing.T) {
	stubInput(t, []string{"alice"}, "secret")

	f := &fakeClient{loginMsg: "Login successful."}
	a := newTestApp(f)

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "alice", f.loginUser)
	assert.NotEmpty(t, f.loginCredential)
	assert.NotContains(t, f.loginCredential, "secret")
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "alice", a.currentUser())
}

func TestApp_Login_FailureLeavesLoggedOut(t *testing.T) {
	stubInput(t, []string{"alice"}, "secret")

	f := &fakeClient{loginErr: errors.New("incorrect credential")}
	a := newTestApp(f)

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestApp_Send(t *testing.T) {
	stubInput(t, []string{"bob"}, "")

	f := &fakeClient{}
	a := newTestApp(f)
	a.setUsername("alice")
	a.reader = bufio.NewReader(strings.NewReader("hello there\n\n"))

	require.NoError(t, a.Send(context.Background()))

	require.Len(t, f.sent, 1)
	assert.Equal(t, [3]string{"alice", "bob", "hello there"}, f.sent[0])
}

func TestApp_Send_RequiresLogin(t *testing.T) {
	stubInput(t, nil, "")

	f := &fakeClient{}
	a := newTestApp(f)

	require.NoError(t, a.Send(context.Background()))
	assert.Empty(t, f.sent)
}

func TestApp_Unread_RejectsNonNumericCount(t *testing.T) {
	stubInput(t, []string{"many"}, "")

	f := &fakeClient{unread: []client.Message{{Sender: "bob", Body: "hi"}}}
	a := newTestApp(f)
	a.setUsername("alice")

	assert.NoError(t, a.Unread(context.Background()))
}

func TestApp_DeleteMessage(t *testing.T) {
	stubInput(t, []string{"2"}, "")

	f := &fakeClient{}
	a := newTestApp(f)
	a.setUsername("alice")

	require.NoError(t, a.DeleteMessage(context.Background()))
	assert.Equal(t, []int{2}, f.deletedIdx)
}

func TestApp_DeleteAccount_ConfirmMismatchAborts(t *testing.T) {
	stubInput(t, []string{"not-alice"}, "")

	f := &fakeClient{}
	a := newTestApp(f)
	a.setUsername("alice")

	require.NoError(t, a.DeleteAccount(context.Background()))
	assert.Empty(t, f.deletedUser)
	assert.True(t, a.isLoggedIn())
}

func TestApp_DeleteAccount_Confirmed(t *testing.T) {
	stubInput(t, []string{"alice"}, "")

	f := &fakeClient{}
	a := newTestApp(f)
	a.setUsername("alice")

	require.NoError(t, a.DeleteAccount(context.Background()))
	assert.Equal(t, "alice", f.deletedUser)
	assert.False(t, a.isLoggedIn())
}

func TestApp_Accounts(t *testing.T) {
	stubInput(t, []string{"user"}, "")

	f := &fakeClient{names: []string{"user1", "user2"}}
	a := newTestApp(f)

	assert.NoError(t, a.Accounts(context.Background()))
}
