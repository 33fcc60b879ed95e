package cli

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/tasktracker/internal/client/client"
	"github.com/dmitrijs2005/tasktracker/internal/client/session"
	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SavesSession(t *testing.T) {
	h := newHarness(t, "")
	stubPasswords(t, "password1")

	require.Equal(t, 0, h.run("login", "-u", "alice"))

	assert.Equal(t, "alice", h.fake.loginUser)
	assert.Equal(t, "password1", h.fake.loginPass)
	assert.True(t, h.fake.closed)
	assert.Equal(t, "127.0.0.1:50051", h.fake.addr)
	assert.Contains(t, h.out.String(), "Logged in as alice")
	assert.Equal(t, &session.Session{Username: "alice", AccessToken: "A", RefreshToken: "R"}, h.saved())
}

func TestLogin_PromptsForUsername(t *testing.T) {
	h := newHarness(t, "bob\n")
	stubPasswords(t, "password1")

	require.Equal(t, 0, h.run("login", "--server", "example:1"))

	assert.Equal(t, "bob", h.fake.loginUser)
	assert.Equal(t, "example:1", h.fake.addr)
	assert.Contains(t, h.out.String(), "Enter username")
}

func TestLogin_Failure(t *testing.T) {
	h := newHarness(t, "")
	stubPasswords(t, "wrong")
	h.fake.err = errors.New("unauthorized: invalid credentials")

	require.Equal(t, 1, h.run("login", "-u", "alice"))
	assert.Contains(t, h.errOut.String(), "invalid credentials")
	assert.False(t, h.saved().LoggedIn())
}

func TestRegister(t *testing.T) {
	h := newHarness(t, "")
	prompts := stubPasswords(t, "password1", "password2")

	require.Equal(t, 0, h.run("register", "-u", "alice", "--email", "a@example.com", "--first-name", "Alice"))

	req := h.fake.registerReq
	require.NotNil(t, req)
	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "a@example.com", req.Email)
	assert.Equal(t, "Alice", req.FirstName)
	assert.Equal(t, "password1", req.Password)
	assert.Equal(t, "password2", req.PasswordConfirm)
	assert.Equal(t, []string{"Enter password", "Repeat password"}, *prompts)
	assert.Equal(t, "alice", h.saved().Username)
}

func TestRegister_ValidationOutput(t *testing.T) {
	h := newHarness(t, "")
	stubPasswords(t, "a", "b")
	v := &common.ValidationError{}
	v.Add("password", "This password is too short.")
	v.Add("non_field_errors", "Password fields didn't match.")
	h.fake.err = v

	require.Equal(t, 1, h.run("register", "-u", "alice"))
	assert.Equal(t, "Error: invalid input\n  password: This password is too short.\n  non_field_errors: Password fields didn't match.\n", h.errOut.String())
}

func TestCommands_RequireLogin(t *testing.T) {
	for _, args := range [][]string{
		{"profile"}, {"logout"}, {"tasks", "list"}, {"tasks", "stats"}, {"categories", "list"},
	} {
		h := newHarness(t, "")
		require.Equal(t, 1, h.run(args...), args)
		assert.Contains(t, h.errOut.String(), "not logged in", args)
	}
}

func TestLogout(t *testing.T) {
	h := newHarness(t, "").loggedIn()

	require.Equal(t, 0, h.run("logout"))
	assert.Contains(t, h.out.String(), "Logged out")
	assert.False(t, h.saved().LoggedIn())
}

func TestLogout_ForgetsRejectedSession(t *testing.T) {
	h := newHarness(t, "").loggedIn()
	h.fake.err = client.ErrUnauthorized

	require.Equal(t, 0, h.run("logout"))
	assert.False(t, h.saved().LoggedIn())
}

func TestLogout_KeepsSessionWhenServerDown(t *testing.T) {
	h := newHarness(t, "").loggedIn()
	h.fake.err = client.ErrUnavailable

	require.Equal(t, 1, h.run("logout"))
	assert.Contains(t, h.errOut.String(), "server 127.0.0.1:50051 is unavailable")
	assert.True(t, h.saved().LoggedIn())
}

func TestProfile(t *testing.T) {
	h := newHarness(t, "").loggedIn()

	require.Equal(t, 0, h.run("whoami"))
	out := h.out.String()
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "2026-01-02 03:04")
}

func TestRotatedTokensArePersisted(t *testing.T) {
	h := newHarness(t, "").loggedIn()
	h.fake.rotate = &[2]string{"A2", "R2"}

	require.Equal(t, 0, h.run("profile"))
	assert.Equal(t, &session.Session{Username: "alice", AccessToken: "A2", RefreshToken: "R2"}, h.saved())
}

func TestExpiredSessionHint(t *testing.T) {
	h := newHarness(t, "").loggedIn()
	h.fake.err = client.ErrUnauthorized

	require.Equal(t, 1, h.run("profile"))
	assert.Contains(t, h.errOut.String(), "run \"tasktracker login\" again")
}

func TestDeleteAccount(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		h := newHarness(t, "no\n").loggedIn()
		require.Equal(t, 0, h.run("delete-account"))
		assert.False(t, h.fake.accountDeleted)
		assert.Contains(t, h.out.String(), "Delete account alice")
		assert.Contains(t, h.out.String(), "Aborted")
		assert.True(t, h.saved().LoggedIn())
	})

	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t, "yes\n").loggedIn()
		require.Equal(t, 0, h.run("delete-account"))
		assert.True(t, h.fake.accountDeleted)
		assert.False(t, h.saved().LoggedIn())
	})

	t.Run("flag", func(t *testing.T) {
		h := newHarness(t, "").loggedIn()
		require.Equal(t, 0, h.run("delete-account", "--yes"))
		assert.True(t, h.fake.accountDeleted)
	})
}

func TestPing(t *testing.T) {
	h := newHarness(t, "")
	require.Equal(t, 0, h.run("ping"))
	assert.Contains(t, h.out.String(), "127.0.0.1:50051 is up")

	h = newHarness(t, "")
	h.fake.pingErrs = []error{client.ErrUnavailable, client.ErrUnavailable}
	require.Equal(t, 0, h.run("ping", "--wait", "3"))
	assert.Equal(t, 3, h.fake.pings)

	h = newHarness(t, "")
	h.fake.err = client.ErrUnavailable
	require.Equal(t, 1, h.run("ping"))
	assert.Contains(t, h.errOut.String(), "unavailable")
}
