package session

import (
	"testing"

	"budgeteer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLogout(t *testing.T) {
	s := New()
	assert.False(t, s.IsLoggedIn())

	user := &model.User{ID: 1, Username: "alice"}
	s.Login(user)

	assert.True(t, s.IsLoggedIn())
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, user, current)

	s.Logout()
	assert.False(t, s.IsLoggedIn())
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestObservers(t *testing.T) {
	s := New()

	var loggedIn *model.User
	logouts := 0
	s.OnLogin(func(u *model.User) { loggedIn = u })
	s.OnLogout(func() { logouts++ })

	user := &model.User{ID: 7, Username: "bob"}
	s.Login(user)
	assert.Equal(t, user, loggedIn)
	assert.Zero(t, logouts)

	s.Logout()
	assert.Equal(t, 1, logouts)

	// Logging out again without a login must not re-notify.
	s.Logout()
	assert.Equal(t, 1, logouts)
}

func TestDefaultIsSingleInstance(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := Default()
	second := Default()
	assert.Same(t, first, second)

	first.Login(&model.User{ID: 1, Username: "alice"})
	assert.True(t, second.IsLoggedIn())

	Reset()
	assert.False(t, Default().IsLoggedIn())
}
