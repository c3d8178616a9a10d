package service

import (
	"testing"

	"github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	const password = "correct-Horse-battery-staple-42"

	users := newFakeUserRepo()
	tokens := &fakeTokenizer{}
	auth, err := NewAuthService(users, tokens)
	require.NoError(t, err)

	require.NoError(t, auth.Register("maze_runner", password))
	assert.ErrorIs(t, auth.Register("maze_runner", password), i.ErrUsernameConflict)
	assert.ErrorIs(t, auth.Register("x", password), domain.ErrUsernameTooShort)
	assert.ErrorIs(t, auth.Register("weakling", "password"), domain.ErrWeakPassword)

	user, token, err := auth.SignIn("maze_runner", password)
	require.NoError(t, err)
	assert.Equal(t, "token", token)
	assert.Equal(t, "maze_runner", user.Username)
	assert.Equal(t, user.ID, tokens.claims["userID"])
	assert.Equal(t, "maze_runner", tokens.claims["username"])
	assert.Equal(t, tokenLifetime, tokens.exp)

	_, _, err = auth.SignIn("maze_runner", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.SignIn("nobody", password)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService(nil, &fakeTokenizer{})
	assert.ErrorIs(t, err, ErrMissingUserRepo)

	_, err = NewAuthService(newFakeUserRepo(), nil)
	assert.ErrorIs(t, err, ErrMissingTokenizer)
}
