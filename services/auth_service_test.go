package services

import (
	"testing"

	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	u, err := f.auth.Register(&RegisterIn{Username: "alice", Email: "Alice@Example.com", Password: "lemonade"})
	require.NoError(t, err)
	assert.False(t, u.IsAdmin)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "lemonade", u.Password)

	_, err = f.auth.Register(&RegisterIn{Username: "alice", Password: "another1"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	tok, got, err := f.auth.Login(&LoginIn{Username: "alice", Password: "lemonade"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	claims, err := utils.ParseToken(tok, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	_, _, err = f.auth.Login(&LoginIn{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.auth.Login(&LoginIn{Username: "nobody", Password: "lemonade"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfileListsGroups(t *testing.T) {
	f := newFixture(t)
	u, err := f.auth.CreateUser(&RegisterIn{Username: "boss", Password: "secret1"}, true)
	require.NoError(t, err)
	require.NoError(t, f.groups.Add(entity.GroupManager, "boss"))

	p, err := f.auth.Profile(u.ID)
	require.NoError(t, err)
	assert.True(t, p.IsAdmin)
	assert.Equal(t, []string{entity.GroupManager}, p.Groups)
}
