package session

import (
	"testing"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/dmitrijs2005/busdepot/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *store.Store {
	return store.New(nil, []models.UserAccount{
		{Username: "admin", Password: "admin123", IsAdmin: true},
		{Username: "user", Password: "user123", IsAdmin: false},
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
		admin    bool
	}{
		{name: "admin", username: "admin", password: "admin123", admin: true},
		{name: "user", username: "user", password: "user123"},
		{name: "wrong password", username: "admin", password: "admin", wantErr: true},
		{name: "unknown user", username: "ghost", password: "x", wantErr: true},
		{name: "case matters", username: "Admin", password: "admin123", wantErr: true},
		{name: "empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(newStore())
			v, err := s.Login(tt.username, tt.password)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrorUnauthorized)
				_, ok := s.Current()
				assert.False(t, ok)
				assert.Equal(t, uuid.Nil, s.ID())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, v.Username)
			assert.Equal(t, tt.admin, v.IsAdmin)
			assert.NotEqual(t, uuid.Nil, s.ID())
		})
	}
}

func TestFailedLoginKeepsCurrentIdentity(t *testing.T) {
	s := New(newStore())
	_, err := s.Login("user", "user123")
	require.NoError(t, err)
	id := s.ID()

	_, err = s.Login("admin", "nope")
	require.Error(t, err)

	v, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "user", v.Username)
	assert.Equal(t, id, s.ID())
}

func TestLogout(t *testing.T) {
	s := New(newStore())
	_, err := s.Login("admin", "admin123")
	require.NoError(t, err)

	s.Logout()

	_, ok := s.Current()
	assert.False(t, ok)
	_, err = s.RequireUser()
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestEachLoginGetsNewID(t *testing.T) {
	s := New(newStore())
	_, _ = s.Login("user", "user123")
	first := s.ID()
	s.Logout()
	_, _ = s.Login("user", "user123")
	assert.NotEqual(t, first, s.ID())
}

func TestGates(t *testing.T) {
	s := New(newStore())

	_, err := s.RequireUser()
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = s.RequireAdmin()
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _ = s.Login("user", "user123")
	name, err := s.RequireUser()
	require.NoError(t, err)
	assert.Equal(t, "user", name)
	_, err = s.RequireAdmin()
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, _ = s.Login("admin", "admin123")
	name, err = s.RequireAdmin()
	require.NoError(t, err)
	assert.Equal(t, "admin", name)
}

func TestRoleIsReadFromStore(t *testing.T) {
	st := newStore()
	s := New(st)
	_, _ = s.Login("admin", "admin123")

	no := false
	_, err := st.UpdateAccount("admin", models.AccountPatch{IsAdmin: &no})
	require.NoError(t, err)

	_, err = s.RequireAdmin()
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestRemovedAccountIsLoggedOut(t *testing.T) {
	st := newStore()
	s := New(st)
	_, _ = s.Login("user", "user123")

	require.NoError(t, st.DeleteAccount("user", "admin"))

	_, err := s.RequireUser()
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
