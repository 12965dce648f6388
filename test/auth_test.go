package test

import (
	"context"
	"net/http"

	"github.com/2beens/liftlog/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.newUser(ctx, t)

	var storedHash string
	require.NoError(t, s.DB.QueryRowContext(
		ctx, `SELECT password_hash FROM users WHERE id = $1`, user.ID,
	).Scan(&storedHash))
	assert.NotEqual(t, user.Password, storedHash)

	status, _ := s.do(ctx, http.MethodPost, "/a/register", "", auth.Credentials{
		Username: user.Username,
		Password: "other-password",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.do(ctx, http.MethodPost, "/a/login", "", auth.Credentials{
		Username: user.Username,
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(ctx, http.MethodGet, "/exercises", user.Token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodGet, "/a/logout", user.Token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodGet, "/exercises", user.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestProtectedRoutesNeedSession() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, path := range []string{"/exercises", "/programs", "/workouts", "/prs", "/prs/stored"} {
		status, _ := s.do(ctx, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)

		status, _ = s.do(ctx, http.MethodGet, path, "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}

	status, body := s.do(ctx, http.MethodGet, "/version", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "test-version-info")
}
