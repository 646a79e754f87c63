package handler

import (
	"net/http"
	"testing"

	"github.com/genius-ayush/voiceHire/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	token, id := env.register(t, "asha@acme.dev")

	require.Equal(t, 1, env.recruiters.count())
	claims, err := auth.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.RecruiterID, "token must carry the created recruiter's id")

	stored := env.recruiters.byID[id]
	assert.NotEqual(t, "s3cretpw", stored.PasswordHash, "password must never be stored in plaintext")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "asha@acme.dev")

	w := env.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "Asha Again",
		"email":    "asha@acme.dev",
		"password": "another1",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	env2 := decodeEnvelope(t, w)
	assert.False(t, env2.Success)
	assert.Equal(t, "CONFLICT", env2.Error.Code)
	assert.Equal(t, 1, env.recruiters.count(), "duplicate register must not create a second account")
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "A",
		"email":    "not-an-email",
		"password": "x",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, env.recruiters.count())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	_, id := env.register(t, "asha@acme.dev")

	w := env.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "asha@acme.dev",
		"password": "s3cretpw",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		Token string    `json:"token"`
		ID    uuid.UUID `json:"id"`
	}
	decodeData(t, w, &res)
	assert.Equal(t, id, res.ID)

	claims, err := auth.ParseToken(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.RecruiterID)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "asha@acme.dev")

	w := env.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "asha@acme.dev",
		"password": "wrongpass",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	env2 := decodeEnvelope(t, w)
	assert.Equal(t, "UNAUTHORIZED", env2.Error.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "nobody@acme.dev",
		"password": "whatever1",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	token, id := env.register(t, "asha@acme.dev")

	w := env.do(t, http.MethodGet, "/auth/me", token, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		Recruiter   string    `json:"recruiter"`
		Email       string    `json:"email"`
		RecruiterID uuid.UUID `json:"recruiterId"`
	}
	decodeData(t, w, &res)
	assert.Equal(t, "Asha Iyer", res.Recruiter)
	assert.Equal(t, "asha@acme.dev", res.Email)
	assert.Equal(t, id, res.RecruiterID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestMeRecruiterGone(t *testing.T) {
	env := newTestEnv(t)
	token, id := env.register(t, "asha@acme.dev")
	delete(env.recruiters.byID, id)

	w := env.do(t, http.MethodGet, "/auth/me", token, nil)

	require.Equal(t, http.StatusForbidden, w.Code)
}
