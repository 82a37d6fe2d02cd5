package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forkful/client/internal/store"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
)

func TestLoginEstablishesSessionAndLoadsUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("useCookies"))
		var req types.LoginRequest
		assert.NoError(t, decodeJSON(r, &req))
		assert.Equal(t, "demo@user.com", req.Email)
		assert.Equal(t, "demoPassword123!", req.Password)
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1", Path: "/"})
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("GET /api/accounts/user-info", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err != nil || c.Value != "s1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"profileName":"Demo"}`))
	})
	env := newTestEnv(t, mux)
	auth := store.NewAuthStore()
	svc := NewAccountService(env.api, auth, env.notifier)

	user, err := svc.Login(context.Background(), "demo@user.com", "demoPassword123!")
	assert.NoError(t, err)
	assert.Equal(t, "Demo", user.ProfileName)
	assert.Equal(t, "Demo", auth.User().ProfileName)
}

func TestSessionCheck401IsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/accounts/user-info", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	env := newTestEnv(t, mux)
	auth := store.NewAuthStore()
	auth.SetUser(&types.User{ID: 1, ProfileName: "Stale"})
	svc := NewAccountService(env.api, auth, env.notifier)

	user, err := svc.SessionCheck(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, auth.User())
}

func TestSessionCheckLoadsUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/accounts/user-info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":2,"profileName":"Demo","email":"demo@user.com"}`))
	})
	env := newTestEnv(t, mux)
	auth := store.NewAuthStore()
	svc := NewAccountService(env.api, auth, env.notifier)

	user, err := svc.SessionCheck(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Demo", user.ProfileName)
	assert.True(t, auth.IsAuthenticated())
}

func TestRegisterSurfacesValidationFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":["Email is already taken"]}`))
	})
	env := newTestEnv(t, mux)
	svc := NewAccountService(env.api, store.NewAuthStore(), env.notifier)

	err := svc.Register(context.Background(), types.RegisterRequest{Email: "demo@user.com"})
	var se *transport.StatusError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Equal(t, []string{"Email is already taken"}, se.Fields)
}

func TestLogoutClearsAuthSlice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/logout", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	env := newTestEnv(t, mux)
	auth := store.NewAuthStore()
	auth.SetUser(&types.User{ID: 1})
	svc := NewAccountService(env.api, auth, env.notifier)

	assert.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, auth.User())
}
