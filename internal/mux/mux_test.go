package mux

import (
	"net/http/httptest"
	"testing"

	"holdem-server/internal/config"
	"holdem-server/internal/jwt"
	"holdem-server/internal/util"
)

func setupJWT(t *testing.T) {
	t.Helper()

	unset1 := util.SetEnv("HOLDEM_JWT_PUBLIC_KEY", "testdata/public.pem")
	unset2 := util.SetEnv("HOLDEM_JWT_PRIVATE_KEY", "testdata/private.key")
	t.Cleanup(unset1)
	t.Cleanup(unset2)

	if err := config.Load(); err != nil {
		t.Fatal(err)
	}

	jwt.LoadKeys()
}

func TestMux_authRequired(t *testing.T) {
	setupJWT(t)

	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	// no credentials
	assertGet(t, ts, "/lobby", nil, 401)
	assertGet(t, ts, "/admin/lobby", nil, 401)
	assertPost(t, ts, "/lobby", lobbyPayload{Name: "my-lobby"}, nil, 401)
	assertPost(t, ts, "/lobby/my-lobby/action", actionPayload{Action: "call"}, nil, 401)

	// garbage bearer token
	assertGet(t, ts, "/lobby", nil, 401, "not-a-jwt")
}
