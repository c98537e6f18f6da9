package client

import (
	"net/http"

	"taskboard/internal/session"
)

// authTransport attaches the stored bearer token to every request and drops
// the session when the server rejects it. This is the only place a 401
// touches the session store.
type authTransport struct {
	next     http.RoundTripper
	sessions *session.Store
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.sessions.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_ = t.sessions.Clear()
	}
	return resp, nil
}
