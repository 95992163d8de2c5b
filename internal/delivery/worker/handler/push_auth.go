package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// pushAuthenticator checks the OIDC token Pub/Sub attaches to authenticated
// push requests. The expected audience is the push endpoint's own URL.
type pushAuthenticator struct {
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func (a *pushAuthenticator) verify(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := a.validate(req.Context(), token, endpointURL(req))
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if _, ok := googleIssuers[payload.Issuer]; !ok {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email is not verified")
	}

	return nil
}

func endpointURL(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
