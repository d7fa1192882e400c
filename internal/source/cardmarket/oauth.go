package cardmarket

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
)

// Credentials are the OAuth1 application and access tokens.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

// signingTransport adds an OAuth1 HMAC-SHA1 Authorization header to every
// request it sends, so each retry carries a fresh nonce and timestamp. The
// realm is the request URL without its query.
type signingTransport struct {
	creds Credentials
	token *oauth1.Token
	base  http.RoundTripper
}

func newSigningTransport(creds Credentials, base http.RoundTripper) *signingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &signingTransport{
		creds: creds,
		token: oauth1.NewToken(creds.Token, creds.TokenSecret),
		base:  base,
	}
}

func (t *signingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cfg := oauth1.NewConfig(t.creds.ConsumerKey, t.creds.ConsumerSecret)
	cfg.Realm = realmOf(req)

	ctx := context.WithValue(req.Context(), oauth1.HTTPClient, &http.Client{Transport: t.base})
	return cfg.Client(ctx, t.token).Transport.RoundTrip(req)
}

func realmOf(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
