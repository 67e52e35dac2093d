package googleauth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Scopes requested during the consent flow. AdWords grants Google Ads API
// access; the identity scopes let the callback record who authorised.
var Scopes = []string{
	"https://www.googleapis.com/auth/adwords",
	"openid",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
}

// Flow wraps the OAuth2 authorization-code flow for Google Ads access.
type Flow struct {
	conf *oauth2.Config
}

// New creates a Flow. redirectURL must match one of the client's registered
// redirect URIs.
func New(clientID, clientSecret, redirectURL string) *Flow {
	return &Flow{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       Scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// NewState returns an opaque single-use state token for the handshake.
func NewState() string {
	return uuid.NewString()
}

// AuthCodeURL builds the consent URL for the given state. Offline access
// with forced consent guarantees a refresh token on every authorisation.
func (f *Flow) AuthCodeURL(state string) string {
	return f.conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

// Exchange trades an authorization code for tokens.
func (f *Flow) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := f.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// Userinfo fetches the authorising user's email address with the freshly
// obtained token. Best-effort: callers treat failures as non-fatal.
func (f *Flow) Userinfo(ctx context.Context, token *oauth2.Token) (string, error) {
	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(f.conf.TokenSource(ctx, token)))
	if err != nil {
		return "", fmt.Errorf("failed to create userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	return info.Email, nil
}
