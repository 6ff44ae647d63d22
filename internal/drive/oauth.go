package drive

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope is the consent scope requested for browsing and downloading files.
const Scope = "https://www.googleapis.com/auth/drive.readonly"

// OAuthConfig builds the oauth2 config for the Drive consent flow. The
// redirect URL is filled in per-flow once the loopback listener is bound.
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{Scope},
		Endpoint:     google.Endpoint,
	}
}

// Authorize runs the browser consent flow: it binds a loopback listener,
// opens the consent URL via openURL, and waits for Google to redirect back
// with the authorization code. It returns the exchanged access token.
func Authorize(ctx context.Context, cfg *oauth2.Config, openURL func(string) error) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("binding loopback listener: %w", err)
	}
	defer ln.Close()

	cfg.RedirectURL = fmt.Sprintf("http://%s/callback", ln.Addr().String())
	state := uuid.NewString()

	type result struct {
		code string
		err  error
	}
	resultCh := make(chan result, 1)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/callback" {
				http.NotFound(w, r)
				return
			}
			q := r.URL.Query()
			if q.Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				resultCh <- result{err: fmt.Errorf("oauth state mismatch")}
				return
			}
			if errMsg := q.Get("error"); errMsg != "" {
				http.Error(w, errMsg, http.StatusBadRequest)
				resultCh <- result{err: fmt.Errorf("authorization denied: %s", errMsg)}
				return
			}
			fmt.Fprintln(w, "Authorized. You can close this tab and return to the terminal.")
			resultCh <- result{code: q.Get("code")}
		}),
	}
	go srv.Serve(ln)
	defer srv.Close()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
	if err := openURL(authURL); err != nil {
		return nil, fmt.Errorf("opening browser: %w", err)
	}

	select {
	case res := <-resultCh:
		if res.err != nil {
			return nil, res.err
		}
		exchangeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		tok, err := cfg.Exchange(exchangeCtx, res.code)
		if err != nil {
			return nil, fmt.Errorf("exchanging authorization code: %w", err)
		}
		return tok, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
