package httpserver

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/pkg/googleauth"
)

var customerIDDigitsRe = regexp.MustCompile(`[^0-9]`)

// handleAuthenticate begins the OAuth consent flow
// @Summary Begin authentication
// @Description Redirect the user to the Google OAuth consent screen
// @Tags Auth
// @Param userId query string true "base64url-encoded user identity"
// @Success 302 {string} string "Redirect to consent URL"
// @Router /authenticate [get]
func (srv *HTTPServer) handleAuthenticate(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := agent.DecodeUserID(c.Query("userId"))
	if err != nil || userID == "" {
		srv.l.Warnf(ctx, LogPrefixAuth+"bad userId parameter: %v", err)
		srv.renderResult(c, http.StatusBadRequest, "Authentication failed",
			"The authentication link is malformed. Ask the assistant for a new one.")
		return
	}

	state := googleauth.NewState()
	srv.sessions.BeginAuth(ctx, userID, state)

	srv.l.Infof(ctx, LogPrefixAuth+"consent flow started for user %s", userID)
	c.Redirect(http.StatusFound, srv.oauth.AuthCodeURL(state))
}

// handleCallbackGet completes the token exchange
// @Summary OAuth callback
// @Description Exchange the authorization code and ask for the Google Ads customer ID
// @Tags Auth
// @Param state query string true "anti-forgery state"
// @Param code query string true "authorization code"
// @Success 200 {string} string "HTML customer ID form"
// @Router /callback [get]
func (srv *HTTPServer) handleCallbackGet(c *gin.Context) {
	ctx := c.Request.Context()

	state := c.Query("state")
	sess, err := srv.sessions.FindByOAuthState(state)
	if err != nil {
		srv.l.Warnf(ctx, LogPrefixCallback+"unmatched OAuth state")
		srv.renderResult(c, http.StatusBadRequest, "Authentication failed",
			"This authentication link has expired or was already used. Ask the assistant for a new one.")
		return
	}

	token, err := srv.oauth.Exchange(ctx, c.Query("code"))
	if err != nil {
		srv.l.Errorf(ctx, LogPrefixCallback+"token exchange failed for user %s: %v", sess.UserID, err)
		srv.renderResult(c, http.StatusBadGateway, "Authentication failed",
			"Google did not accept the authorization code. Please try again.")
		return
	}

	// Best-effort identity lookup; setup continues without it.
	email, err := srv.oauth.Userinfo(ctx, token)
	if err != nil {
		srv.l.Warnf(ctx, LogPrefixCallback+"userinfo lookup failed for user %s: %v", sess.UserID, err)
	}

	srv.sessions.CompleteTokenExchange(sess, token.AccessToken, token.RefreshToken, email)
	srv.l.Infof(ctx, LogPrefixCallback+"tokens received for user %s", sess.UserID)

	emailNote := ""
	if email != "" {
		emailNote = " as " + email
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte(fmt.Sprintf(htmlCustomerIDForm, emailNote, state)))
}

// handleCallbackPost finishes setup with the customer ID. The session
// is matched by the same anti-forgery state the consent flow minted,
// so a caller cannot attach a customer ID to someone else's session by
// guessing their user ID.
// @Summary Complete authentication
// @Description Persist the Google Ads customer ID and mark the session ready
// @Tags Auth
// @Param state formData string true "anti-forgery state"
// @Param customer_id formData string true "Google Ads customer ID"
// @Success 200 {string} string "HTML confirmation page"
// @Router /callback [post]
func (srv *HTTPServer) handleCallbackPost(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := srv.sessions.FindByOAuthState(c.PostForm("state"))
	if err != nil {
		srv.l.Warnf(ctx, LogPrefixCallback+"unmatched OAuth state on form submit")
		srv.renderResult(c, http.StatusBadRequest, "Setup failed",
			"This setup form has expired or was already used. Restart authentication from the assistant.")
		return
	}

	customerID := customerIDDigitsRe.ReplaceAllString(c.PostForm("customer_id"), "")
	if len(customerID) != 10 {
		srv.renderResult(c, http.StatusBadRequest, "Setup failed",
			"A Google Ads customer ID has 10 digits. Go back and check the value.")
		return
	}

	if _, refreshToken := sess.Credentials(); refreshToken == "" {
		srv.renderResult(c, http.StatusBadRequest, "Setup failed",
			"No tokens were found for this session. Restart authentication from the assistant.")
		return
	}

	if err := srv.sessions.InjectCredentials(ctx, sess, customerID); err != nil {
		srv.renderResult(c, http.StatusInternalServerError, "Setup failed",
			"Your credentials could not be stored. Please try again.")
		return
	}

	srv.l.Infof(ctx, LogPrefixCallback+"setup completed for user %s", sess.UserID)
	srv.renderResult(c, http.StatusOK, "You're all set",
		"Authentication is complete. Return to the chat and continue managing your campaigns.")
}

func (srv *HTTPServer) renderResult(c *gin.Context, status int, title, body string) {
	c.Data(status, "text/html; charset=utf-8",
		[]byte(fmt.Sprintf(htmlResultPage, title, body)))
}
