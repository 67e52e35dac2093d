package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/session"
	"github.com/denissa4/ads-manager/pkg/response"
)

// promptRequest is the chat-surface payload for one user turn.
type promptRequest struct {
	Prompt      string       `json:"prompt"`
	UserID      string       `json:"user_id"`
	Attachments []attachment `json:"attachments,omitempty"`
}

// attachment carries either inline content or a URL to fetch.
type attachment struct {
	ContentType string `json:"contentType,omitempty"`
	ContentURL  string `json:"contentUrl,omitempty"`
	Name        string `json:"name,omitempty"`
	Content     string `json:"content,omitempty"`
}

// responseFrame is one newline-delimited JSON object in the stream.
type responseFrame struct {
	Response string `json:"response"`
}

// handlePrompt handles one chat turn
// @Summary Submit a prompt
// @Description Run one assistant turn and stream newline-delimited JSON frames back
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body promptRequest true "User prompt"
// @Success 200 {object} responseFrame "NDJSON stream of incremental responses"
// @Router /prompt [post]
func (srv *HTTPServer) handlePrompt(c *gin.Context) {
	ctx := c.Request.Context()

	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" || strings.TrimSpace(req.UserID) == "" {
		response.Error(c, errors.New(ErrMsgInvalidRequest), nil)
		return
	}

	if srv.limiter != nil {
		if err := srv.limiter.Allow(req.UserID); err != nil {
			srv.l.Warnf(ctx, LogPrefixPrompt+"rate limited user %s", req.UserID)
			response.TooManyRequests(c)
			return
		}
	}

	sess := srv.sessions.GetOrCreate(ctx, req.UserID)
	srv.sessions.Touch(req.UserID)

	c.Writer.Header().Set("Content-Type", "application/x-ndjson")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.WriteHeader(http.StatusOK)

	emit := func(text string) {
		srv.writeFrame(c, text)
	}

	// Literal commands short-circuit the agent entirely.
	switch strings.ToLower(strings.TrimSpace(req.Prompt)) {
	case CommandRefresh:
		if err := srv.sessions.Reset(ctx, req.UserID); err != nil {
			srv.l.Warnf(ctx, LogPrefixPrompt+"reset failed for user %s: %v", req.UserID, err)
		}
		emit(MsgSessionRefreshed)
		return
	case CommandAuthenticate:
		emit(fmt.Sprintf(MsgAuthenticateLink, agent.AuthLink(srv.baseURL, req.UserID)))
		return
	}

	srv.ingestAttachments(c, sess, req.Attachments)

	prompt := srv.augmentPrompt(sess, req.Prompt)

	if _, err := srv.agent.ProcessPrompt(ctx, sess, prompt, emit); err != nil {
		srv.l.Errorf(ctx, LogPrefixPrompt+"agent run failed for user %s: %v", req.UserID, err)
		emit(ErrMsgStreamingFailed)
	}
}

// writeFrame sends one NDJSON frame and flushes so the chat surface can
// render progressively.
func (srv *HTTPServer) writeFrame(c *gin.Context, text string) {
	frame, err := json.Marshal(responseFrame{Response: text})
	if err != nil {
		return
	}
	if _, err := c.Writer.Write(append(frame, '\n')); err != nil {
		srv.l.Warnf(c.Request.Context(), LogPrefixPrompt+"client write failed: %v", err)
		return
	}
	c.Writer.Flush()
}

// ingestAttachments saves inbound attachments into the session's
// uploaded files. Per-attachment failures are logged and skipped.
func (srv *HTTPServer) ingestAttachments(c *gin.Context, sess *session.Session, attachments []attachment) {
	if srv.artifacts == nil {
		return
	}
	ctx := c.Request.Context()

	for _, att := range attachments {
		var path string
		var err error
		switch {
		case att.Content != "":
			path, err = srv.artifacts.SaveContent(att.Name, []byte(att.Content))
		case att.ContentURL != "":
			path, err = srv.artifacts.FetchURL(ctx, att.ContentURL)
		default:
			continue
		}
		if err != nil {
			srv.l.Warnf(ctx, LogPrefixPrompt+"failed to ingest attachment %q: %v", att.Name, err)
			continue
		}
		sess.AddUploadedFile(path)
	}
}

// augmentPrompt prepends the session's known artifact paths so the
// agent can reference files produced in earlier turns.
func (srv *HTTPServer) augmentPrompt(sess *session.Session, prompt string) string {
	var context []string
	if f := sess.KeywordsFile(); f != "" {
		context = append(context, "Keyword statistics report: "+f)
	}
	if f := sess.IdeasFile(); f != "" {
		context = append(context, "Campaign ideas file: "+f)
	}
	if files := sess.UploadedFiles(); len(files) > 0 {
		context = append(context, "Uploaded reference files: "+strings.Join(files, ", "))
	}
	if len(context) == 0 {
		return prompt
	}
	return "[Session files]\n" + strings.Join(context, "\n") + "\n\n" + prompt
}
