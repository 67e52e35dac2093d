package httpserver

const (
	// Literal prompts handled without invoking the agent.
	CommandRefresh      = "refresh"
	CommandAuthenticate = "authenticate"

	MsgSessionRefreshed = "Session refreshed. Your conversation history and generated files were cleared; your Google Ads authentication is still active."
	MsgAuthenticateLink = "Please authenticate with Google Ads via this link: %s"

	ErrMsgInvalidRequest  = "prompt and user_id are required"
	ErrMsgStreamingFailed = "Something went wrong while processing your request. Please try again."

	LogPrefixPrompt   = "httpserver.handlePrompt: "
	LogPrefixAuth     = "httpserver.handleAuthenticate: "
	LogPrefixCallback = "httpserver.handleCallback: "
)

// htmlCustomerIDForm is rendered after a successful token exchange so
// the user can supply their Google Ads customer ID. The hidden state
// field carries the anti-forgery OAuth state back on POST; the session
// is matched by that state, never by a client-supplied identity.
const htmlCustomerIDForm = `<!DOCTYPE html>
<html>
<head><title>Ads Manager - Almost Done</title></head>
<body style="font-family: sans-serif; max-width: 480px; margin: 64px auto;">
  <h2>One last step</h2>
  <p>Authentication succeeded%s. Enter your Google Ads customer ID
  (10 digits, with or without dashes) to finish setup.</p>
  <form method="POST" action="/callback">
    <input type="hidden" name="state" value="%s" />
    <input type="text" name="customer_id" placeholder="123-456-7890" required />
    <button type="submit">Save</button>
  </form>
</body>
</html>`

// htmlResultPage is the terminal page for both success and failure.
const htmlResultPage = `<!DOCTYPE html>
<html>
<head><title>Ads Manager</title></head>
<body style="font-family: sans-serif; max-width: 480px; margin: 64px auto;">
  <h2>%s</h2>
  <p>%s</p>
</body>
</html>`
