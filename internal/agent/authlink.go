package agent

import (
	"encoding/base64"
	"strings"
)

// AuthLink builds the authentication URL for a user. The user ID is
// base64url-encoded so opaque external identities survive the query
// string.
func AuthLink(baseURL, userID string) string {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(userID))
	return strings.TrimRight(baseURL, "/") + "/authenticate?userId=" + encoded
}

// DecodeUserID reverses the encoding used by AuthLink.
func DecodeUserID(encoded string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		// Some clients pad the value; accept standard encoding too.
		raw, err = base64.URLEncoding.DecodeString(encoded)
		if err != nil {
			return "", err
		}
	}
	return string(raw), nil
}

// AuthInstruction is the user-facing message a guarded tool returns
// when the session is not authenticated.
func AuthInstruction(baseURL, userID string) string {
	return "To use this tool, the user must authenticate via this link: " + AuthLink(baseURL, userID)
}
