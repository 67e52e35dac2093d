package session

import (
	"sync"
	"time"

	"github.com/denissa4/ads-manager/pkg/llmprovider"
)

// AuthStage tracks progress through the OAuth flow
type AuthStage string

const (
	// StageUnauthenticated means no OAuth flow has started
	StageUnauthenticated AuthStage = "unauthenticated"
	// StageAwaitingCallback means an authorization URL was issued and the
	// callback has not arrived yet
	StageAwaitingCallback AuthStage = "awaiting_callback"
	// StageTokenReceived means tokens arrived but no customer ID is set
	StageTokenReceived AuthStage = "token_received"
	// StageReady means the session can call the Google Ads API
	StageReady AuthStage = "ready"
)

// Auth holds the per-session OAuth state machine
type Auth struct {
	Stage        AuthStage
	OAuthState   string // anti-forgery state for the pending flow
	AccessToken  string
	RefreshToken string
	CustomerID   string
	Email        string
}

// Artifacts tracks files produced or uploaded during the session.
// Paths are absolute; the reaper deletes them when the session expires.
type Artifacts struct {
	KeywordsFile  string // CSV keyword statistics report
	IdeasFile     string // generated campaign ideas text
	UploadedFiles []string
}

// Session is the per-user conversation state. All fields are guarded by
// mu; the manager's lock covers only the session table itself.
type Session struct {
	mu sync.Mutex

	UserID       string
	Auth         Auth
	Artifacts    Artifacts
	memory       []llmprovider.Message
	memoryLimit  int
	LastActiveAt time.Time
}

// Authenticated reports whether the session can call the Ads API.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Auth.Stage == StageReady
}

// Credentials returns the customer ID and refresh token for API calls.
func (s *Session) Credentials() (customerID, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Auth.CustomerID, s.Auth.RefreshToken
}

// AppendMemory adds a message to conversation memory, evicting the
// oldest messages beyond the limit.
func (s *Session) AppendMemory(msg llmprovider.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memory = append(s.memory, msg)
	if s.memoryLimit > 0 && len(s.memory) > s.memoryLimit {
		s.memory = s.memory[len(s.memory)-s.memoryLimit:]
	}
}

// History returns a copy of the conversation memory.
func (s *Session) History() []llmprovider.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]llmprovider.Message, len(s.memory))
	copy(out, s.memory)
	return out
}

// ClearMemory drops the conversation memory.
func (s *Session) ClearMemory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory = nil
}

// SetKeywordsFile records the keyword report artifact path.
func (s *Session) SetKeywordsFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Artifacts.KeywordsFile = path
}

// SetIdeasFile records the campaign ideas artifact path.
func (s *Session) SetIdeasFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Artifacts.IdeasFile = path
}

// AddUploadedFile records an uploaded attachment path.
func (s *Session) AddUploadedFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Artifacts.UploadedFiles = append(s.Artifacts.UploadedFiles, path)
}

// ArtifactPaths returns all file paths owned by the session.
func (s *Session) ArtifactPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var paths []string
	if s.Artifacts.KeywordsFile != "" {
		paths = append(paths, s.Artifacts.KeywordsFile)
	}
	if s.Artifacts.IdeasFile != "" {
		paths = append(paths, s.Artifacts.IdeasFile)
	}
	paths = append(paths, s.Artifacts.UploadedFiles...)
	return paths
}

// KeywordsFile returns the keyword report path, if any.
func (s *Session) KeywordsFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Artifacts.KeywordsFile
}

// IdeasFile returns the campaign ideas path, if any.
func (s *Session) IdeasFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Artifacts.IdeasFile
}

// UploadedFiles returns a copy of the uploaded attachment paths.
func (s *Session) UploadedFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.Artifacts.UploadedFiles))
	copy(out, s.Artifacts.UploadedFiles)
	return out
}
