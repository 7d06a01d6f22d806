// Package models defines the client-side data model: credentials, the
// durable session, and the typed results decoded from backend responses.
package models

// Credentials is the raw user input for a single authentication attempt.
// It is never persisted.
type Credentials struct {
	Identifier string
	Secret     string
}

// Session is the durable login state owned by the session store.
// IsAuthenticated implies a non-empty Token.
type Session struct {
	// Token is the opaque session token issued by the backend.
	Token string
	// DisplayName is the last known user label; advisory only.
	DisplayName string
	// IsAuthenticated marks a usable session.
	IsAuthenticated bool
}

// HasToken reports whether a token is present.
func (s Session) HasToken() bool { return s.Token != "" }

// AuthResult is the decoded response of the login endpoint.
// Succeeded implies Token != nil.
type AuthResult struct {
	Succeeded bool
	Message   string
	Token     *string
}

// Profile is a snapshot of the authenticated user.
type Profile struct {
	ID              int64
	Email           string
	DisplayName     string
	ProfileImageURL *string
	Birthday        string
	IsAdmin         bool
	IsActive        bool
	IsDeleted       bool
	RecoveryHash    *string
	RecoveryExpiry  *string
	CreatedAt       string
	UpdatedAt       string
	LastLoginAt     string
}

// FeedItem is a post together with an embedded copy of its author.
type FeedItem struct {
	ID        int64
	ImageURL  string
	Title     string
	CreatedAt string
	UpdatedAt string
	AuthorID  int64
	Author    Profile
}

// ProfileEnvelope wraps a profile with the backend's success flag and message.
type ProfileEnvelope struct {
	Succeeded bool
	Message   string
	Payload   *Profile
}

// FeedEnvelope wraps the feed. The backend sends a bare array, so Succeeded
// is set by the client once the array decodes.
type FeedEnvelope struct {
	Succeeded bool
	Message   string
	Payload   []FeedItem
}
