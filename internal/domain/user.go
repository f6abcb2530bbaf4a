package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// CanEdit reports whether the role may reach the admin editor.
func (r Role) CanEdit() bool {
	return r == RoleModerator || r == RoleAdmin
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AvatarOption struct {
	Style string `json:"style"`
	URL   string `json:"url"`
}

type ProfileInput struct {
	DisplayName string
	AvatarURL   string
	Bio         string
}

// Session is the identity passed explicitly to everything that needs it.
// Role is resolved once when the session is resolved.
type Session struct {
	User      User
	Role      Role
	ExpiresAt time.Time
}

type SessionRecord struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Credentials struct {
	Email    string
	Password string
}

// IssuedSession is returned once after sign-in; the raw token is never stored.
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
