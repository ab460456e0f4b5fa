package models

// User is the persisted user record. The password hash never leaves the
// server.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
	Signature    string `json:"signature"`
	Contact      string `json:"contact"`
	AvatarURL    string `json:"avatarUrl"`
}

// Profile is the public view of a user.
type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"isAdmin"`
	Signature string `json:"signature"`
	Contact   string `json:"contact"`
	AvatarURL string `json:"avatarUrl"`
}

// SessionUser is the public user object returned alongside a fresh token.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdate carries the mutable profile fields. Signature and contact
// may be empty; username may not.
type ProfileUpdate struct {
	Username  string `json:"username" binding:"required"`
	Signature string `json:"signature"`
	Contact   string `json:"contact"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		Signature: u.Signature,
		Contact:   u.Contact,
		AvatarURL: u.AvatarURL,
	}
}
