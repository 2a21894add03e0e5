package models

import "time"

// User is a locally registered account. Password is kept in plain text:
// the account list never leaves the local store.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session projects the user onto the fields kept for the logged-in user.
func (u User) Session() Session {
	return Session{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// Profile returns every field except the password.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Session identifies the logged-in user. It never carries the password.
type Session struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FullName returns "First Last", falling back to the first name, then the
// email, then "User". A nil session yields "User".
func (s *Session) FullName() string {
	switch {
	case s == nil:
		return "User"
	case s.FirstName != "" && s.LastName != "":
		return s.FirstName + " " + s.LastName
	case s.FirstName != "":
		return s.FirstName
	case s.Email != "":
		return s.Email
	}
	return "User"
}

// UserProfile is the full user record without the password.
type UserProfile struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterInput holds the registration form. All fields are required.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput holds login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput holds the editable profile fields. All are required.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

// ChangePasswordInput holds the password change form.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}
