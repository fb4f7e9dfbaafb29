package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
)

// User represents a Petstore account. The password is stored as supplied;
// credential hashing is out of scope for this service.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Status    int32
}

// NewUser builds a user ensuring required invariants.
func NewUser(id int64, username, password string) (*User, error) {
	user := &User{ID: id}
	if err := user.SetUsername(username); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetUsername trims and validates the username.
func (u *User) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	u.Username = username
	return nil
}

// SetPassword validates the credential is present.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	u.Password = password
	return nil
}

// CheckPassword compares the stored password with the supplied credential.
// The comparison is an exact match on the stored clear text.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}
