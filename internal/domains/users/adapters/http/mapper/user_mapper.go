package mapper

import (
	"github.com/softpaws/petstore-api/internal/domains/users/domain"
)

// User is the declared schema shared by the create body, the batch-create
// items, the update body, and the response shape. Every field is a pointer
// so the required check is for key presence only: userStatus 0 and id 0 are
// legitimate payloads.
type User struct {
	ID         *int64  `json:"id" binding:"required"`
	Username   *string `json:"username" binding:"required"`
	FirstName  *string `json:"firstName" binding:"required"`
	LastName   *string `json:"lastName" binding:"required"`
	Email      *string `json:"email" binding:"required"`
	Password   *string `json:"password" binding:"required"`
	Phone      *string `json:"phone" binding:"required"`
	UserStatus *int32  `json:"userStatus" binding:"required"`
}

// LoginQuery is the declared query schema for GET /user/login. Pointers keep
// a present-but-empty password distinct from a missing one; the credential
// check decides what an empty password means.
type LoginQuery struct {
	Username *string `form:"username" binding:"required"`
	Password *string `form:"password" binding:"required"`
}

// Username value with nil guard.
func (q LoginQuery) UsernameValue() string { return stringValue(q.Username) }

// Password value with nil guard.
func (q LoginQuery) PasswordValue() string { return stringValue(q.Password) }

// ToDomainUser maps a validated transport user into the domain entity.
func ToDomainUser(input User) (*domain.User, error) {
	user, err := domain.NewUser(int64Value(input.ID), stringValue(input.Username), stringValue(input.Password))
	if err != nil {
		return nil, err
	}
	user.FirstName = stringValue(input.FirstName)
	user.LastName = stringValue(input.LastName)
	user.Email = stringValue(input.Email)
	user.Phone = stringValue(input.Phone)
	user.Status = int32Value(input.UserStatus)
	return user, nil
}

// ToDomainUsers maps a batch payload.
func ToDomainUsers(inputs []User) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(inputs))
	for _, input := range inputs {
		user, err := ToDomainUser(input)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// FromDomainUser converts a domain user to the transport representation.
func FromDomainUser(user *domain.User) User {
	if user == nil {
		return User{}
	}
	id := user.ID
	username := user.Username
	firstName := user.FirstName
	lastName := user.LastName
	email := user.Email
	password := user.Password
	phone := user.Phone
	status := user.Status
	return User{
		ID:         &id,
		Username:   &username,
		FirstName:  &firstName,
		LastName:   &lastName,
		Email:      &email,
		Password:   &password,
		Phone:      &phone,
		UserStatus: &status,
	}
}

// FromDomainUsers converts a result set.
func FromDomainUsers(users []*domain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}

func int64Value(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func int32Value(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
