package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/softpaws/petstore-api/internal/domains/users/domain"
	"github.com/softpaws/petstore-api/internal/domains/users/ports"
)

const (
	// LoginConfirmation is returned on a successful credential check. No
	// session or token is issued.
	LoginConfirmation = "User logged in!"
	// LogoutConfirmation is returned unconditionally; no state is held.
	LogoutConfirmation = "user logged out!"
)

// Service exposes the user bounded context use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateUser inserts a new user. The id constraint is checked before the
// username constraint, so a payload violating both reports the id clash.
func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if _, err := s.repo.GetByID(ctx, user.ID); err == nil {
		return nil, fmt.Errorf("%w: user id %d", ports.ErrDuplicateID, user.ID)
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	if _, err := s.repo.GetByUsername(ctx, user.Username); err == nil {
		return nil, fmt.Errorf("%w: username %q", ports.ErrDuplicateUsername, user.Username)
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return s.repo.Insert(ctx, user)
}

// CreateUsers inserts a batch after checking its ids and usernames against
// the stored users. Collisions inside the incoming batch itself are not
// detected; see the service tests pinning that contract.
func (s *Service) CreateUsers(ctx context.Context, users []*domain.User) ([]*domain.User, error) {
	ids := make([]int64, 0, len(users))
	usernames := make([]string, 0, len(users))
	for _, u := range users {
		if u == nil {
			return nil, errors.New("user is nil")
		}
		ids = append(ids, u.ID)
		usernames = append(usernames, u.Username)
	}

	existingByID, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(existingByID) > 0 {
		taken := make([]string, 0, len(existingByID))
		for _, u := range existingByID {
			taken = append(taken, strconv.FormatInt(u.ID, 10))
		}
		return nil, fmt.Errorf("%w: user id(s) %s", ports.ErrDuplicateID, strings.Join(taken, ","))
	}

	existingByName, err := s.repo.FindByUsernames(ctx, usernames)
	if err != nil {
		return nil, err
	}
	if len(existingByName) > 0 {
		taken := make([]string, 0, len(existingByName))
		for _, u := range existingByName {
			taken = append(taken, u.Username)
		}
		return nil, fmt.Errorf("%w: username(s) %s", ports.ErrDuplicateUsername, strings.Join(taken, ","))
	}

	return s.repo.InsertBatch(ctx, users)
}

// Login performs the stateless credential check and returns a confirmation
// message.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if !user.CheckPassword(password) {
		return "", ports.ErrInvalidCredentials
	}
	return LoginConfirmation, nil
}

// Logout always succeeds; there is no session state to clear.
func (s *Service) Logout(_ context.Context) string {
	return LogoutConfirmation
}

// GetByUsername loads a single user.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Update replaces every stored field of the user addressed by the path
// username with the submitted payload and echoes the payload back.
func (s *Service) Update(ctx context.Context, username string, updated *domain.User) (*domain.User, error) {
	if updated == nil {
		return nil, errors.New("user is nil")
	}
	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	if _, err := s.repo.Update(ctx, username, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the user and returns a confirmation naming the username.
func (s *Service) Delete(ctx context.Context, username string) (string, error) {
	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, username); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s user was deleted!", username), nil
}
