package services

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/passwords"
)

// AuthService defines the account operations of the client.
//
// Contract:
//   - Register: create a user and log them in.
//   - Login / Logout: open or close the session.
//   - UpdateProfile / ChangePassword: edit the logged-in user.
//   - CurrentUser, CurrentUserFullData, Users, IsAuthenticated, FullName: reads.
//
// Emails are compared after trimming and lowercasing.
type AuthService interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.Session, error)
	Login(ctx context.Context, in models.LoginInput) (*models.Session, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.Session, error)
	ChangePassword(ctx context.Context, in models.ChangePasswordInput) error

	CurrentUser() (*models.Session, bool)
	CurrentUserFullData() (*models.UserProfile, bool)
	Users() []models.Session
	IsAuthenticated() bool
	FullName() string
}

// authService is the concrete AuthService persisted under common.AuthStoreKey.
type authService struct {
	mu    sync.Mutex
	repo  kv.Repository
	now   func() time.Time
	log   logging.Logger
	state models.AuthState
}

// NewAuthService loads the saved users and session from repo.
func NewAuthService(ctx context.Context, repo kv.Repository, opts ...Option) (AuthService, error) {
	o := buildOptions(opts)
	s := &authService{repo: repo, now: o.now, log: o.log.With("store", "auth")}

	if _, err := loadState(ctx, repo, common.AuthStoreKey, &s.state); err != nil {
		return nil, err
	}
	if s.state.Users == nil {
		s.state.Users = []models.User{}
	}
	s.log.Debug(ctx, "auth store loaded", "users", len(s.state.Users), "authenticated", s.state.CurrentUser != nil)
	return s, nil
}

func (s *authService) persist(ctx context.Context) {
	saveState(ctx, s.repo, s.log, common.AuthStoreKey, s.state)
}

func (s *authService) findByEmail(email string) int {
	return slices.IndexFunc(s.state.Users, func(u models.User) bool { return u.Email == email })
}

func (s *authService) findByID(id string) int {
	return slices.IndexFunc(s.state.Users, func(u models.User) bool { return u.ID == id })
}

// Register validates the form, stores a new user and opens a session for it.
// The password is stored as given; policy checks belong to the caller.
func (s *authService) Register(ctx context.Context, in models.RegisterInput) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := common.NormalizeEmail(in.Email)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)

	switch {
	case email == "" || in.Password == "":
		return nil, common.Validation("email and password are required")
	case firstName == "":
		return nil, common.Validation("first name is required")
	case lastName == "":
		return nil, common.Validation("last name is required")
	case s.findByEmail(email) >= 0:
		return nil, common.ErrEmailRegistered
	}

	now := s.now()
	user := models.User{
		ID:        common.NewID(now),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  in.Password,
		CreatedAt: now.UTC(),
	}
	s.state.Users = append(s.state.Users, user)

	session := user.Session()
	s.state.CurrentUser = &session
	s.persist(ctx)

	s.log.Info(ctx, "user registered", "id", user.ID)
	return copySession(s.state.CurrentUser), nil
}

// Login opens a session for the user with the given email and password.
// An unknown email and a wrong password fail with the same error.
func (s *authService) Login(ctx context.Context, in models.LoginInput) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := common.NormalizeEmail(in.Email)
	i := slices.IndexFunc(s.state.Users, func(u models.User) bool {
		return u.Email == email && u.Password == in.Password
	})
	if i < 0 {
		s.log.Debug(ctx, "login rejected")
		return nil, common.ErrInvalidCredentials
	}

	session := s.state.Users[i].Session()
	s.state.CurrentUser = &session
	s.persist(ctx)

	s.log.Info(ctx, "user logged in", "id", session.ID)
	return copySession(s.state.CurrentUser), nil
}

// Logout closes the session. It never fails.
func (s *authService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentUser = nil
	s.persist(ctx)
	s.log.Info(ctx, "user logged out")
	return nil
}

// UpdateProfile changes the names and email of the logged-in user and
// mirrors them into the session. Keeping one's own email is allowed.
func (s *authService) UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil, common.ErrNotAuthenticated
	}

	email := common.NormalizeEmail(in.Email)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	selfID := s.state.CurrentUser.ID

	switch {
	case email == "":
		return nil, common.Validation("email is required")
	case firstName == "":
		return nil, common.Validation("first name is required")
	case lastName == "":
		return nil, common.Validation("last name is required")
	}

	taken := slices.ContainsFunc(s.state.Users, func(u models.User) bool {
		return u.Email == email && u.ID != selfID
	})
	if taken {
		return nil, common.ErrEmailTaken
	}

	i := s.findByID(selfID)
	if i < 0 {
		return nil, common.ErrUserNotFound
	}

	u := &s.state.Users[i]
	u.FirstName, u.LastName, u.Email = firstName, lastName, email

	cur := s.state.CurrentUser
	cur.FirstName, cur.LastName, cur.Email = u.FirstName, u.LastName, u.Email
	s.persist(ctx)

	s.log.Info(ctx, "profile updated", "id", selfID)
	return copySession(cur), nil
}

// ChangePassword replaces the logged-in user's password after checking the
// current one and running the password policy on the new one.
func (s *authService) ChangePassword(ctx context.Context, in models.ChangePasswordInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return common.ErrNotAuthenticated
	}

	i := s.findByID(s.state.CurrentUser.ID)
	if i < 0 {
		return common.ErrUserNotFound
	}
	if s.state.Users[i].Password != in.CurrentPassword {
		return common.ErrWrongPassword
	}
	if err := passwords.Check(in.NewPassword); err != nil {
		return err
	}

	s.state.Users[i].Password = in.NewPassword
	s.persist(ctx)

	s.log.Info(ctx, "password changed", "id", s.state.Users[i].ID)
	return nil
}

// CurrentUser returns a copy of the session, if any.
func (s *authService) CurrentUser() (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil, false
	}
	return copySession(s.state.CurrentUser), true
}

// CurrentUserFullData returns the logged-in user's record without the
// password. It reports false when nobody is logged in or the record is gone.
func (s *authService) CurrentUserFullData() (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil, false
	}
	i := s.findByID(s.state.CurrentUser.ID)
	if i < 0 {
		return nil, false
	}
	p := s.state.Users[i].Profile()
	return &p, true
}

// Users lists every registered user, in registration order, without passwords.
func (s *authService) Users() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Session, 0, len(s.state.Users))
	for _, u := range s.state.Users {
		out = append(out, u.Session())
	}
	return out
}

func (s *authService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentUser != nil
}

// FullName is the display name of the logged-in user, "User" when nobody is.
func (s *authService) FullName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentUser.FullName()
}

func copySession(s *models.Session) *models.Session {
	c := *s
	return &c
}
