package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
)

var (
	errFieldsRequired     = apperr.Validation("all fields are required")
	errCredentialsMissing = apperr.Validation("email and password are required")
	errInvalidRole        = apperr.Validation("invalid role")
	errEmailTaken         = apperr.New(apperr.KindConflict, "email already registered")
	errBadCredentials     = apperr.New(apperr.KindUnauthorized, "invalid credentials")
	errUserNotFound       = apperr.NotFound("user not found")
)

// TokenMaker mints the bearer token handed back on signup and login.
type TokenMaker interface {
	Create(s auth.Session) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenMaker
}

func NewService(repo Repository, tokens TokenMaker) *Service {
	return &Service{repo: repo, tokens: tokens}
}

func (s *Service) Signup(ctx context.Context, in SignupRequest) (*AuthResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Username == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, errFieldsRequired
	}
	if !auth.ValidRole(in.Role) {
		return nil, errInvalidRole
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Persistence("failed to hash password", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExist) {
			return nil, errEmailTaken
		}
		return nil, apperr.Persistence("failed to create user", err)
	}
	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, errCredentialsMissing
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, apperr.Persistence("failed to look up user", err)
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return nil, errBadCredentials
	}
	if in.Role != "" && u.Role != in.Role {
		return nil, apperr.Forbidden("account is not registered as " + in.Role)
	}
	return s.issue(u)
}

// Get returns the profile of id. Callers other than the owner or an admin
// are rejected.
func (s *Service) Get(ctx context.Context, sess auth.Session, id string) (*Profile, error) {
	if !sess.CanActFor(id) {
		return nil, apperr.Forbidden("not allowed to view this user")
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, apperr.Persistence("failed to fetch user", err)
	}
	p := u.Profile()
	return &p, nil
}

func (s *Service) issue(u *User) (*AuthResponse, error) {
	tok, err := s.tokens.Create(auth.Session{UserID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		return nil, apperr.Persistence("failed to issue token", err)
	}
	return &AuthResponse{Success: true, Token: tok, UserID: u.ID, Username: u.Username, Role: u.Role}, nil
}
