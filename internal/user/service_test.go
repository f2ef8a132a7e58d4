package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
)

type stubRepo struct {
	byID map[string]*User
}

func newStubRepo() *stubRepo { return &stubRepo{byID: map[string]*User{}} }

func (s *stubRepo) Create(ctx context.Context, u *User) error {
	for _, v := range s.byID {
		if v.Email == u.Email {
			return ErrAlreadyExist
		}
	}
	cp := *u
	s.byID[u.ID] = &cp
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, v := range s.byID {
		if v.Email == email {
			cp := *v
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

type fakeTokens struct{ last auth.Session }

func (f *fakeTokens) Create(s auth.Session) (string, error) {
	f.last = s
	return "tok-" + s.UserID, nil
}

func TestSignup_ThenLogin(t *testing.T) {
	repo := newStubRepo()
	tokens := &fakeTokens{}
	svc := NewService(repo, tokens)
	ctx := context.Background()

	out, err := svc.Signup(ctx, SignupRequest{Username: "asha", Email: " Asha@Example.com ", Password: "pw123456", Role: "user"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "tok-"+out.UserID, out.Token)
	assert.NotEqual(t, "pw123456", repo.byID[out.UserID].PasswordHash)

	in, err := svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, out.UserID, in.UserID)
	assert.Equal(t, "user", tokens.last.Role)
}

func TestSignup_Validation(t *testing.T) {
	svc := NewService(newStubRepo(), &fakeTokens{})
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{Username: "a", Email: "a@x.io", Password: "p"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Signup(ctx, SignupRequest{Username: "a", Email: "a@x.io", Password: "p", Role: "chef"})
	assert.ErrorIs(t, err, errInvalidRole)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := NewService(newStubRepo(), &fakeTokens{})
	ctx := context.Background()
	_, err := svc.Signup(ctx, SignupRequest{Username: "a", Email: "a@x.io", Password: "p", Role: "user"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupRequest{Username: "b", Email: "a@x.io", Password: "q", Role: "user"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin_Failures(t *testing.T) {
	svc := NewService(newStubRepo(), &fakeTokens{})
	ctx := context.Background()
	_, err := svc.Signup(ctx, SignupRequest{Username: "a", Email: "a@x.io", Password: "right", Role: "user"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "a@x.io", Password: "wrong"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@x.io", Password: "right"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Login(ctx, LoginRequest{Email: "a@x.io", Password: "right", Role: "admin"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.Login(ctx, LoginRequest{Email: "", Password: ""})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGet_OwnerOnly(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &fakeTokens{})
	ctx := context.Background()
	out, err := svc.Signup(ctx, SignupRequest{Username: "a", Email: "a@x.io", Password: "p", Role: "user"})
	require.NoError(t, err)

	p, err := svc.Get(ctx, auth.Session{UserID: out.UserID, Role: "user"}, out.UserID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", p.Email)

	_, err = svc.Get(ctx, auth.Session{UserID: "other", Role: "user"}, out.UserID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.Get(ctx, auth.Session{UserID: "boss", Role: "admin"}, "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
