package usecase

import (
	"context"
	"errors"
	"testing"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/user"
	"pharmaclear-api/pkg/log"
	"pharmaclear-api/pkg/scope"
)

type fakeRepo struct {
	byEmail map[string]model.User
	byID    map[string]model.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: make(map[string]model.User),
		byID:    make(map[string]model.User),
	}
}

func (f *fakeRepo) Create(ctx context.Context, opts user.CreateOptions) (model.User, error) {
	if _, ok := f.byEmail[opts.Email]; ok {
		return model.User{}, user.ErrEmailExists
	}
	u := model.User{
		ID:             opts.ID,
		Email:          opts.Email,
		HashedPassword: opts.HashedPassword,
		FullName:       opts.FullName,
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestUsecase(repo user.Repository) user.UseCase {
	return New(log.NewNoop(), repo, scope.NewManager("test-secret", "test-issuer"))
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()

	created, err := uc.Register(ctx, user.RegisterInput{
		Email:    "jane@example.com",
		Password: "correct-horse",
		FullName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.ID == "" {
		t.Error("created user must have an id")
	}
	if created.HashedPassword == "correct-horse" {
		t.Error("password must be stored hashed")
	}

	out, err := uc.Login(ctx, user.LoginInput{Email: "jane@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.AccessToken == "" || out.TokenType != "bearer" {
		t.Errorf("login output = %+v", out)
	}

	// The issued token must carry the user's identity.
	payload, err := scope.NewManager("test-secret", "test-issuer").Verify(out.AccessToken)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	if payload.UserID != created.ID {
		t.Errorf("token user id = %q, want %q", payload.UserID, created.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()

	if _, err := uc.Register(ctx, user.RegisterInput{Email: "jane@example.com", Password: "pw-12345678"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := uc.Register(ctx, user.RegisterInput{Email: "jane@example.com", Password: "pw-12345678"})
	if !errors.Is(err, user.ErrEmailExists) {
		t.Errorf("duplicate Register error = %v, want ErrEmailExists", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()

	if _, err := uc.Register(ctx, user.RegisterInput{Email: "jane@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name  string
		input user.LoginInput
	}{
		{"wrong password", user.LoginInput{Email: "jane@example.com", Password: "battery-staple"}},
		{"unknown email", user.LoginInput{Email: "john@example.com", Password: "correct-horse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Login(ctx, tt.input); !errors.Is(err, user.ErrInvalidCredentials) {
				t.Errorf("Login error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestMe(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUsecase(repo)
	ctx := context.Background()

	created, err := uc.Register(ctx, user.RegisterInput{Email: "jane@example.com", Password: "pw-12345678"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := uc.Me(ctx, model.Scope{UserID: created.ID})
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if got.Email != "jane@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	if _, err := uc.Me(ctx, model.Scope{UserID: "missing"}); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("Me for unknown user error = %v, want ErrUserNotFound", err)
	}
}
