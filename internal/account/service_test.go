package account

import (
	"context"
	"errors"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(), nil)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	acct, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Username: "ann", Password: "p1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if acct.ID == "" {
		t.Fatal("expected generated account id")
	}
	if len(acct.PasswordHash) == 0 {
		t.Fatal("expected non-empty password hash")
	}
	if string(acct.PasswordHash) == "p1" {
		t.Fatal("password hash must not equal the plaintext")
	}

	authed, err := svc.Authenticate(ctx, "ann", "p1")
	if err != nil {
		t.Fatalf("authenticate by username: %v", err)
	}
	if authed.ID != acct.ID {
		t.Fatalf("expected account %s, got %s", acct.ID, authed.ID)
	}

	if _, err := svc.Authenticate(ctx, "a@x.com", "p1"); err != nil {
		t.Fatalf("authenticate by email: %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	inputs := []RegisterInput{
		{Email: "a@x.com", Username: "ann", Password: "p1"},
		{Name: "Ann", Username: "ann", Password: "p1"},
		{Name: "Ann", Email: "a@x.com", Password: "p1"},
		{Name: "Ann", Email: "a@x.com", Username: "ann"},
	}
	for _, in := range inputs {
		if _, err := svc.Register(ctx, in); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %+v, got %v", in, err)
		}
	}
}

func TestRegisterConflicts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Username: "ann", Password: "p1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Same email, different username.
	if _, err := svc.Register(ctx, RegisterInput{Name: "Bob", Email: "a@x.com", Username: "bob", Password: "p2"}); !errors.Is(err, ErrEmailOrUsernameTaken) {
		t.Fatalf("expected ErrEmailOrUsernameTaken for email reuse, got %v", err)
	}
	// Same username, different email.
	if _, err := svc.Register(ctx, RegisterInput{Name: "Bob", Email: "b@x.com", Username: "ann", Password: "p2"}); !errors.Is(err, ErrEmailOrUsernameTaken) {
		t.Fatalf("expected ErrEmailOrUsernameTaken for username reuse, got %v", err)
	}
	// Repeated attempts keep failing.
	if _, err := svc.Register(ctx, RegisterInput{Name: "Bob", Email: "a@x.com", Username: "bob", Password: "p2"}); !errors.Is(err, ErrEmailOrUsernameTaken) {
		t.Fatalf("expected ErrEmailOrUsernameTaken on retry, got %v", err)
	}
}

func TestAuthenticateFailuresAreGeneric(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Username: "ann", Password: "p1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := svc.Authenticate(ctx, "nobody", "p1")
	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknownErr)
	}

	_, wrongErr := svc.Authenticate(ctx, "ann", "wrong")
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}

	// Unknown user and wrong password must be indistinguishable.
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestGetByID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	acct, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Username: "ann", Password: "p1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	found, err := svc.GetByID(ctx, acct.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if found.Username != "ann" {
		t.Fatalf("expected username ann, got %s", found.Username)
	}

	if _, err := svc.GetByID(ctx, "4dd7f9b3-32c9-4b43-b9a5-000000000000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileExcludesHash(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	acct, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Username: "ann", Password: "p1", Phone: "555-0100"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	profile := acct.Profile()
	if profile.Name != "Ann" || profile.Email != "a@x.com" || profile.Username != "ann" || profile.Phone != "555-0100" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestConcurrentRegistrationSingleWinner(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	const attempts = 8
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			_, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Username: "ann", Password: "p1"})
			errs <- err
		}()
	}

	var ok, conflict int
	for i := 0; i < attempts; i++ {
		switch err := <-errs; {
		case err == nil:
			ok++
		case errors.Is(err, ErrEmailOrUsernameTaken):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", ok)
	}
	if conflict != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflict)
	}
}
