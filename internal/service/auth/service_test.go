package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmtrack/internal/repository/kvstore"
	"farmtrack/internal/repository/records"
)

func newService(t *testing.T) (*Service, *records.Store) {
	t.Helper()
	store, err := records.NewStore(context.Background(), kvstore.NewMemoryStore(), nil)
	require.NoError(t, err)
	return NewService(store, nil), store
}

func validInput() RegisterInput {
	return RegisterInput{
		FullName:        "Anna Shikongo",
		FarmName:        "Green Acres",
		Location:        "Otjiwarongo",
		Email:           "anna@example.com",
		Password:        "sunflower",
		ConfirmPassword: "sunflower",
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{"missing farm name", func(in *RegisterInput) { in.FarmName = "" }, ErrMissingFields},
		{"missing password", func(in *RegisterInput) { in.Password = "" }, ErrMissingFields},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"email without domain dot", func(in *RegisterInput) { in.Email = "anna@example" }, ErrInvalidEmail},
		{"mismatched confirmation", func(in *RegisterInput) { in.ConfirmPassword = "different" }, ErrPasswordMismatch},
		{"short password", func(in *RegisterInput) {
			in.Password = "abc"
			in.ConfirmPassword = "abc"
		}, ErrWeakPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newService(t)
			in := validInput()
			tc.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, store := newService(t)

	user, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "sunflower", user.PasswordHash)

	stored, ok := store.FindUserByEmail("anna@example.com")
	require.True(t, ok)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRoundTrip(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "nobody@example.com", "sunflower")
	assert.ErrorIs(t, err, ErrUnknownEmail)

	_, err = svc.Login(ctx, "anna@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
	_, ok := store.CurrentUser()
	assert.False(t, ok)

	user, err := svc.Login(ctx, "anna@example.com", "sunflower")
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", user.FarmName)

	current, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, user.Email, current.Email)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), "", "sunflower")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Login(context.Background(), "anna@example.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSessionSurvivesReload(t *testing.T) {
	backend := kvstore.NewMemoryStore()
	ctx := context.Background()

	store, err := records.NewStore(ctx, backend, nil)
	require.NoError(t, err)
	svc := NewService(store, nil)

	_, err = svc.Register(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.Login(ctx, "anna@example.com", "sunflower")
	require.NoError(t, err)

	reloaded, err := records.NewStore(ctx, backend, nil)
	require.NoError(t, err)

	current, err := NewService(reloaded, nil).Current()
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", current.Email)

	_, err = NewService(reloaded, nil).Login(ctx, "anna@example.com", "sunflower")
	require.NoError(t, err)
}
