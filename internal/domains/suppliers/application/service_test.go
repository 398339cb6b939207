package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/adapters/memory"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/application/types"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type countingDirectory struct {
	calls int
	known map[string]bool
}

func (d *countingDirectory) Exists(_ context.Context, email string) (bool, error) {
	d.calls++
	return d.known[email], nil
}

func newTestService(t *testing.T, opts ...Option) (*Service, *auth.Manager) {
	t.Helper()
	tokens, err := auth.NewManager(testSecret, time.Hour)
	require.NoError(t, err)
	opts = append([]Option{WithBcryptCost(bcrypt.MinCost)}, opts...)
	return NewService(memory.NewRepository(), tokens, opts...), tokens
}

func registerLankaPetro(t *testing.T, svc *Service) {
	t.Helper()
	_, err := svc.Register(context.Background(), types.RegisterSupplierInput{
		Name:          "Lanka Petro",
		Email:         "Fuel@Lanka-Petro.lk",
		Phone:         "0112345678",
		SuppliedItems: []string{"Diesel", "Petrol"},
		Password:      "s3cret-pass",
	})
	require.NoError(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newTestService(t)
	registerLankaPetro(t, svc)

	supplier, err := svc.GetByEmail(ctx, "fuel@lanka-petro.lk")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", supplier.PasswordHash)

	result, err := svc.Login(ctx, types.LoginInput{Email: " FUEL@lanka-petro.lk", Password: "s3cret-pass"})
	require.NoError(t, err)
	identity, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, auth.RoleSupplier, identity.Role)
	require.Equal(t, "fuel@lanka-petro.lk", identity.Email)
	require.Equal(t, supplier.ID, identity.Subject)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	registerLankaPetro(t, svc)

	_, err := svc.Login(ctx, types.LoginInput{Email: "fuel@lanka-petro.lk", Password: "wrong-pass"})
	require.ErrorIs(t, err, ErrAuthentication)
	_, err = svc.Login(ctx, types.LoginInput{Email: "missing@lanka-petro.lk", Password: "s3cret-pass"})
	require.ErrorIs(t, err, ErrAuthentication)
	_, err = svc.Login(ctx, types.LoginInput{})
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, types.RegisterSupplierInput{Name: "X", Email: "bad", Password: "long-enough"})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Register(ctx, types.RegisterSupplierInput{Name: "X", Email: "x@y.lk", Password: "short"})
	require.ErrorIs(t, err, ErrInvalidInput)

	registerLankaPetro(t, svc)
	_, err = svc.Register(ctx, types.RegisterSupplierInput{Name: "Dup", Email: "fuel@lanka-petro.lk", Password: "long-enough"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	registerLankaPetro(t, svc)

	known, err := svc.Exists(ctx, "FUEL@lanka-petro.lk ")
	require.NoError(t, err)
	require.True(t, known)

	known, err = svc.Exists(ctx, "nobody@lanka-petro.lk")
	require.NoError(t, err)
	require.False(t, known)

	known, err = svc.Exists(ctx, "  ")
	require.NoError(t, err)
	require.False(t, known)
}

func TestExists_UsesInjectedDirectory(t *testing.T) {
	directory := &countingDirectory{known: map[string]bool{"cached@x.lk": true}}
	svc, _ := newTestService(t, WithDirectory(directory))

	known, err := svc.Exists(context.Background(), "Cached@X.lk")
	require.NoError(t, err)
	require.True(t, known)
	require.Equal(t, 1, directory.calls)
}

func TestMapError_PassesThroughUnknown(t *testing.T) {
	boom := errors.New("boom")
	require.Same(t, boom, mapError(boom))
	require.NoError(t, mapError(nil))
}
