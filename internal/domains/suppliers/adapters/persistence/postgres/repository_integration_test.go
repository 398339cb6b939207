//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/suppliers/ports"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/migrations"
)

func setupSupplierPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("zenofuel_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func TestRepository_SupplierRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupSupplierPostgresContainer(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewRepository(db)

	supplier, err := domain.NewSupplier("Lanka Petro", "fuel@lanka-petro.lk", "0112", []string{"Diesel", "Petrol"})
	require.NoError(t, err)
	supplier.PasswordHash = "hash"

	saved, err := repo.Create(ctx, supplier)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	found, err := repo.GetByEmail(ctx, "FUEL@lanka-petro.lk")
	require.NoError(t, err)
	require.Equal(t, []string{"Diesel", "Petrol"}, found.SuppliedItems)

	_, err = repo.Create(ctx, supplier)
	require.ErrorIs(t, err, ports.ErrDuplicateEmail)

	_, err = repo.GetByID(ctx, saved.ID+100)
	require.ErrorIs(t, err, ports.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
