package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	models "courier/internal/user/model"
	"courier/pkg/logger"
)

var (
	testDB      *bun.DB
	pgContainer *postgres.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbName := "courier"
	dbUser := "courier"
	dbPassword := "password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	pgContainer = postgresContainer

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if _, err := testDB.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create users table: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanupUsers(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE users RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func Test_CreateUser(t *testing.T) {
	cleanupUsers(t)

	user := models.User{Username: "user1", Name: "User One", Email: "user1@example.com"}
	repo := NewUserRepository(testDB, logger.Logger{})
	err := repo.CreateUser(context.Background(), &user)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func Test_GetUserByID(t *testing.T) {
	cleanupUsers(t)

	user := models.User{Username: "user1", Name: "User One", Email: "user1@example.com"}
	repo := NewUserRepository(testDB, logger.Logger{})

	err := repo.CreateUser(context.Background(), &user)
	require.NoError(t, err)

	got, err := repo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, user.Email, got.Email)
}

func Test_GetUserByUsername(t *testing.T) {
	cleanupUsers(t)

	user := models.User{Username: "user1", Name: "User One", Email: "user1@example.com"}
	repo := NewUserRepository(testDB, logger.Logger{})

	err := repo.CreateUser(context.Background(), &user)
	require.NoError(t, err)

	got, err := repo.GetUserByUsername(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func Test_UpdateUserDisplayName(t *testing.T) {
	cleanupUsers(t)

	user := models.User{Username: "user1", Name: "User One", Email: "user1@example.com"}
	repo := NewUserRepository(testDB, logger.Logger{})

	err := repo.CreateUser(context.Background(), &user)
	require.NoError(t, err)

	err = repo.UpdateUserDisplayName(context.Background(), user.ID, "New Name")
	require.NoError(t, err)

	got, err := repo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}

func Test_UsernameExists(t *testing.T) {
	cleanupUsers(t)

	user := models.User{Username: "user1", Name: "User One", Email: "user1@example.com"}
	repo := NewUserRepository(testDB, logger.Logger{})

	err := repo.CreateUser(context.Background(), &user)
	require.NoError(t, err)

	exists, err := repo.UsernameExists(context.Background(), "user1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}
