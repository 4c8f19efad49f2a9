package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/kingdomroll/internal/database"
	"github.com/osse101/kingdomroll/internal/domain"
)

// testPool is shared across the package's integration tests. It is nil
// when the container could not be started, in which case every test
// skips itself.
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		terminate = setupDatabase()
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupDatabase() func() {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic starting postgres container: %v\n", r)
		}
	}()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}

	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect to database: %v\n", err)
		return terminate
	}

	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		pool.Close()
		return terminate
	}

	testPool = pool
	return terminate
}

// requireDB skips the test when no database is available.
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return testPool
}

// createTestUser inserts a fresh user with a unique discord ID.
func createTestUser(ctx context.Context, t *testing.T, username string) *domain.User {
	t.Helper()
	repo := NewUserRepository(testPool)
	user, err := repo.EnsureUser(ctx, "d-"+uuid.NewString()[:8], username)
	require.NoError(t, err)
	return user
}

// createTestPlayer inserts a user and a kingdom for them in a fresh guild.
func createTestPlayer(ctx context.Context, t *testing.T, regionID string) *domain.Player {
	t.Helper()
	user := createTestUser(ctx, t, "ruler")
	repo := NewKingdomRepository(testPool)

	playerID, err := repo.CreatePlayer(ctx, domain.Player{
		UserID:    user.InternalID,
		GuildID:   "g-" + uuid.NewString()[:8],
		Race:      "Human",
		RegionID:  regionID,
		Resources: domain.Resources{"gold": 100, "food": 50, "wood": 50, "stone": 20},
		Units:     map[string]int{},
		Stamina:   domain.StaminaMax,
		BaseLevel: 1,
	})
	require.NoError(t, err)

	player, err := repo.GetPlayerByID(ctx, playerID)
	require.NoError(t, err)
	return player
}
