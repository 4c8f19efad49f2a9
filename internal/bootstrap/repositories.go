package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/kingdomroll/internal/database/postgres"
	"github.com/osse101/kingdomroll/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User      repository.User
	Roll      repository.Roll
	Giveaway  repository.Giveaway
	Kingdom   repository.Kingdom
	Army      repository.Army
	Encounter repository.Encounter
	Task      repository.Task
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      postgres.NewUserRepository(dbPool),
		Roll:      postgres.NewRollRepository(dbPool),
		Giveaway:  postgres.NewGiveawayRepository(dbPool),
		Kingdom:   postgres.NewKingdomRepository(dbPool),
		Army:      postgres.NewArmyRepository(dbPool),
		Encounter: postgres.NewEncounterRepository(dbPool),
		Task:      postgres.NewTaskRepository(dbPool),
	}
}
