package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/repository"
)

type kingdomRepository struct {
	db *pgxpool.Pool
}

// NewKingdomRepository creates a new PostgreSQL kingdom repository
func NewKingdomRepository(db *pgxpool.Pool) repository.Kingdom {
	return &kingdomRepository{db: db}
}

const playerColumns = `player_id, user_id, guild_id, race, region_id, resources, units,
	stamina, stamina_updated_at, base_level, victories, last_collected_at, last_scout_at, created_at`

func (r *kingdomRepository) CreatePlayer(ctx context.Context, player domain.Player) (string, error) {
	userID, err := parseUUID(player.UserID)
	if err != nil {
		return "", err
	}

	resources, err := json.Marshal(player.Resources)
	if err != nil {
		return "", fmt.Errorf("failed to marshal resources: %w", err)
	}
	units, err := json.Marshal(player.Units)
	if err != nil {
		return "", fmt.Errorf("failed to marshal units: %w", err)
	}

	query := `
		INSERT INTO players (user_id, guild_id, race, region_id, resources, units,
			stamina, stamina_updated_at, base_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8)
		RETURNING player_id`

	var playerID string
	err = r.db.QueryRow(ctx, query,
		userID, player.GuildID, player.Race, player.RegionID,
		resources, units, player.Stamina, player.BaseLevel,
	).Scan(&playerID)
	if err != nil {
		if isUniqueViolation(err, ConstraintPlayersRegionKey) {
			return "", domain.ErrRegionTaken
		}
		if isUniqueViolation(err, ConstraintPlayersUserKey) {
			return "", domain.ErrPlayerExists
		}
		return "", fmt.Errorf("failed to create player: %w", err)
	}
	return playerID, nil
}

func (r *kingdomRepository) GetPlayer(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	id, err := parseUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE user_id = $1 AND guild_id = $2`

	player, err := scanPlayer(r.db.QueryRow(ctx, query, id, guildID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (r *kingdomRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parseUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`

	player, err := scanPlayer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}
	return player, nil
}

func (r *kingdomRepository) UpdatePlayer(ctx context.Context, player domain.Player) error {
	id, err := parseUUID(player.ID)
	if err != nil {
		return err
	}

	resources, err := json.Marshal(player.Resources)
	if err != nil {
		return fmt.Errorf("failed to marshal resources: %w", err)
	}
	units, err := json.Marshal(player.Units)
	if err != nil {
		return fmt.Errorf("failed to marshal units: %w", err)
	}

	query := `
		UPDATE players
		SET resources = $2, units = $3, stamina = $4, stamina_updated_at = $5,
		    base_level = $6, victories = $7, last_collected_at = $8, last_scout_at = $9
		WHERE player_id = $1`

	tag, err := r.db.Exec(ctx, query, id,
		resources, units, player.Stamina, player.StaminaUpdatedAt,
		player.BaseLevel, player.Victories,
		toTimestamptz(player.LastCollectedAt), toTimestamptz(player.LastScoutAt))
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// UpgradeBuilding re-checks affordability inside the transaction with the row
// locked, so two concurrent upgrades cannot both spend the same resources.
func (r *kingdomRepository) UpgradeBuilding(ctx context.Context, playerID, buildingName string, cost domain.Resources, newLevel int) error {
	id, err := parseUUID(playerID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var resourcesJSON []byte
	err = tx.QueryRow(ctx,
		`SELECT resources FROM players WHERE player_id = $1 FOR UPDATE`, id).Scan(&resourcesJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to lock player row: %w", err)
	}

	var resources domain.Resources
	if err := json.Unmarshal(resourcesJSON, &resources); err != nil {
		return fmt.Errorf("failed to unmarshal resources: %w", err)
	}

	if !resources.CanAfford(cost) {
		return domain.ErrInsufficientFunds
	}
	resources.Subtract(cost)

	updated, err := json.Marshal(resources)
	if err != nil {
		return fmt.Errorf("failed to marshal resources: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE players SET resources = $2 WHERE player_id = $1`, id, updated); err != nil {
		return fmt.Errorf("failed to deduct resources: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE player_buildings
		SET level = $3
		WHERE player_id = $1 AND building_name = $2`, id, buildingName, newLevel)
	if err != nil {
		return fmt.Errorf("failed to upgrade building: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBuildingNotFound
	}

	return tx.Commit(ctx)
}

func (r *kingdomRepository) GetPlayerBuildings(ctx context.Context, playerID string) ([]domain.PlayerBuilding, error) {
	id, err := parseUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT player_id, building_name, level
		FROM player_buildings
		WHERE player_id = $1
		ORDER BY building_name`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player buildings: %w", err)
	}
	defer rows.Close()

	var buildings []domain.PlayerBuilding
	for rows.Next() {
		var b domain.PlayerBuilding
		if err := rows.Scan(&b.PlayerID, &b.BuildingName, &b.Level); err != nil {
			return nil, fmt.Errorf("failed to scan player building: %w", err)
		}
		buildings = append(buildings, b)
	}
	return buildings, rows.Err()
}

func (r *kingdomRepository) AddPlayerBuilding(ctx context.Context, playerID, buildingName string) error {
	id, err := parseUUID(playerID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO player_buildings (player_id, building_name, level)
		VALUES ($1, $2, 1)
		ON CONFLICT (player_id, building_name) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, id, buildingName); err != nil {
		return fmt.Errorf("failed to add player building: %w", err)
	}
	return nil
}

func (r *kingdomRepository) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, description, max_level, production, level_costs
		FROM buildings
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	defer rows.Close()

	var buildings []domain.Building
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, *b)
	}
	return buildings, rows.Err()
}

func (r *kingdomRepository) GetBuilding(ctx context.Context, name string) (*domain.Building, error) {
	row := r.db.QueryRow(ctx, `
		SELECT name, description, max_level, production, level_costs
		FROM buildings
		WHERE name = $1`, name)

	b, err := scanBuilding(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}
	return b, nil
}

func (r *kingdomRepository) ListRaces(ctx context.Context) ([]domain.Race, error) {
	rows, err := r.db.Query(ctx, `SELECT name, description FROM races ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list races: %w", err)
	}
	defer rows.Close()

	var races []domain.Race
	for rows.Next() {
		var race domain.Race
		if err := rows.Scan(&race.Name, &race.Description); err != nil {
			return nil, fmt.Errorf("failed to scan race: %w", err)
		}
		races = append(races, race)
	}
	return races, rows.Err()
}

func (r *kingdomRepository) ListRegions(ctx context.Context, guildID string) ([]domain.Region, map[string]bool, error) {
	rows, err := r.db.Query(ctx, `
		SELECT reg.region_id, reg.name, reg.description, (p.player_id IS NOT NULL) AS taken
		FROM regions reg
		LEFT JOIN players p ON p.region_id = reg.region_id AND p.guild_id = $1
		ORDER BY reg.name`, guildID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()

	var regions []domain.Region
	taken := make(map[string]bool)
	for rows.Next() {
		var (
			region  domain.Region
			claimed bool
		)
		if err := rows.Scan(&region.ID, &region.Name, &region.Description, &claimed); err != nil {
			return nil, nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, region)
		taken[region.ID] = claimed
	}
	return regions, taken, rows.Err()
}

func (r *kingdomRepository) Leaderboard(ctx context.Context, guildID string, limit int) ([]repository.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.username, p.race, reg.name, p.victories, p.units
		FROM players p
		JOIN users u ON u.user_id = p.user_id
		JOIN regions reg ON reg.region_id = p.region_id
		WHERE p.guild_id = $1
		ORDER BY p.victories DESC, u.username ASC
		LIMIT $2`, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []repository.LeaderboardEntry
	for rows.Next() {
		var (
			entry     repository.LeaderboardEntry
			unitsJSON []byte
		)
		if err := rows.Scan(&entry.Username, &entry.Race, &entry.RegionName, &entry.Victories, &unitsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}

		var units map[string]int
		if err := json.Unmarshal(unitsJSON, &units); err != nil {
			return nil, fmt.Errorf("failed to unmarshal units: %w", err)
		}
		for _, count := range units {
			entry.TroopCount += count
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		player        domain.Player
		resourcesJSON []byte
		unitsJSON     []byte
	)

	err := row.Scan(
		&player.ID, &player.UserID, &player.GuildID, &player.Race, &player.RegionID,
		&resourcesJSON, &unitsJSON,
		&player.Stamina, &player.StaminaUpdatedAt, &player.BaseLevel, &player.Victories,
		&player.LastCollectedAt, &player.LastScoutAt, &player.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resourcesJSON, &player.Resources); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resources: %w", err)
	}
	if err := json.Unmarshal(unitsJSON, &player.Units); err != nil {
		return nil, fmt.Errorf("failed to unmarshal units: %w", err)
	}
	if player.Resources == nil {
		player.Resources = domain.Resources{}
	}
	if player.Units == nil {
		player.Units = map[string]int{}
	}
	return &player, nil
}

func scanBuilding(row pgx.Row) (*domain.Building, error) {
	var (
		b              domain.Building
		productionJSON []byte
		costsJSON      []byte
	)
	if err := row.Scan(&b.Name, &b.Description, &b.MaxLevel, &productionJSON, &costsJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(productionJSON, &b.Production); err != nil {
		return nil, fmt.Errorf("failed to unmarshal production: %w", err)
	}
	if err := json.Unmarshal(costsJSON, &b.LevelCosts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level costs: %w", err)
	}
	return &b, nil
}
