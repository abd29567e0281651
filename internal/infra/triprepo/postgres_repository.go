package triprepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
)

// Schema is the DDL expected by PostgresRepository.
const Schema = `
CREATE TABLE IF NOT EXISTS itineraries (
	id              UUID PRIMARY KEY,
	location        TEXT NOT NULL,
	vibe            TEXT NOT NULL,
	condition       TEXT NOT NULL,
	temperature_c   INTEGER NOT NULL,
	photo_count     INTEGER NOT NULL,
	weather_outcome TEXT NOT NULL,
	photo_outcome   TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS itineraries_created_at_idx ON itineraries (created_at DESC);
`

// PostgresRepository implements itinerary.HistoryRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Migrate creates the itineraries table when missing.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, Schema)
	return err
}

// Insert appends one itinerary record.
func (r *PostgresRepository) Insert(ctx context.Context, record itinerary.HistoryRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO itineraries (id, location, vibe, condition, temperature_c, photo_count, weather_outcome, photo_outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, record.ID, record.Location, string(record.Vibe), record.Condition, record.TemperatureC,
		record.PhotoCount, string(record.WeatherOutcome), string(record.PhotoOutcome), record.CreatedAt)
	return err
}

// Recent lists the newest records first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]itinerary.HistoryRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, location, vibe, condition, temperature_c, photo_count, weather_outcome, photo_outcome, created_at
		FROM itineraries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]itinerary.HistoryRecord, 0, limit)
	for rows.Next() {
		record, err := scanHistoryRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistoryRecord(row rowScanner) (itinerary.HistoryRecord, error) {
	var (
		record         itinerary.HistoryRecord
		vibe           string
		weatherOutcome string
		photoOutcome   string
	)
	if err := row.Scan(
		&record.ID,
		&record.Location,
		&vibe,
		&record.Condition,
		&record.TemperatureC,
		&record.PhotoCount,
		&weatherOutcome,
		&photoOutcome,
		&record.CreatedAt,
	); err != nil {
		return itinerary.HistoryRecord{}, err
	}
	record.Vibe = itinerary.Vibe(vibe)
	record.WeatherOutcome = itinerary.SourceOutcome(weatherOutcome)
	record.PhotoOutcome = itinerary.SourceOutcome(photoOutcome)
	return record, nil
}

var _ itinerary.HistoryRepository = (*PostgresRepository)(nil)
