package triprepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
)

func TestMemoryRepositoryRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(2)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, loc := range []string{"Tokyo", "Paris", "Oslo"} {
		require.NoError(t, repo.Insert(ctx, itinerary.HistoryRecord{
			ID:        uuid.New(),
			Location:  loc,
			Vibe:      itinerary.VibeNoir,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Oslo", records[0].Location)
	require.Equal(t, "Paris", records[1].Location)

	records, err = repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Oslo", records[0].Location)
}

func TestScanHistoryRecord(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	row := fakeRow{values: []any{id, "Kyoto", "Studio Ghibli", "Rain", 11, 3, "live", "no_credential", created}}

	record, err := scanHistoryRecord(row)
	require.NoError(t, err)
	require.Equal(t, itinerary.HistoryRecord{
		ID:             id,
		Location:       "Kyoto",
		Vibe:           itinerary.VibeStudioGhibli,
		Condition:      "Rain",
		TemperatureC:   11,
		PhotoCount:     3,
		WeatherOutcome: itinerary.OutcomeLive,
		PhotoOutcome:   itinerary.OutcomeNoCredential,
		CreatedAt:      created,
	}, record)

	_, err = scanHistoryRecord(fakeRow{err: errors.New("no rows")})
	require.Error(t, err)
}

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch ptr := d.(type) {
		case *uuid.UUID:
			*ptr = f.values[i].(uuid.UUID)
		case *string:
			*ptr = f.values[i].(string)
		case *int:
			*ptr = f.values[i].(int)
		case *time.Time:
			*ptr = f.values[i].(time.Time)
		}
	}
	return nil
}
