package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_history/internal/feature/bars/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&BarModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func testBar(symbol string, tm time.Time) entity.Bar {
	return entity.Bar{
		Symbol: symbol,
		Time:   tm,
		Open:   100.0,
		High:   110.0,
		Low:    90.0,
		Close:  105.0,
		Volume: 1000,
	}
}

func TestNewBarRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewBarRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestBarMySQL_UpsertBatch(t *testing.T) {
	t.Parallel()

	baseTime := time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		bars         []entity.Bar
		wantErr      bool
		validateFunc func(t *testing.T, db *gorm.DB)
	}{
		{
			name: "success: insert single bar",
			bars: []entity.Bar{testBar("AAPL", baseTime)},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&BarModel{}).Count(&count)
				assert.Equal(t, int64(1), count, "bar count does not match")
			},
		},
		{
			name: "success: insert multiple bars",
			bars: []entity.Bar{
				testBar("AAPL", baseTime),
				testBar("AAPL", baseTime.Add(time.Hour)),
				testBar("MSFT", baseTime),
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&BarModel{}).Count(&count)
				assert.Equal(t, int64(3), count, "bar count does not match")
			},
		},
		{
			name: "success: empty batch is a no-op",
			bars: []entity.Bar{},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				db.Model(&BarModel{}).Count(&count)
				assert.Equal(t, int64(0), count)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewBarRepository(db)

			err := repo.UpsertBatch(context.Background(), tt.bars)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, db)
			}
		})
	}
}

// TestBarMySQL_UpsertBatch_Idempotent verifies the idempotence law:
// submitting the same batch twice leaves the store in the same state as
// submitting it once.
func TestBarMySQL_UpsertBatch_Idempotent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBarRepository(db)
	baseTime := time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC)

	batch := []entity.Bar{
		testBar("AAPL", baseTime),
		testBar("AAPL", baseTime.Add(time.Hour)),
	}

	require.NoError(t, repo.UpsertBatch(context.Background(), batch))
	require.NoError(t, repo.UpsertBatch(context.Background(), batch), "resubmitting an identical batch must not error")

	var count int64
	db.Model(&BarModel{}).Count(&count)
	assert.Equal(t, int64(2), count, "resubmitting must not create duplicates")
}

// TestBarMySQL_UpsertBatch_OverwritesOnConflict verifies that a later batch
// for the same (symbol, time) key overwrites every price column.
func TestBarMySQL_UpsertBatch_OverwritesOnConflict(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBarRepository(db)
	tm := time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertBatch(context.Background(), []entity.Bar{testBar("AAPL", tm)}))

	updated := entity.Bar{
		Symbol: "AAPL", Time: tm,
		Open: 101.0, High: 112.0, Low: 99.0, Close: 111.0, Volume: 2500,
	}
	require.NoError(t, repo.UpsertBatch(context.Background(), []entity.Bar{updated}))

	var rows []BarModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1, "conflict must update, not insert")

	assert.Equal(t, 101.0, rows[0].Open)
	assert.Equal(t, 112.0, rows[0].High)
	assert.Equal(t, 99.0, rows[0].Low)
	assert.Equal(t, 111.0, rows[0].Close)
	assert.Equal(t, int64(2500), rows[0].Volume)
}

func TestBarMySQL_Find(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewBarRepository(db)
	baseTime := time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC)

	seed := []entity.Bar{
		testBar("AAPL", baseTime),
		testBar("AAPL", baseTime.Add(time.Hour)),
		testBar("AAPL", baseTime.Add(2*time.Hour)),
		testBar("MSFT", baseTime),
	}
	require.NoError(t, repo.UpsertBatch(context.Background(), seed))

	bars, err := repo.Find(context.Background(), "AAPL", 2)
	require.NoError(t, err)
	require.Len(t, bars, 2)

	// Newest first, only the requested symbol
	assert.Equal(t, "AAPL", bars[0].Symbol)
	assert.True(t, bars[0].Time.After(bars[1].Time), "bars must be ordered newest first")
	assert.Equal(t, baseTime.Add(2*time.Hour).Unix(), bars[0].Time.Unix())
}

func TestBarMySQL_ExistsInRange(t *testing.T) {
	t.Parallel()

	monthStart := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	tests := []struct {
		name     string
		seed     []entity.Bar
		symbol   string
		expected bool
	}{
		{
			name:     "record inside the month is covered",
			seed:     []entity.Bar{testBar("AAPL", monthStart.Add(24 * time.Hour))},
			symbol:   "AAPL",
			expected: true,
		},
		{
			name:     "record at the month start boundary is covered",
			seed:     []entity.Bar{testBar("AAPL", monthStart)},
			symbol:   "AAPL",
			expected: true,
		},
		{
			name:     "record at the next month start is not covered",
			seed:     []entity.Bar{testBar("AAPL", monthEnd)},
			symbol:   "AAPL",
			expected: false,
		},
		{
			name:     "other symbol does not count",
			seed:     []entity.Bar{testBar("MSFT", monthStart.Add(24 * time.Hour))},
			symbol:   "AAPL",
			expected: false,
		},
		{
			name:     "empty store is not covered",
			seed:     nil,
			symbol:   "AAPL",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewBarRepository(db)

			if len(tt.seed) > 0 {
				require.NoError(t, repo.UpsertBatch(context.Background(), tt.seed))
			}

			covered, err := repo.ExistsInRange(context.Background(), tt.symbol, monthStart, monthEnd)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, covered)
		})
	}
}
