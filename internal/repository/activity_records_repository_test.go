package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/carbontrack/internal/error_values"
	"github.com/limbo/carbontrack/internal/repository"
	"github.com/limbo/carbontrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var recordColumns = []string{
	"id", "user_id", "record_date", "travel_mode", "travel_fuel_type", "travel_distance_km",
	"electricity_units", "meals_veg", "meals_non_veg", "shopping_amount", "waste_mass_kg",
	"created_at", "updated_at",
}

func sampleRecord() *entity.ActivityRecord {
	return &entity.ActivityRecord{
		UserID:      "user-1",
		Date:        "2025-03-14",
		Travel:      entity.Travel{Mode: "car", FuelType: "petrol", DistanceKm: 10},
		Electricity: entity.Electricity{Units: 5},
		Meals:       entity.Meals{VegCount: 2, NonVegCount: 1},
		Shopping:    entity.Shopping{AmountSpent: 100},
		Waste:       entity.Waste{MassKg: 1},
	}
}

func addRecordRow(rows *pgxmock.Rows, id int64, r *entity.ActivityRecord, stamp time.Time) *pgxmock.Rows {
	date, _ := time.Parse(entity.DateLayout, r.Date)
	return rows.AddRow(
		id, r.UserID, date,
		r.Travel.Mode, r.Travel.FuelType, r.Travel.DistanceKm,
		r.Electricity.Units,
		r.Meals.VegCount, r.Meals.NonVegCount,
		r.Shopping.AmountSpent,
		r.Waste.MassKg,
		stamp, stamp,
	)
}

func TestUpsertRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivityRecordsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO activity_records (user_id, record_date, travel_mode`)
	stamp := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	rec := sampleRecord()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	args := []any{rec.UserID, date, "car", "petrol", 10.0, 5.0, 2, 1, 100.0, 1.0}
	testCases := []struct {
		Desc         string
		Record       *entity.ActivityRecord
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:   "inserted",
			Record: rec,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(args...).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), stamp, stamp))
			},
		},
		{
			Desc:   "db error",
			Record: rec,
			Error:  errors.New("upserting activity record error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(args...).
					WillReturnError(errors.New("db error"))
			},
		},
		{
			Desc:         "non canonical date",
			Record:       &entity.ActivityRecord{UserID: "user-1", Date: "14.03.2025"},
			Error:        errorvalues.ErrInvalidDate,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "nil record",
			Record:       nil,
			Error:        errors.New("record is nil"),
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			stored, err := repo.Upsert(ctx, tc.Record)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), stored.ID)
			assert.Equal(t, stamp, stored.CreatedAt)
			assert.Equal(t, tc.Record.Travel, stored.Travel)
			assert.Zero(t, tc.Record.ID, "input record must stay untouched")
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecordByUserAndDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivityRecordsRepoWithConn(mock)
	query := regexp.QuoteMeta(`FROM activity_records WHERE user_id = $1 AND record_date = $2;`)
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		rec := sampleRecord()
		mock.ExpectQuery(query).
			WithArgs(rec.UserID, date).
			WillReturnRows(addRecordRow(pgxmock.NewRows(recordColumns), 3, rec, stamp))
		result, err := repo.GetByUserAndDate(ctx, rec.UserID, date)
		require.NoError(t, err)
		rec.ID = 3
		rec.CreatedAt, rec.UpdatedAt = stamp, stamp
		assert.Equal(t, rec, result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user-1", date).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByUserAndDate(ctx, "user-1", date)
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user-1", date).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDate(ctx, "user-1", date)
		assert.EqualError(t, err, "getting activity record error: db error")
	})
}

func TestGetRecordsByUserAndDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivityRecordsRepoWithConn(mock)
	query := regexp.QuoteMeta(`FROM activity_records WHERE user_id = $1 AND record_date >= $2 AND record_date < $3 ORDER BY record_date ASC;`)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	stamp := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	t.Run("listed", func(t *testing.T) {
		first := sampleRecord()
		second := sampleRecord()
		second.Date = "2025-03-20"
		rows := pgxmock.NewRows(recordColumns)
		addRecordRow(rows, 1, first, stamp)
		addRecordRow(rows, 2, second, stamp)
		mock.ExpectQuery(query).WithArgs("user-1", from, to).WillReturnRows(rows)
		result, err := repo.GetByUserAndDateRange(ctx, "user-1", from, to)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "2025-03-14", result[0].Date)
		assert.Equal(t, "2025-03-20", result[1].Date)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("user-1", from, to).WillReturnRows(pgxmock.NewRows(recordColumns))
		result, err := repo.GetByUserAndDateRange(ctx, "user-1", from, to)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("user-1", from, to).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDateRange(ctx, "user-1", from, to)
		assert.EqualError(t, err, "getting activity records for period error: db error")
	})
	t.Run("rows error", func(t *testing.T) {
		rows := addRecordRow(pgxmock.NewRows(recordColumns), 1, sampleRecord(), stamp).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery(query).WithArgs("user-1", from, to).WillReturnRows(rows)
		_, err := repo.GetByUserAndDateRange(ctx, "user-1", from, to)
		assert.Error(t, err)
	})
}

type testPGConfig struct {
	connStr string
}

func (c *testPGConfig) ConnString() string {
	return c.connStr
}

func TestActivityRecordsIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	cfg := setupTestDB(t)
	repo := repository.NewActivityRecordsRepo(cfg)
	users := repository.NewUsersRepo(cfg)
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		u := &entity.User{Name: "ann", PasswordHash: "hash"}
		require.NoError(t, users.Create(ctx, u))
		err := users.Create(ctx, &entity.User{Name: "ann", PasswordHash: "other"})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
		found, err := users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "ann", found.Name)
	})

	rec := sampleRecord()
	t.Run("insert then replace", func(t *testing.T) {
		first, err := repo.Upsert(ctx, rec)
		require.NoError(t, err)
		edited := *rec
		edited.Travel.DistanceKm = 25
		second, err := repo.Upsert(ctx, &edited)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)

		date, _ := time.Parse(entity.DateLayout, rec.Date)
		got, err := repo.GetByUserAndDate(ctx, rec.UserID, date)
		require.NoError(t, err)
		assert.Equal(t, 25.0, got.Travel.DistanceKm)
		assert.Equal(t, rec.Date, got.Date)
	})
	t.Run("month range", func(t *testing.T) {
		for _, d := range []string{"2025-02-28", "2025-03-01", "2025-03-31", "2025-04-01"} {
			r := sampleRecord()
			r.Date = d
			_, err := repo.Upsert(ctx, r)
			require.NoError(t, err)
		}
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		result, err := repo.GetByUserAndDateRange(ctx, "user-1", from, from.AddDate(0, 1, 0))
		require.NoError(t, err)
		dates := make([]string, 0, len(result))
		for _, r := range result {
			dates = append(dates, r.Date)
		}
		assert.Equal(t, []string{"2025-03-01", "2025-03-14", "2025-03-31"}, dates)
	})
	t.Run("other user sees nothing", func(t *testing.T) {
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		result, err := repo.GetByUserAndDateRange(ctx, "user-2", from, from.AddDate(0, 1, 0))
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("missing date", func(t *testing.T) {
		_, err := repo.GetByUserAndDate(ctx, "user-1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("carbon"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Skip("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
