package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/carbontrack/internal/error_values"
	"github.com/limbo/carbontrack/pkg/entity"
)

const recordColumns = `id, user_id, record_date, travel_mode, travel_fuel_type, travel_distance_km, electricity_units, meals_veg, meals_non_veg, shopping_amount, waste_mass_kg, created_at, updated_at`

type ActivityRecordsRepository struct {
	conn PgConnection
}

func NewActivityRecordsRepo(cfg DBConfig) *ActivityRecordsRepository {
	return &ActivityRecordsRepository{
		conn: NewPool(cfg),
	}
}

func NewActivityRecordsRepoWithConn(conn PgConnection) *ActivityRecordsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activityRecordsRepo: " + err.Error())
	}
	return &ActivityRecordsRepository{
		conn: conn,
	}
}

func (ar *ActivityRecordsRepository) Upsert(ctx context.Context, record *entity.ActivityRecord) (*entity.ActivityRecord, error) {
	if record == nil {
		return nil, errors.New("record is nil")
	}
	date, err := time.Parse(entity.DateLayout, record.Date)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	row := ar.conn.QueryRow(
		ctx,
		`INSERT INTO activity_records (user_id, record_date, travel_mode, travel_fuel_type, travel_distance_km, electricity_units, meals_veg, meals_non_veg, shopping_amount, waste_mass_kg)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, record_date) DO UPDATE SET
			travel_mode = EXCLUDED.travel_mode,
			travel_fuel_type = EXCLUDED.travel_fuel_type,
			travel_distance_km = EXCLUDED.travel_distance_km,
			electricity_units = EXCLUDED.electricity_units,
			meals_veg = EXCLUDED.meals_veg,
			meals_non_veg = EXCLUDED.meals_non_veg,
			shopping_amount = EXCLUDED.shopping_amount,
			waste_mass_kg = EXCLUDED.waste_mass_kg,
			updated_at = NOW()
		RETURNING id, created_at, updated_at;`,
		record.UserID,
		date,
		record.Travel.Mode,
		record.Travel.FuelType,
		record.Travel.DistanceKm,
		record.Electricity.Units,
		record.Meals.VegCount,
		record.Meals.NonVegCount,
		record.Shopping.AmountSpent,
		record.Waste.MassKg,
	)
	stored := *record
	if err := row.Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
		return nil, errors.New("upserting activity record error: " + err.Error())
	}
	return &stored, nil
}

func (ar *ActivityRecordsRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*entity.ActivityRecord, error) {
	row := ar.conn.QueryRow(
		ctx,
		`SELECT `+recordColumns+` FROM activity_records WHERE user_id = $1 AND record_date = $2;`,
		userID,
		date,
	)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("getting activity record error: " + err.Error())
	}
	return record, nil
}

func (ar *ActivityRecordsRepository) GetByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.ActivityRecord, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT `+recordColumns+` FROM activity_records WHERE user_id = $1 AND record_date >= $2 AND record_date < $3 ORDER BY record_date ASC;`,
		userID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting activity records for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.ActivityRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, errors.New("activity record row parsing error: " + err.Error())
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected activity record rows error: " + err.Error())
	}
	return result, nil
}

func scanRecord(row pgx.Row) (*entity.ActivityRecord, error) {
	var (
		r    entity.ActivityRecord
		date time.Time
	)
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&date,
		&r.Travel.Mode,
		&r.Travel.FuelType,
		&r.Travel.DistanceKm,
		&r.Electricity.Units,
		&r.Meals.VegCount,
		&r.Meals.NonVegCount,
		&r.Shopping.AmountSpent,
		&r.Waste.MassKg,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Date = date.Format(entity.DateLayout)
	return &r, nil
}
