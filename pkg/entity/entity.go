package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

type Travel struct {
	Mode       string  `json:"mode" validate:"max=32"`
	FuelType   string  `json:"fuelType" validate:"max=32"`
	DistanceKm float64 `json:"distanceKm" validate:"gte=0"`
}

type Electricity struct {
	Units float64 `json:"units" validate:"gte=0"`
}

type Meals struct {
	VegCount    int `json:"vegCount" validate:"gte=0,lte=2147483647"`
	NonVegCount int `json:"nonVegCount" validate:"gte=0,lte=2147483647"`
}

type Shopping struct {
	AmountSpent float64 `json:"amountSpent" validate:"gte=0"`
}

type Waste struct {
	MassKg float64 `json:"massKg" validate:"gte=0"`
}

// ActivityRecord is one day of raw logged quantities for a user.
// Date is always in canonical YYYY-MM-DD form.
type ActivityRecord struct {
	ID          int64       `json:"-"`
	UserID      string      `json:"userId"`
	Date        string      `json:"date"`
	Travel      Travel      `json:"travel"`
	Electricity Electricity `json:"electricity"`
	Meals       Meals       `json:"meals"`
	Shopping    Shopping    `json:"shopping"`
	Waste       Waste       `json:"waste"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// DateLayout is the canonical calendar date form.
const DateLayout = "2006-01-02"

// MonthLayout is the canonical calendar month form.
const MonthLayout = "2006-01"
