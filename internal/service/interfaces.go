package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/carbontrack/internal/emissions"
	"github.com/limbo/carbontrack/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks UserServiceI,ActivityServiceI,ReportServiceI

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=64"`
	Password string `validate:"required,min=8,max=72"`
}

// DailyInputRequest is a full day of quantities. Absent numbers are zero.
type DailyInputRequest struct {
	UserID      string `validate:"required,max=128"`
	Date        string `validate:"required,calendar_date"`
	Travel      entity.Travel
	Electricity entity.Electricity
	Meals       entity.Meals
	Shopping    entity.Shopping
	Waste       entity.Waste
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type ActivityServiceI interface {
	// Validates the day, normalises its date and stores it replacing any record of the same user and date
	SaveDailyInput(ctx context.Context, req *DailyInputRequest) (*entity.ActivityRecord, error)
	GetDailyInput(ctx context.Context, userID, date string) (*entity.ActivityRecord, error)
	// Lists records of the YYYY-MM month ordered by date
	GetMonthlyInputs(ctx context.Context, userID, month string) ([]*entity.ActivityRecord, error)
}

type ReportServiceI interface {
	DailySummary(ctx context.Context, userID, date string) (*DailyReport, error)
	MonthlySummary(ctx context.Context, userID, month string) (*MonthlyReport, error)
	// Compares the month with the calendar month before it
	Progress(ctx context.Context, userID, month string) (*ProgressReport, error)
	Factors() *emissions.FactorTable
}
