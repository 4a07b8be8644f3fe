package service

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/carbontrack/internal/error_values"
	"github.com/limbo/carbontrack/internal/observability"
	"github.com/limbo/carbontrack/internal/repository"
	"github.com/limbo/carbontrack/pkg/entity"
)

type ActivityService struct {
	repo repository.ActivityRecordsRepositoryI
	// electricityEntryDay restricts non-zero electricity units to one day of
	// month. Zero disables the rule.
	electricityEntryDay int
}

func NewActivityService(repo repository.ActivityRecordsRepositoryI, electricityEntryDay int) *ActivityService {
	if electricityEntryDay < 0 || electricityEntryDay > 31 {
		electricityEntryDay = 0
	}
	return &ActivityService{
		repo:                repo,
		electricityEntryDay: electricityEntryDay,
	}
}

func (as *ActivityService) SaveDailyInput(ctx context.Context, req *DailyInputRequest) (*entity.ActivityRecord, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validate.Struct(*req); err != nil {
		return nil, validationError(err)
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if as.electricityEntryDay != 0 && req.Electricity.Units > 0 && date.Day() != as.electricityEntryDay {
		return nil, errorvalues.ErrElectricityEntryDay
	}
	stored, err := as.repo.Upsert(ctx, &entity.ActivityRecord{
		UserID:      req.UserID,
		Date:        date.Format(entity.DateLayout),
		Travel:      req.Travel,
		Electricity: req.Electricity,
		Meals:       req.Meals,
		Shopping:    req.Shopping,
		Waste:       req.Waste,
	})
	if err != nil {
		return nil, errors.New("repository saving record error: " + err.Error())
	}
	observability.RecordSaved(stored.UpdatedAt)
	return stored, nil
}

func (as *ActivityService) GetDailyInput(ctx context.Context, userID, date string) (*entity.ActivityRecord, error) {
	if userID == "" {
		return nil, errorvalues.ErrValidation
	}
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	record, err := as.repo.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("repository searching record error: " + err.Error())
	}
	return record, nil
}

func (as *ActivityService) GetMonthlyInputs(ctx context.Context, userID, month string) ([]*entity.ActivityRecord, error) {
	if userID == "" {
		return nil, errorvalues.ErrValidation
	}
	from, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}
	records, err := as.repo.GetByUserAndDateRange(ctx, userID, from, from.AddDate(0, 1, 0))
	if err != nil {
		return nil, errors.New("repository listing records error: " + err.Error())
	}
	return records, nil
}
