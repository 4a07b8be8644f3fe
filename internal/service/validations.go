package service

import (
	"errors"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/carbontrack/internal/error_values"
	"github.com/limbo/carbontrack/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

// acceptedDateLayouts are tried in order when normalising a submitted date.
var acceptedDateLayouts = []string{
	entity.DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("calendar_month", func(fl validator.FieldLevel) bool {
			_, err := ParseMonth(fl.Field().String())
			return err == nil
		})
	})
}

// ParseDate accepts the supported date spellings and returns the calendar
// day at UTC midnight. Time-of-day and offset are dropped after reading the
// date as written.
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range acceptedDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, errorvalues.ErrInvalidDate
}

// ParseMonth reads YYYY-MM and returns the first day of that month in UTC.
func ParseMonth(raw string) (time.Time, error) {
	t, err := time.Parse(entity.MonthLayout, raw)
	if err != nil {
		return time.Time{}, errorvalues.ErrInvalidMonth
	}
	return t, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		joined := []error{errorvalues.ErrValidation}
		for _, fieldErr := range fieldErrs {
			joined = append(joined, fieldErr)
		}
		return errors.Join(joined...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}
