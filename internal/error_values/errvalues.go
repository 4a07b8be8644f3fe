package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrValidation          = errors.New("validation error")
	ErrInvalidDate         = errors.New("invalid calendar date")
	ErrInvalidMonth        = errors.New("invalid calendar month")
	ErrElectricityEntryDay = errors.New("electricity units can't be entered on this day")
	ErrRecordNotFound      = errors.New("no activity record for given date")
	ErrForeignRecord       = errors.New("record belongs to another user")
	ErrReportSuperseded    = errors.New("report superseded by a newer request")
	ErrRecordsUnavailable  = errors.New("activity records unavailable")
)
