package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/carbontrack/internal/error_values"
	"github.com/limbo/carbontrack/internal/service"
	"github.com/limbo/carbontrack/pkg/entity"
	"github.com/limbo/carbontrack/pkg/httputil"
)

const viewIDHeader = "X-View-ID"

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string `json:"uid"`
	Token  string `json:"token"`
}

// DailyInputRequest is the body of a daily submission. Omitted categories
// are stored as zeros.
type DailyInputRequest struct {
	UserID      string             `json:"userId"`
	Date        string             `json:"date"`
	Travel      entity.Travel      `json:"travel"`
	Electricity entity.Electricity `json:"electricity"`
	Meals       entity.Meals       `json:"meals"`
	Shopping    entity.Shopping    `json:"shopping"`
	Waste       entity.Waste       `json:"waste"`
}

// Ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (s *Server) Ping(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetFactors godoc
// @Summary Active emission factor table
// @Tags reports
// @Produce json
// @Success 200 {object} emissions.FactorTable
// @Router /factors [get]
func (s *Server) GetFactors(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.reportService.Factors())
}

// Register godoc
// @Summary Create account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password format", err)
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

// Login godoc
// @Summary Issue access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} LoginResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		UserID: user.ID.String(),
		Token:  token,
	})
	logger.Info("successful login")
}

// SaveDailyInput godoc
// @Summary Store the day's activity, replacing an earlier submission for the same date
// @Tags daily-input
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body DailyInputRequest true "daily quantities"
// @Success 200 {object} entity.ActivityRecord
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Router /daily-input [post]
func (s *Server) SaveDailyInput(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req DailyInputRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("saving daily input error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.UserID == "" {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "userId is required", nil)
		return
	}
	userID, ok := s.owner(w, r, req.UserID)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	record, err := s.activityService.SaveDailyInput(ctx, &service.DailyInputRequest{
		UserID:      userID,
		Date:        req.Date,
		Travel:      req.Travel,
		Electricity: req.Electricity,
		Meals:       req.Meals,
		Shopping:    req.Shopping,
		Waste:       req.Waste,
	})
	if err != nil {
		writeServiceError(w, logger, "saving daily input", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
	logger.Info("daily input saved", slog.String("date", record.Date))
}

// GetDailyInput godoc
// @Summary Stored record of a date
// @Tags daily-input
// @Produce json
// @Security BearerAuth
// @Param userId path string true "user id"
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} entity.ActivityRecord
// @Failure 404 {object} httputil.ErrorResponse
// @Router /daily-input/{userId}/{date} [get]
func (s *Server) GetDailyInput(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, ok := s.owner(w, r, r.PathValue("userId"))
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	record, err := s.activityService.GetDailyInput(ctx, userID, r.PathValue("date"))
	if err != nil {
		writeServiceError(w, logger, "getting daily input", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
}

// GetMonthlyInputs godoc
// @Summary Stored records of a month in date order
// @Tags daily-input
// @Produce json
// @Security BearerAuth
// @Param userId path string true "user id"
// @Param month path string true "YYYY-MM"
// @Success 200 {array} entity.ActivityRecord
// @Failure 400 {object} httputil.ErrorResponse
// @Router /daily-input/{userId}/month/{month} [get]
func (s *Server) GetMonthlyInputs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, ok := s.owner(w, r, r.PathValue("userId"))
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	records, err := s.activityService.GetMonthlyInputs(ctx, userID, r.PathValue("month"))
	if err != nil {
		writeServiceError(w, logger, "listing monthly inputs", err)
		return
	}
	if records == nil {
		records = []*entity.ActivityRecord{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, records)
}

// GetDailyReport godoc
// @Summary Emission breakdown of a day
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param userId path string true "user id"
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} service.DailyReport
// @Failure 503 {object} httputil.ErrorResponse
// @Param X-View-ID header string false "client view id, a newer request for the same view supersedes older ones"
// @Router /reports/{userId}/daily/{date} [get]
func (s *Server) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, ok := s.owner(w, r, r.PathValue("userId"))
	if !ok {
		return
	}
	ctx, cancel := s.reportContext(r)
	defer cancel()
	report, err := s.reportService.DailySummary(ctx, userID, r.PathValue("date"))
	if err != nil {
		writeServiceError(w, logger, "building daily report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

// GetMonthlyReport godoc
// @Summary Monthly aggregate, trend and top contributors
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param userId path string true "user id"
// @Param month path string true "YYYY-MM"
// @Success 200 {object} service.MonthlyReport
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 503 {object} httputil.ErrorResponse
// @Param X-View-ID header string false "client view id, a newer request for the same view supersedes older ones"
// @Router /reports/{userId}/monthly/{month} [get]
func (s *Server) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, ok := s.owner(w, r, r.PathValue("userId"))
	if !ok {
		return
	}
	ctx, cancel := s.reportContext(r)
	defer cancel()
	report, err := s.reportService.MonthlySummary(ctx, userID, r.PathValue("month"))
	if err != nil {
		writeServiceError(w, logger, "building monthly report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

// GetProgressReport godoc
// @Summary Month-over-month progress against the previous calendar month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param userId path string true "user id"
// @Param month path string true "YYYY-MM"
// @Success 200 {object} service.ProgressReport
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 503 {object} httputil.ErrorResponse
// @Param X-View-ID header string false "client view id, a newer request for the same view supersedes older ones"
// @Router /reports/{userId}/progress/{month} [get]
func (s *Server) GetProgressReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, ok := s.owner(w, r, r.PathValue("userId"))
	if !ok {
		return
	}
	ctx, cancel := s.reportContext(r)
	defer cancel()
	report, err := s.reportService.Progress(ctx, userID, r.PathValue("month"))
	if err != nil {
		writeServiceError(w, logger, "building progress report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

// reportContext bounds a report call and tags it with the client view id
// from the X-View-ID header, when present.
func (s *Server) reportContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx := r.Context()
	if view := r.Header.Get(viewIDHeader); view != "" {
		ctx = service.WithViewID(ctx, view)
	}
	return context.WithTimeout(ctx, s.requestTimeout)
}

// owner resolves the authenticated user for a request naming userID and
// writes the error response when they differ.
func (s *Server) owner(w http.ResponseWriter, r *http.Request, userID string) (string, bool) {
	if err := authorizeOwner(r, userID); err != nil {
		logger := GetLoggerFromCtx(r.Context())
		if errors.Is(err, errorvalues.ErrForeignRecord) {
			logger.Error("access to foreign records denied", slog.String("requested", userID))
			httputil.WriteErrorResponse(w, http.StatusForbidden, "access to another user's records is forbidden", nil)
			return "", false
		}
		logger.Error("request without authorization")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return "", false
	}
	uid, _ := GetUIDFromContext(r)
	return uid.String(), true
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidDate),
		errors.Is(err, errorvalues.ErrInvalidMonth),
		errors.Is(err, errorvalues.ErrElectricityEntryDay):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrForeignRecord):
		logger.Error(op + " error: foreign record")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "access to another user's records is forbidden", nil)
	case errors.Is(err, errorvalues.ErrRecordNotFound):
		logger.Info(op + ": record not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no record for given date", nil)
	case errors.Is(err, errorvalues.ErrReportSuperseded):
		logger.Info(op + ": superseded by a newer request")
		httputil.WriteErrorResponse(w, http.StatusConflict, "superseded by a newer request", nil)
	case errors.Is(err, errorvalues.ErrRecordsUnavailable):
		logger.Error(op+" error: records unavailable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "records temporarily unavailable, retry later", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
