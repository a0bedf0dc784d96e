package activityhandler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"worktrack/internal/domain/activity"
	"worktrack/internal/domain/auth"
	"worktrack/internal/transport/http/api"
	"worktrack/internal/transport/http/middleware"
)

type Handler struct {
	Service *activity.Service
}

func NewHandler(service *activity.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/activities", h.handleListActivities)
		r.Get("/activities/{activityID}", h.handleActivityDetail)
		r.Get("/daily", h.handleDaily)
		r.Get("/monthly", h.handleMonthly)
		r.Get("/leaderboard", h.handleLeaderboard)
		r.Get("/report.pdf", h.handleReportPDF)
	})
}

// resolveEmployee returns the employee whose records the caller may read:
// themselves, or anyone when the caller's role allows it and userId is given.
func resolveEmployee(r *http.Request) (string, auth.UserContext, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		return "", auth.UserContext{}, false
	}
	employeeID := user.UserID
	if requested := r.URL.Query().Get("userId"); requested != "" && requested != user.UserID {
		if !user.CanViewOthers() {
			return "", user, false
		}
		employeeID = requested
	}
	return employeeID, user, true
}

func failResolve(w http.ResponseWriter, r *http.Request, user auth.UserContext) {
	if user.UserID != "" {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot view other employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, user, ok := resolveEmployee(r)
	if !ok {
		failResolve(w, r, user)
		return
	}

	days := queryInt(r, "days", 30)
	summary := h.Service.Summary(r.Context(), employeeID, days)
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	employeeID, user, ok := resolveEmployee(r)
	if !ok {
		failResolve(w, r, user)
		return
	}

	filters := activity.Filters{
		WindowDays: queryInt(r, "days", 30),
		Month:      queryInt(r, "month", 0),
		Year:       queryInt(r, "year", 0),
		Category:   r.URL.Query().Get("category"),
	}
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	result := h.Service.List(r.Context(), employeeID, filters, page, limit)
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActivityDetail(w http.ResponseWriter, r *http.Request) {
	employeeID, user, ok := resolveEmployee(r)
	if !ok {
		failResolve(w, r, user)
		return
	}

	detail, err := h.Service.ActivityDetail(r.Context(), employeeID, chi.URLParam(r, "activityID"))
	switch {
	case errors.Is(err, activity.ErrInvalidActivityID):
		api.Fail(w, http.StatusBadRequest, "invalid_activity_id", "activity id is not valid", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, activity.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "activity_not_found", "activity not found", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "activity_detail_failed", "failed to load activity detail", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, detail, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	employeeID, user, ok := resolveEmployee(r)
	if !ok {
		failResolve(w, r, user)
		return
	}

	days := queryInt(r, "days", 30)
	if days > 366 {
		days = 366
	}
	buckets := h.Service.Daily(r.Context(), employeeID, days)
	api.Success(w, buckets, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID, user, ok := resolveEmployee(r)
	if !ok {
		failResolve(w, r, user)
		return
	}

	year := queryInt(r, "year", time.Now().UTC().Year())
	report := h.Service.Monthly(r.Context(), employeeID, year)
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	roleName := r.URL.Query().Get("role")
	if roleName == "" {
		roleName = user.RoleName
	}
	if roleName != user.RoleName && !user.CanViewOthers() {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot view other roles", middleware.GetRequestID(r.Context()))
		return
	}

	entries, err := h.Service.Leaderboard(r.Context(), roleName, queryInt(r, "days", 30))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leaderboard_failed", "failed to build leaderboard", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	employeeID, user, ok := resolveEmployee(r)
	if !ok {
		failResolve(w, r, user)
		return
	}

	year := queryInt(r, "year", time.Now().UTC().Year())
	pdf, err := h.Service.MonthlyReportPDF(r.Context(), employeeID, year)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to generate report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=performance-%s-%d.pdf", employeeID, year))
	_, _ = w.Write(pdf)
}
