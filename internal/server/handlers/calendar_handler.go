package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/olupoagric/storefront/internal/domain/models"
	"github.com/olupoagric/storefront/internal/service/advisor"
	"github.com/olupoagric/storefront/internal/view"
)

// CalendarHandler serves the farming calendar page: weather, the monthly AI
// calendar and the free-form assistant. Each section is tracked in the
// visitor's session so only the latest request for it is shown.
type CalendarHandler struct {
	catalog  CatalogService
	advisor  AdvisorService
	weather  WeatherService
	sessions SessionStore
	logger   *zap.Logger
}

// NewCalendarHandler constructs the HTTP handler adapter.
func NewCalendarHandler(catalog CatalogService, advisorSvc AdvisorService, weatherSvc WeatherService, sessions SessionStore, logger *zap.Logger) *CalendarHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarHandler{
		catalog:  catalog,
		advisor:  advisorSvc,
		weather:  weatherSvc,
		sessions: sessions,
		logger:   logger,
	}
}

type pageResponse struct {
	Month     int                              `json:"month"`
	MonthName string                           `json:"month_name"`
	Entries   view.Section[[]models.CropGroup] `json:"entries"`
	Calendar  view.Section[string]             `json:"calendar"`
	Weather   view.Section[models.Weather]     `json:"weather"`
}

// Page loads every section of the calendar page concurrently. ?month=
// defaults to the visitor's selected month. A failing section carries its
// own error and never blanks the others.
func (h *CalendarHandler) Page(c *gin.Context) {
	id := visitorID(c)
	ctx := c.Request.Context()

	month := h.sessions.Get(id).Calendar.Month
	if raw := c.Query("month"); raw != "" {
		parsed, ok := parseMonth(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidMonthMessage})
			return
		}
		month = parsed
	}

	h.sessions.Dispatch(id, view.MonthSelected{Month: month})
	state := h.sessions.Dispatch(id, view.WeatherRequested{})
	calendarSeq := state.Calendar.Calendar.Seq
	weatherSeq := state.Calendar.Weather.Seq

	entries := view.Section[[]models.CropGroup]{}.Begin()

	var g errgroup.Group
	g.Go(func() error {
		groups, err := h.catalog.Calendar(ctx, month)
		if err != nil {
			h.logger.Error("failed loading calendar entries", zap.Int("month", month), zap.Error(err))
			entries, _ = entries.Fail(entries.Seq, []models.CropGroup{}, entriesUnavailableMessage)
			return nil
		}
		entries, _ = entries.Succeed(entries.Seq, groups)
		return nil
	})
	g.Go(func() error {
		h.sessions.Dispatch(id, h.resolveCalendar(ctx, calendarSeq, month))
		return nil
	})
	g.Go(func() error {
		h.sessions.Dispatch(id, h.resolveWeather(ctx, weatherSeq))
		return nil
	})
	_ = g.Wait()

	state = h.sessions.Get(id)
	c.JSON(http.StatusOK, pageResponse{
		Month:     state.Calendar.Month,
		MonthName: models.MonthName(state.Calendar.Month),
		Entries:   entries,
		Calendar:  state.Calendar.Calendar,
		Weather:   state.Calendar.Weather,
	})
}

type monthRequest struct {
	Month int `json:"month" binding:"required"`
}

// SelectMonth switches the visitor's month and generates its calendar.
func (h *CalendarHandler) SelectMonth(c *gin.Context) {
	var req monthRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidMonth(req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidMonthMessage})
		return
	}

	id := visitorID(c)
	state := h.sessions.Dispatch(id, view.MonthSelected{Month: req.Month})
	state = h.sessions.Dispatch(id, h.resolveCalendar(c.Request.Context(), state.Calendar.Calendar.Seq, req.Month))

	c.JSON(http.StatusOK, gin.H{
		"month":      state.Calendar.Month,
		"month_name": models.MonthName(state.Calendar.Month),
		"calendar":   state.Calendar.Calendar,
	})
}

type questionRequest struct {
	Question string `json:"question"`
}

// Ask forwards the visitor's question to the assistant.
func (h *CalendarHandler) Ask(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question must not be empty"})
		return
	}

	id := visitorID(c)
	state := h.sessions.Dispatch(id, view.AdviceRequested{Question: question})
	seq := state.Calendar.Advice.Seq

	answer, err := h.advisor.Ask(c.Request.Context(), question)
	resolved := view.AdviceResolved{Seq: seq, Text: answer.Text}
	if err != nil {
		h.logger.Warn("assistant failed", zap.Error(err))
		resolved.Err = advisorMessage(err, advisor.NetworkMessage)
	}
	state = h.sessions.Dispatch(id, resolved)

	c.JSON(http.StatusOK, gin.H{
		"question":   state.Calendar.Question,
		"advice":     state.Calendar.Advice,
		"configured": answer.Configured,
	})
}

// Weather returns current conditions, falling back to defaults on failure.
func (h *CalendarHandler) Weather(c *gin.Context) {
	id := visitorID(c)
	state := h.sessions.Dispatch(id, view.WeatherRequested{})
	report := h.weather.Current(c.Request.Context())
	h.sessions.Dispatch(id, view.WeatherResolved{
		Seq:     state.Calendar.Weather.Seq,
		Weather: report.Weather,
		Err:     report.Error,
	})

	c.JSON(http.StatusOK, report)
}

func (h *CalendarHandler) resolveCalendar(ctx context.Context, seq uint64, month int) view.CalendarResolved {
	answer, err := h.advisor.MonthlyCalendar(ctx, month)
	if err != nil {
		h.logger.Warn("monthly calendar failed", zap.Int("month", month), zap.Error(err))
		return view.CalendarResolved{Seq: seq, Err: advisorMessage(err, advisor.CalendarFailedMessage)}
	}
	return view.CalendarResolved{Seq: seq, Text: answer.Text}
}

func (h *CalendarHandler) resolveWeather(ctx context.Context, seq uint64) view.WeatherResolved {
	report := h.weather.Current(ctx)
	return view.WeatherResolved{Seq: seq, Weather: report.Weather, Err: report.Error}
}
