package report

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pension/infras/otel"
	"pension/internal/domains/report/service"
	"pension/shared/constant"
	"pension/shared/failure"
	"pension/shared/timezone"
	"pension/transport/http/response"
)

const requestParamDate = "date"

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
	})
}

// GetSummary returns the daily front-desk summary.
// @Summary Get the daily summary
// @Description Room statuses, reservation movement, invoiced revenue and open tickets for one business day. Defaults to today.
// @Tags Report
// @Accept json
// @Produce json
// @Param date query string false "Business day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.SummaryResponse "Daily summary"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	date := timezone.Now()

	if raw := r.URL.Query().Get(requestParamDate); raw != "" {
		parsed, err := time.Parse(constant.DateOnlyFormat, raw)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse date query parameter")

			response.WithError(w, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD"))

			return
		}

		date = parsed
	}

	summary, err := handler.service.Summarize(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build daily summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Daily summary built successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
