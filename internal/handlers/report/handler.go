package report

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

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
		routerGroup.Get("/occupancy", handler.GetOccupancy)
		routerGroup.Get("/revenue", handler.GetRevenue)
	})
}

// GetOccupancy reports the current room occupancy snapshot.
// @Summary Get occupancy report
// @Description Report room counts per status and the current occupancy rate.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.OccupancyResponse] "Occupancy snapshot"
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	occupancy, err := handler.service.Occupancy(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report retrieved successfully")

	response.WithJSON(w, http.StatusOK, occupancy)
}

// GetRevenue reports paid revenue over a date range.
// @Summary Get revenue report
// @Description Report the bill count, total revenue, and GST collected for paid bills in a date range.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueResponse] "Revenue summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	revenue, err := handler.service.Revenue(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, revenue)
}
