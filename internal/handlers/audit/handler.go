package audit

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/audit/model"
	"frontdesk/internal/domains/audit/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAuditLogs)
	})
}

// GetAuditLogs retrieves audit log entries based on query parameters.
// @Summary Get audit logs
// @Description Retrieve audit log entries with optional filtering and pagination.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param actor query string false "Filter by actor"
// @Param action query string false "Filter by action"
// @Param entity query string false "Filter by entity"
// @Param entity_id query string false "Filter by entity ID"
// @Success 200 {object} response.Data[dto.GetAuditLogsResponse] "List of audit logs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if actor := r.URL.Query().Get(model.FieldActor); actor != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActor,
			Operator: gDto.FilterOperatorEq,
			Value:    actor,
			Table:    model.TableName,
		})
	}

	if action := r.URL.Query().Get(model.FieldAction); action != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAction,
			Operator: gDto.FilterOperatorEq,
			Value:    action,
			Table:    model.TableName,
		})
	}

	if entity := r.URL.Query().Get(model.FieldEntity); entity != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntity,
			Operator: gDto.FilterOperatorEq,
			Value:    entity,
			Table:    model.TableName,
		})
	}

	if entityID := r.URL.Query().Get(model.FieldEntityID); entityID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntityID,
			Operator: gDto.FilterOperatorEq,
			Value:    entityID,
			Table:    model.TableName,
		})
	}

	logs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}
