package housekeeping

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/model/dto"
	"frontdesk/internal/domains/housekeeping/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Patch("/{id}/complete", handler.CompleteTask)
		routerGroup.Patch("/{id}/approve", handler.ApproveTask)
	})
}

// CreateTask opens a housekeeping task for a room.
// @Summary Create a housekeeping task
// @Description Open a cleaning, maintenance, or inspection task for a room.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateHousekeepingTaskRequest true "Task details"
// @Success 201 {object} response.Data[dto.HousekeepingTaskResponse] "Task created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateHousekeepingTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	task, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create housekeeping task")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Housekeeping task created successfully")

	response.WithJSON(writer, http.StatusCreated, task)
}

// GetTasks retrieves housekeeping tasks based on query parameters.
// @Summary Get all housekeeping tasks
// @Description Retrieve all housekeeping tasks with optional filtering and pagination.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room number"
// @Param task_type query string false "Filter by task type"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetHousekeepingTasksResponse] "List of tasks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if roomNumber := r.URL.Query().Get(model.FieldRoomNumber); roomNumber != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    roomNumber,
			Table:    model.TableName,
		})
	}

	if taskType := r.URL.Query().Get(model.FieldTaskType); taskType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTaskType,
			Operator: gDto.FilterOperatorEq,
			Value:    taskType,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	tasks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping tasks retrieved successfully")

	response.WithJSON(w, http.StatusOK, tasks)
}

// CompleteTask marks a housekeeping task as completed.
// @Summary Complete a housekeeping task
// @Description Mark an open housekeeping task as completed.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Message "Task completed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/{id}/complete [patch]
// @Security BearerAuth
func (handler *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Complete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete housekeeping task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task completed successfully")

	response.WithMessage(w, http.StatusOK, "Task completed successfully")
}

// ApproveTask approves a completed housekeeping task.
// @Summary Approve a housekeeping task
// @Description Approve a completed task. The room returns to Available once all its tasks are approved.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Message "Task approved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/{id}/approve [patch]
// @Security BearerAuth
func (handler *Handler) ApproveTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Approve(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve housekeeping task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Housekeeping task approved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Task approved successfully")
}
