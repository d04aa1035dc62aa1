package bill

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/bill/model"
	"frontdesk/internal/domains/bill/model/dto"
	"frontdesk/internal/domains/bill/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bill
	otel    otel.Otel
}

func New(service service.Bill, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bills", func(routerGroup chi.Router) {
		routerGroup.Post("/generate/{bookingId}", handler.GenerateBill)
		routerGroup.Get("/", handler.GetBills)
		routerGroup.Get("/{id}", handler.GetBillByID)
		routerGroup.Patch("/{id}/payment", handler.UpdateBillPayment)
	})
}

// GenerateBill consolidates a booking's room and food charges into an invoice.
// @Summary Generate a bill for a booking
// @Description Build a consolidated invoice from the booking's room charge and its uninvoiced food orders.
// @Tags Bill
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body dto.GenerateBillRequest true "Billing options"
// @Success 201 {object} response.Data[dto.BillResponse] "Bill generated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/generate/{bookingId} [post]
// @Security BearerAuth
func (handler *Handler) GenerateBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateBill")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamBookingID)

	req := dto.GenerateBillRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.Generate(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate bill")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bill generated successfully")

	response.WithJSON(writer, http.StatusCreated, bill)
}

// GetBills retrieves all bills based on query parameters.
// @Summary Get all bills
// @Description Retrieve all bills with optional filtering and pagination.
// @Tags Bill
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param invoice_number query string false "Filter by invoice number"
// @Param booking_id query string false "Filter by booking ID"
// @Param payment_status query string false "Filter by payment status"
// @Success 200 {object} response.Data[dto.GetBillsResponse] "List of bills"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills [get]
// @Security BearerAuth
func (handler *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBills")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if invoiceNumber := r.URL.Query().Get(model.FieldInvoiceNumber); invoiceNumber != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldInvoiceNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    invoiceNumber,
			Table:    model.TableName,
		})
	}

	if bookingID := r.URL.Query().Get(model.FieldBookingID); bookingID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	if paymentStatus := r.URL.Query().Get(model.FieldPaymentStatus); paymentStatus != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.TableName,
		})
	}

	bills, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bills retrieved successfully")

	response.WithJSON(w, http.StatusOK, bills)
}

// GetBillByID retrieves a bill with its line items.
// @Summary Get a bill by ID
// @Description Retrieve a bill and its line items by its unique identifier.
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.Data[dto.BillResponse] "Bill details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBillByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bill, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill retrieved successfully")

	response.WithJSON(w, http.StatusOK, bill)
}

// UpdateBillPayment records a payment state change on a bill.
// @Summary Update bill payment
// @Description Update the payment status and method of a bill. Marking a bill paid also marks its booking paid.
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.UpdateBillPaymentRequest true "Payment details"
// @Success 200 {object} response.Message "Bill payment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{id}/payment [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBillPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBillPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBillPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePayment(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bill payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Bill payment updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Bill payment updated successfully")
}
