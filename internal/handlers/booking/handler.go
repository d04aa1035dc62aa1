package booking

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/cancel", handler.CancelBooking)
		routerGroup.Patch("/{id}/checkout", handler.CheckoutBooking)
	})
}

// CreateBooking creates a booking for a guest.
// @Summary Create a new booking
// @Description Book a room for a guest over a date range. The room is locked against overlapping bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room number"
// @Param booking_status query string false "Filter by booking status"
// @Param payment_status query string false "Filter by payment status"
// @Param guest_name query string false "Filter by guest name"
// @Param phone_number query string false "Filter by phone number"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filters := []any{}

	// Only add filters if the values are non-empty
	if roomNumber := r.URL.Query().Get(model.FieldRoomNumber); roomNumber != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    roomNumber,
			Table:    model.TableName,
		})
	}

	if bookingStatus := r.URL.Query().Get(model.FieldBookingStatus); bookingStatus != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldBookingStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingStatus,
			Table:    model.TableName,
		})
	}

	if paymentStatus := r.URL.Query().Get(model.FieldPaymentStatus); paymentStatus != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.TableName,
		})
	}

	if phoneNumber := r.URL.Query().Get(model.FieldPhoneNumber); phoneNumber != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldPhoneNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    phoneNumber,
			Table:    model.TableName,
		})
	}

	if guestName := r.URL.Query().Get(model.FieldGuestName); guestName != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldGuestName,
			Operator: gDto.FilterOperatorLike,
			Value:    constant.Asterix + guestName + constant.Asterix,
			Table:    model.TableName,
		})
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels an active booking and frees the room.
// @Summary Cancel a booking
// @Description Cancel an active booking and release the room back to Available.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [patch]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// CheckoutBooking completes an active booking.
// @Summary Check out a booking
// @Description Complete an active booking, mark it paid, and send the room to Cleaning.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkout [patch]
// @Security BearerAuth
func (handler *Handler) CheckoutBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Checkout(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to checkout booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking checked out successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking checked out successfully")
}
