package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	auditMocks "frontdesk/internal/domains/audit/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type txRunnerStub struct{}

func (txRunnerStub) WithSerializableTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockAudit := auditMocks.NewMockAudit(ctrl)
	mockOtel := mocks.NewOtel()

	mockAudit.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, txRunnerStub{}, cfg, mockCache, mockOtel, mockAudit)

	return svc, mockRepo, mockRoomRepo, mockCache
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:         "room-id",
		RoomNumber: "101",
		RoomType:   "Deluxe",
		Rate:       2000,
		Status:     roomModel.StatusAvailable,
	}
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		FirstName:    "Asha",
		LastName:     "Verma",
		PhoneNumber:  "9876543210",
		AadharNumber: "123412341234",
		RoomID:       "room-id",
		CheckIn:      "2026-03-01",
		CheckOut:     "2026-03-03",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful creation prices and occupies the room",
			req:  req,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room overlap is rejected",
			req:  req,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "room already booked for the requested dates",
			wantCode: http.StatusConflict,
		},
		{
			name: "guest overlap is rejected",
			req:  req,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				gomock.InOrder(
					repo.EXPECT().
						ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(false, nil),
					repo.EXPECT().
						ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(true, nil),
				)
			},
			wantErr:  "guest already has a booking for the requested dates",
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown room",
			req:  req,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  "room not found",
			wantCode: http.StatusNotFound,
		},
		{
			name: "check out before check in",
			req: dto.CreateBookingRequest{
				FirstName:    "Asha",
				LastName:     "Verma",
				PhoneNumber:  "9876543210",
				AadharNumber: "123412341234",
				RoomID:       "room-id",
				CheckIn:      "2026-03-03",
				CheckOut:     "2026-03-01",
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {},
			wantErr:   "invalid date range",
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check out equal to check in",
			req: dto.CreateBookingRequest{
				FirstName:    "Asha",
				LastName:     "Verma",
				PhoneNumber:  "9876543210",
				AadharNumber: "123412341234",
				RoomID:       "room-id",
				CheckIn:      "2026-03-01",
				CheckOut:     "2026-03-01",
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {},
			wantErr:   "invalid date range",
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unparseable date",
			req: dto.CreateBookingRequest{
				FirstName:    "Asha",
				LastName:     "Verma",
				PhoneNumber:  "9876543210",
				AadharNumber: "123412341234",
				RoomID:       "room-id",
				CheckIn:      "01-03-2026",
				CheckOut:     "2026-03-03",
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {},
			wantErr:   "invalid date range",
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "insert failure bubbles up",
			req:  req,
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: "failed to create booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockRoomRepo, _ := newBookingService(t)
			tt.setupMock(mockRepo, mockRoomRepo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Asha Verma", res.GuestName)
			assert.Equal(t, "101", res.RoomNumber)
			assert.Equal(t, model.StatusActive, res.BookingStatus)
			assert.Equal(t, model.PaymentStatusPending, res.PaymentStatus)
			assert.Equal(t, 2, res.Nights)
			assert.InDelta(t, 4000.0, res.BaseAmount, 0.001)
			assert.InDelta(t, 0.12, res.GstRate, 0.0001)
			assert.InDelta(t, 480.0, res.GstAmount, 0.001)
			assert.InDelta(t, 4480.0, res.TotalAmount, 0.001)
		})
	}
}

func TestBookingService_CreateWithGstOverride(t *testing.T) {
	svc, mockRepo, mockRoomRepo, _ := newBookingService(t)

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availableRoom(), nil)
	mockRepo.EXPECT().
		ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).
		Times(2)
	mockRepo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	mockRoomRepo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	override := 5.0
	res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		FirstName:    "Asha",
		LastName:     "Verma",
		PhoneNumber:  "9876543210",
		AadharNumber: "123412341234",
		RoomID:       "room-id",
		CheckIn:      "2026-03-01",
		CheckOut:     "2026-03-03",
		GstPercent:   &override,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 0.05, res.GstRate, 0.0001)
	assert.InDelta(t, 200.0, res.GstAmount, 0.001)
	assert.InDelta(t, 4200.0, res.TotalAmount, 0.001)
}

func activeBooking() model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:            "booking-id",
		GuestName:     "Asha Verma",
		PhoneNumber:   "9876543210",
		AadharNumber:  "123412341234",
		RoomID:        "room-id",
		RoomNumber:    "101",
		CheckIn:       now,
		CheckOut:      now.Add(48 * time.Hour),
		BookingStatus: model.StatusActive,
		PaymentStatus: model.PaymentStatusPending,
		BaseAmount:    4000,
		GstRate:       0.12,
		GstAmount:     480,
		TotalAmount:   4480,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "booking-id",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			id:   "booking-id",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID: "booking-id",
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "booking-id",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockCache := newBookingService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestBookingService_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		action    func(svc service.Booking) error
		setupMock func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom)
		wantErr   string
		wantCode  int
	}{
		{
			name: "cancel releases the room",
			action: func(svc service.Booking) error {
				return svc.Cancel(context.Background(), "booking-id")
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)

				repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "checkout settles payment and hands the room to housekeeping",
			action: func(svc service.Booking) error {
				return svc.Checkout(context.Background(), "booking-id")
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)

				repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cancel of a cancelled booking conflicts",
			action: func(svc service.Booking) error {
				return svc.Cancel(context.Background(), "booking-id")
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				booking := activeBooking()
				booking.BookingStatus = model.StatusCancelled

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  "booking is already Cancelled",
			wantCode: http.StatusConflict,
		},
		{
			name: "checkout of a completed booking conflicts",
			action: func(svc service.Booking) error {
				return svc.Checkout(context.Background(), "booking-id")
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				booking := activeBooking()
				booking.BookingStatus = model.StatusCompleted

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  "booking is already Completed",
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown booking",
			action: func(svc service.Booking) error {
				return svc.Cancel(context.Background(), "nonexistent-id")
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  "booking not found",
			wantCode: http.StatusNotFound,
		},
		{
			name: "room update failure rolls the transition back",
			action: func(svc service.Booking) error {
				return svc.Checkout(context.Background(), "booking-id")
			},
			setupMock: func(repo *bookingMocks.MockBooking, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)

				repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: "failed to update room status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockRoomRepo, _ := newBookingService(t)
			tt.setupMock(mockRepo, mockRoomRepo)

			err := tt.action(svc)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Create_OverlapWindow(t *testing.T) {
	svc, mockRepo, mockRoomRepo, _ := newBookingService(t)

	req := dto.CreateBookingRequest{
		FirstName:    "Asha",
		LastName:     "Verma",
		PhoneNumber:  "9876543210",
		AadharNumber: "123412341234",
		RoomID:       "room-id",
		CheckIn:      "2026-03-01",
		CheckOut:     "2026-03-03",
	}

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availableRoom(), nil)

	captured := []gDto.FilterGroup{}
	mockRepo.EXPECT().
		ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (bool, error) {
			captured = append(captured, filter)

			return false, nil
		}).
		Times(2)

	mockRepo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	mockRoomRepo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, captured, 2)

	// Both checks compare the half-open [check_in, check_out) window with
	// strict bounds, so bookings that touch at a boundary date pass.
	for _, filter := range captured {
		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "bookings.check_in < :new_check_out")
		assert.Contains(t, where, "bookings.check_out > :new_check_in")
		assert.NotContains(t, where, "<=")
		assert.NotContains(t, where, ">=")
		assert.Contains(t, where, "bookings.booking_status != :booking_status")
		assert.Equal(t, model.StatusCancelled, args["booking_status"])
	}

	roomWhere, _ := captured[0].GetWhereClause()
	assert.Contains(t, roomWhere, "bookings.room_number = :room_number")

	guestWhere, _ := captured[1].GetWhereClause()
	assert.Contains(t, guestWhere, "bookings.phone_number = :phone_number")
	assert.Contains(t, guestWhere, "bookings.aadhar_number = :aadhar_number")
}
