package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	billMocks "frontdesk/internal/domains/bill/mocks"
	billRepository "frontdesk/internal/domains/bill/repository"
	"frontdesk/internal/domains/report/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
)

func newReportService(t *testing.T) (service.Report, *roomMocks.MockRoom, *billMocks.MockBill) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockBillRepo := billMocks.NewMockBill(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRoomRepo, mockBillRepo, cfg, mockCache, mockOtel)

	return svc, mockRoomRepo, mockBillRepo
}

func TestReportService_Occupancy(t *testing.T) {
	tests := []struct {
		name      string
		counts    map[string]int
		setupErr  error
		expected  float64
		wantTotal int
		wantErr   bool
	}{
		{
			name: "mixed statuses",
			counts: map[string]int{
				roomModel.StatusAvailable:   4,
				roomModel.StatusOccupied:    5,
				roomModel.StatusMaintenance: 1,
			},
			expected:  50,
			wantTotal: 10,
		},
		{
			name:      "empty hotel",
			counts:    map[string]int{},
			expected:  0,
			wantTotal: 0,
		},
		{
			name: "rate rounds to two decimals",
			counts: map[string]int{
				roomModel.StatusAvailable: 2,
				roomModel.StatusOccupied:  1,
			},
			expected:  33.33,
			wantTotal: 3,
		},
		{
			name:     "repository error",
			setupErr: errors.New("database error"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRoomRepo, _ := newReportService(t)

			mockRoomRepo.EXPECT().
				CountByStatus(gomock.Any()).
				Return(tt.counts, tt.setupErr)

			res, err := svc.Occupancy(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalRooms)
			assert.InDelta(t, tt.expected, res.OccupancyRate, 0.001)
		})
	}
}

func TestReportService_Revenue(t *testing.T) {
	t.Run("aggregates bills over the inclusive range", func(t *testing.T) {
		svc, _, mockBillRepo := newReportService(t)

		mockBillRepo.EXPECT().
			RevenueBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) (billRepository.Revenue, error) {
				assert.Equal(t, 1, from.Day())
				assert.Equal(t, 31, to.Day())
				assert.Equal(t, 23, to.Hour())

				return billRepository.Revenue{BillCount: 12, TotalAmount: 60480, GstAmount: 6480}, nil
			})

		res, err := svc.Revenue(context.Background(), "2026-03-01", "2026-03-31")

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-01", res.From)
		assert.Equal(t, "2026-03-31", res.To)
		assert.Equal(t, 12, res.BillCount)
		assert.InDelta(t, 60480.0, res.TotalAmount, 0.001)
		assert.InDelta(t, 6480.0, res.GstAmount, 0.001)
	})

	t.Run("single day range", func(t *testing.T) {
		svc, _, mockBillRepo := newReportService(t)

		mockBillRepo.EXPECT().
			RevenueBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(billRepository.Revenue{BillCount: 1, TotalAmount: 4480, GstAmount: 480}, nil)

		res, err := svc.Revenue(context.Background(), "2026-03-01", "2026-03-01")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.BillCount)
	})

	t.Run("reversed bounds are rejected", func(t *testing.T) {
		svc, _, _ := newReportService(t)

		_, err := svc.Revenue(context.Background(), "2026-03-31", "2026-03-01")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date range")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unparseable bound is rejected", func(t *testing.T) {
		svc, _, _ := newReportService(t)

		_, err := svc.Revenue(context.Background(), "March 1", "2026-03-31")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, _, mockBillRepo := newReportService(t)

		mockBillRepo.EXPECT().
			RevenueBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(billRepository.Revenue{}, errors.New("database error"))

		_, err := svc.Revenue(context.Background(), "2026-03-01", "2026-03-31")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to build revenue report")
	})
}
