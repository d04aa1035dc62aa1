package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	auditMocks "frontdesk/internal/domains/audit/mocks"
	foodMocks "frontdesk/internal/domains/food/mocks"
	"frontdesk/internal/domains/food/model"
	"frontdesk/internal/domains/food/model/dto"
	"frontdesk/internal/domains/food/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type foodFixture struct {
	svc       service.Food
	menuRepo  *foodMocks.MockMenu
	orderRepo *foodMocks.MockOrder
	cache     *cacheMocks.MockRedisCache
}

func newFoodService(t *testing.T) foodFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockMenuRepo := foodMocks.NewMockMenu(ctrl)
	mockOrderRepo := foodMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockAudit := auditMocks.NewMockAudit(ctrl)
	mockOtel := mocks.NewOtel()

	mockAudit.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockMenuRepo, mockOrderRepo, cfg, mockCache, mockOtel, mockAudit)

	return foodFixture{svc: svc, menuRepo: mockMenuRepo, orderRepo: mockOrderRepo, cache: mockCache}
}

func menuItem(available bool) model.MenuItem {
	now := timezone.Now()

	return model.MenuItem{
		ID:        "item-id",
		Name:      "Paneer Tikka",
		Category:  "Starters",
		Price:     250,
		Available: available,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func orderInStatus(status string) model.FoodOrder {
	now := timezone.Now()

	return model.FoodOrder{
		ID:           "order-id",
		ItemID:       "item-id",
		ItemName:     "Paneer Tikka",
		CustomerName: "Asha Verma",
		RoomNumber:   "101",
		Quantity:     2,
		BaseAmount:   500,
		GstRate:      0.12,
		GstAmount:    60,
		TotalAmount:  560,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestFoodService_CreateMenuItem(t *testing.T) {
	req := dto.CreateMenuItemRequest{
		Name:     "Paneer Tikka",
		Category: "Starters",
		Price:    250,
	}

	tests := []struct {
		name      string
		setupMock func(f foodFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(f foodFixture) {
				f.menuRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.menuRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate name",
			setupMock: func(f foodFixture) {
				f.menuRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "menu item already exists",
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFoodService(t)
			tt.setupMock(f)

			res, err := f.svc.CreateMenuItem(context.Background(), req)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Paneer Tikka", res.Name)
		})
	}
}

func TestFoodService_CreateOrder(t *testing.T) {
	req := dto.CreateFoodOrderRequest{
		ItemID:       "item-id",
		CustomerName: "Asha Verma",
		RoomNumber:   "101",
		Quantity:     2,
	}

	tests := []struct {
		name      string
		setupMock func(f foodFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "order is priced from the menu item",
			setupMock: func(f foodFixture) {
				f.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(menuItem(true), nil)

				f.orderRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unavailable item is rejected",
			setupMock: func(f foodFixture) {
				f.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(menuItem(false), nil)
			},
			wantErr:  "menu item is not available",
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown item",
			setupMock: func(f foodFixture) {
				f.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.MenuItem{}, nil)
			},
			wantErr:  "menu item not found",
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(f foodFixture) {
				f.menuRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(menuItem(true), nil)

				f.orderRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: "failed to create food order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFoodService(t)
			tt.setupMock(f)

			res, err := f.svc.CreateOrder(context.Background(), req)

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
			assert.Equal(t, model.OrderStatusPending, res.Status)
			assert.Equal(t, 2, res.Quantity)
			assert.InDelta(t, 500.0, res.BaseAmount, 0.001)
			assert.InDelta(t, 0.12, res.GstRate, 0.0001)
			assert.InDelta(t, 60.0, res.GstAmount, 0.001)
			assert.InDelta(t, 560.0, res.TotalAmount, 0.001)
		})
	}
}

func TestFoodService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		invoiced bool
		wantErr  string
		wantCode int
	}{
		{name: "pending to preparing", from: model.OrderStatusPending, to: model.OrderStatusPreparing},
		{name: "pending straight to ready", from: model.OrderStatusPending, to: model.OrderStatusReady},
		{name: "preparing to ready", from: model.OrderStatusPreparing, to: model.OrderStatusReady},
		{name: "ready to served", from: model.OrderStatusReady, to: model.OrderStatusServed},
		{name: "ready to cancelled", from: model.OrderStatusReady, to: model.OrderStatusCancelled},
		{
			name:     "served is terminal",
			from:     model.OrderStatusServed,
			to:       model.OrderStatusCancelled,
			wantErr:  "cannot move food order from Served to Cancelled",
			wantCode: http.StatusConflict,
		},
		{
			name:     "cancelled is terminal",
			from:     model.OrderStatusCancelled,
			to:       model.OrderStatusPending,
			wantErr:  "cannot move food order from Cancelled to Pending",
			wantCode: http.StatusConflict,
		},
		{
			name:     "preparing cannot go back to pending",
			from:     model.OrderStatusPreparing,
			to:       model.OrderStatusPending,
			wantErr:  "cannot move food order from Preparing to Pending",
			wantCode: http.StatusConflict,
		},
		{
			name:     "invoiced order is frozen",
			from:     model.OrderStatusServed,
			to:       model.OrderStatusServed,
			invoiced: true,
			wantErr:  "food order already invoiced",
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFoodService(t)

			order := orderInStatus(tt.from)
			if tt.invoiced {
				invoice := "INV-20260301120000-0001"
				order.InvoiceNumber = &invoice
			}

			f.orderRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(order, nil)

			if tt.wantErr == "" {
				f.orderRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := f.svc.UpdateOrderStatus(context.Background(), dto.UpdateFoodOrderStatusRequest{Status: tt.to}, "order-id")

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestFoodService_UpdateOrderStatusNotFound(t *testing.T) {
	f := newFoodService(t)

	f.orderRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.FoodOrder{}, nil)

	err := f.svc.UpdateOrderStatus(context.Background(), dto.UpdateFoodOrderStatusRequest{Status: model.OrderStatusReady}, "nonexistent-id")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestFoodService_DeleteMenuItem(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f foodFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(f foodFixture) {
				f.menuRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.menuRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown item",
			setupMock: func(f foodFixture) {
				f.menuRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  "menu item not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFoodService(t)
			tt.setupMock(f)

			err := f.svc.DeleteMenuItem(context.Background(), "item-id")

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
