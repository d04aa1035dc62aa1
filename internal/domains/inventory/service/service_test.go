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
	inventoryMocks "frontdesk/internal/domains/inventory/mocks"
	"frontdesk/internal/domains/inventory/model"
	"frontdesk/internal/domains/inventory/model/dto"
	"frontdesk/internal/domains/inventory/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

func newInventoryService(t *testing.T) (service.Inventory, *inventoryMocks.MockInventory) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := inventoryMocks.NewMockInventory(ctrl)
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

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockAudit)

	return svc, mockRepo
}

func storedItem(quantity int) model.InventoryItem {
	now := timezone.Now()

	return model.InventoryItem{
		ID:           "item-id",
		Name:         "Bath Towel",
		Category:     "Linen",
		Unit:         "pcs",
		Quantity:     quantity,
		ReorderLevel: 10,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestInventoryService_Create(t *testing.T) {
	req := dto.CreateInventoryItemRequest{
		Name:     "Bath Towel",
		Category: "Linen",
		Unit:     "pcs",
		Quantity: 50,
	}

	tests := []struct {
		name      string
		setupMock func(repo *inventoryMocks.MockInventory)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate name",
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "inventory item already exists",
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: "failed to create inventory item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newInventoryService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Create(context.Background(), req)

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
			assert.Equal(t, 50, res.Quantity)
		})
	}
}

func TestInventoryService_AdjustStock(t *testing.T) {
	tests := []struct {
		name         string
		delta        int
		setupMock    func(repo *inventoryMocks.MockInventory)
		wantErr      string
		wantCode     int
		wantQuantity int
	}{
		{
			name:  "positive delta restocks",
			delta: 20,
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedItem(30), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 50, fields[model.FieldQuantity])

						return nil
					})
			},
			wantQuantity: 50,
		},
		{
			name:  "negative delta consumes",
			delta: -10,
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedItem(30), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantQuantity: 20,
		},
		{
			name:  "oversized negative delta floors at zero",
			delta: -100,
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedItem(30), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 0, fields[model.FieldQuantity])

						return nil
					})
			},
			wantQuantity: 0,
		},
		{
			name:  "unknown item",
			delta: 5,
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.InventoryItem{}, nil)
			},
			wantErr:  "inventory item not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newInventoryService(t)
			tt.setupMock(mockRepo)

			res, err := svc.AdjustStock(context.Background(), dto.AdjustStockRequest{Delta: tt.delta}, "item-id")

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantQuantity, res.Quantity)
		})
	}
}

func TestInventoryService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateInventoryItemRequest
		setupMock func(repo *inventoryMocks.MockInventory)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateInventoryItemRequest{Category: "Housekeeping"},
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty request is rejected",
			req:       dto.UpdateInventoryItemRequest{},
			setupMock: func(repo *inventoryMocks.MockInventory) {},
			wantErr:   "update request cannot be empty",
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown item",
			req:  dto.UpdateInventoryItemRequest{Category: "Housekeeping"},
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  "inventory item not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newInventoryService(t)
			tt.setupMock(mockRepo)

			err := svc.Update(context.Background(), tt.req, "item-id")

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
