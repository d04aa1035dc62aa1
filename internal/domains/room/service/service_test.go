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
	s3Mocks "frontdesk/infras/s3/mocks"
	auditMocks "frontdesk/internal/domains/audit/mocks"
	hkMocks "frontdesk/internal/domains/housekeeping/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type roomFixture struct {
	svc    service.Room
	repo   *roomMocks.MockRoom
	hkRepo *hkMocks.MockHousekeeping
	cache  *cacheMocks.MockRedisCache
	s3     *s3Mocks.MockS3
}

func newRoomService(t *testing.T) roomFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHkRepo := hkMocks.NewMockHousekeeping(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
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

	svc := service.New(mockRepo, mockHkRepo, cfg, mockCache, mockOtel, mockS3, mockAudit)

	return roomFixture{svc: svc, repo: mockRepo, hkRepo: mockHkRepo, cache: mockCache, s3: mockS3}
}

func roomWithStatus(status string) model.Room {
	now := timezone.Now()

	return model.Room{
		ID:         "room-id",
		RoomNumber: "101",
		RoomType:   "Deluxe",
		Rate:       2000,
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber: "101",
		RoomType:   "Deluxe",
		Rate:       2000,
	}

	tests := []struct {
		name      string
		setupMock func(f roomFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful creation defaults the status",
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate room number",
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "room number already registered",
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: "failed to create room",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoomService(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), req)

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
			assert.Equal(t, "101", res.RoomNumber)
			assert.Equal(t, model.StatusAvailable, res.Status)
		})
	}
}

func TestRoomService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(f roomFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name:   "occupied room returns to available after cleaning is approved",
			target: model.StatusAvailable,
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomWithStatus(model.StatusCleaning), nil)

				f.hkRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "available is blocked while housekeeping is open",
			target: model.StatusAvailable,
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomWithStatus(model.StatusCleaning), nil)

				f.hkRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "room has unapproved housekeeping tasks",
			wantCode: http.StatusConflict,
		},
		{
			name:   "occupied is blocked while under maintenance",
			target: model.StatusOccupied,
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomWithStatus(model.StatusMaintenance), nil)
			},
			wantErr:  "room is under Maintenance",
			wantCode: http.StatusConflict,
		},
		{
			name:   "occupied is blocked while under cleaning",
			target: model.StatusOccupied,
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomWithStatus(model.StatusCleaning), nil)
			},
			wantErr:  "room is under Cleaning",
			wantCode: http.StatusConflict,
		},
		{
			name:   "same status is a no-op",
			target: model.StatusMaintenance,
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomWithStatus(model.StatusMaintenance), nil)
			},
		},
		{
			name:   "unknown room",
			target: model.StatusAvailable,
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  "room not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoomService(t)
			tt.setupMock(f)

			err := f.svc.UpdateStatus(context.Background(), dto.UpdateRoomStatusRequest{Status: tt.target}, "room-id")

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

func TestRoomService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func(f roomFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateRoomRequest{RoomType: "Suite", Rate: 5000},
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty request is rejected",
			req:       dto.UpdateRoomRequest{},
			setupMock: func(f roomFixture) {},
			wantErr:   "update request cannot be empty",
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room",
			req:  dto.UpdateRoomRequest{Rate: 5000},
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  "room not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoomService(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, "room-id")

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

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f roomFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomWithStatus(model.StatusAvailable), nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "occupied room cannot be deleted",
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomWithStatus(model.StatusOccupied), nil)
			},
			wantErr:  "room is occupied",
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown room",
			setupMock: func(f roomFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  "room not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoomService(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "room-id")

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

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f roomFixture)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func(f roomFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(f roomFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomWithStatus(model.StatusAvailable), nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID: "room-id",
		},
		{
			name: "room not found",
			setupMock: func(f roomFixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoomService(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "room-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}
