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
	hkMocks "frontdesk/internal/domains/housekeeping/mocks"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/model/dto"
	"frontdesk/internal/domains/housekeeping/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type hkFixture struct {
	svc      service.Housekeeping
	repo     *hkMocks.MockHousekeeping
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
}

func newHousekeepingService(t *testing.T) hkFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := hkMocks.NewMockHousekeeping(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
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

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockAudit)

	return hkFixture{svc: svc, repo: mockRepo, roomRepo: mockRoomRepo, cache: mockCache}
}

func roomInStatus(status string) roomModel.Room {
	return roomModel.Room{
		ID:         "room-id",
		RoomNumber: "101",
		RoomType:   "Deluxe",
		Rate:       2000,
		Status:     status,
	}
}

func taskInStatus(status string, approved bool) model.HousekeepingTask {
	now := timezone.Now()

	return model.HousekeepingTask{
		ID:         "task-id",
		RoomNumber: "101",
		TaskType:   model.TaskTypeCleaning,
		Status:     status,
		Approved:   approved,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestHousekeepingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateHousekeepingTaskRequest
		setupMock func(f hkFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "cleaning task puts the room in cleaning",
			req:  dto.CreateHousekeepingTaskRequest{RoomNumber: "101", TaskType: model.TaskTypeCleaning},
			setupMock: func(f hkFixture) {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomInStatus(roomModel.StatusAvailable), nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.roomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "maintenance task on an occupied room leaves the room status alone",
			req:  dto.CreateHousekeepingTaskRequest{RoomNumber: "101", TaskType: model.TaskTypeMaintenance},
			setupMock: func(f hkFixture) {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomInStatus(roomModel.StatusOccupied), nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown room",
			req:  dto.CreateHousekeepingTaskRequest{RoomNumber: "999", TaskType: model.TaskTypeCleaning},
			setupMock: func(f hkFixture) {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  "room not found",
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			req:  dto.CreateHousekeepingTaskRequest{RoomNumber: "101", TaskType: model.TaskTypeCleaning},
			setupMock: func(f hkFixture) {
				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomInStatus(roomModel.StatusAvailable), nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: "failed to create housekeeping task",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHousekeepingService(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

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
			assert.Equal(t, model.StatusOpen, res.Status)
			assert.False(t, res.Approved)
		})
	}
}

func TestHousekeepingService_Complete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f hkFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "open task completes",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(taskInStatus(model.StatusOpen, false), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "completed task conflicts",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(taskInStatus(model.StatusCompleted, false), nil)
			},
			wantErr:  "housekeeping task already completed",
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown task",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.HousekeepingTask{}, nil)
			},
			wantErr:  "housekeeping task not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHousekeepingService(t)
			tt.setupMock(f)

			err := f.svc.Complete(context.Background(), "task-id")

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

func TestHousekeepingService_Approve(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f hkFixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "approving the last open task releases the room",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(taskInStatus(model.StatusCompleted, false), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomInStatus(roomModel.StatusCleaning), nil)

				f.roomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "remaining open tasks keep the room out of circulation",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(taskInStatus(model.StatusCompleted, false), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
		},
		{
			name: "occupied room stays occupied after the last approval",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(taskInStatus(model.StatusCompleted, false), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomInStatus(roomModel.StatusOccupied), nil)
			},
		},
		{
			name: "open task cannot be approved",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(taskInStatus(model.StatusOpen, false), nil)
			},
			wantErr:  "housekeeping task is not completed",
			wantCode: http.StatusConflict,
		},
		{
			name: "approved task cannot be approved twice",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(taskInStatus(model.StatusCompleted, true), nil)
			},
			wantErr:  "housekeeping task already approved",
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown task",
			setupMock: func(f hkFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.HousekeepingTask{}, nil)
			},
			wantErr:  "housekeeping task not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHousekeepingService(t)
			tt.setupMock(f)

			err := f.svc.Approve(context.Background(), "task-id")

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
