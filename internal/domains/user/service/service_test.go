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
	userMocks "frontdesk/internal/domains/user/mocks"
	userModel "frontdesk/internal/domains/user/model"
	"frontdesk/internal/domains/user/model/dto"
	"frontdesk/internal/domains/user/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

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

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func storedUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Email:    "staff@example.com",
		Password: "hashed-password",
		FullName: "Staff Member",
		Role:     constant.RoleReception,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin@example.com",
			ModifiedBy: "admin@example.com",
		},
	}
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "successful creation with explicit role",
			req: dto.CreateUserRequest{
				Email:    "manager@example.com",
				Password: "password123",
				FullName: "Shift Manager",
				Role:     constant.RoleManager,
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleManager, user.Role)
						assert.NotEqual(t, "password123", user.Password)

						return nil
					})
			},
		},
		{
			name: "missing role defaults to reception",
			req: dto.CreateUserRequest{
				Email:    "staff@example.com",
				Password: "password123",
				FullName: "Staff Member",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleReception, user.Role)

						return nil
					})
			},
		},
		{
			name: "duplicate email",
			req: dto.CreateUserRequest{
				Email:    "taken@example.com",
				Password: "password123",
				FullName: "Staff Member",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateUserRequest{
				Email:    "staff@example.com",
				Password: "password123",
				FullName: "Staff Member",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newUserService(t)
			tt.setupMock(mockRepo)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser(), nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID: "user-id-123",
		},
		{
			name: "user not found",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newUserService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	role := constant.RoleManager

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   string
		wantCode  int
	}{
		{
			name: "role elevation",
			req:  dto.UpdateUserRequest{Role: &role},
			setupMock: func(repo *userMocks.MockUser) {
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
			req:       dto.UpdateUserRequest{},
			setupMock: func(repo *userMocks.MockUser) {},
			wantErr:   "update request cannot be empty",
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown user",
			req:  dto.UpdateUserRequest{Role: &role},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  "user not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newUserService(t)
			tt.setupMock(mockRepo)

			err := svc.Update(context.Background(), tt.req, "user-id-123")

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

func TestUserService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "user-id-123"))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "nonexistent-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
