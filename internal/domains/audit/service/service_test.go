package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/audit/model"
	repoMocks "frontdesk/internal/domains/audit/repository/mocks"
	"frontdesk/internal/domains/audit/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

func newAuditService(t *testing.T) (service.Audit, *repoMocks.MockAudit, *kafkaMocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := repoMocks.NewMockAudit(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.AuditTopic = "frontdesk.audit"

	svc := service.New(mockRepo, cfg, mockKafka, mockOtel)

	return svc, mockRepo, mockKafka
}

func TestAuditService_Record(t *testing.T) {
	t.Run("actor taken from the authenticated context", func(t *testing.T) {
		svc, mockRepo, mockKafka := newAuditService(t)

		var inserted model.AuditLog

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.AuditLog) error {
				inserted = entry

				return nil
			})

		published := make(chan kafka.Message, 1)
		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "frontdesk.audit", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "reception@example.com")
		svc.Record(ctx, "booking.create", "booking", "booking-id-123", map[string]string{"room_number": "204"})

		assert.Equal(t, "reception@example.com", inserted.Actor)
		assert.Equal(t, "booking.create", inserted.Action)
		assert.Equal(t, "booking", inserted.Entity)
		assert.Equal(t, "booking-id-123", inserted.EntityID)
		assert.Contains(t, inserted.Detail, `"room_number":"204"`)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, timezone.GetLocation(), inserted.Metadata.CreatedAt.Location())
		assert.WithinDuration(t, timezone.Now(), inserted.Metadata.CreatedAt, time.Minute)

		select {
		case msg := <-published:
			assert.Equal(t, inserted.ID, msg.Key)
		case <-time.After(time.Second):
			t.Fatal("audit entry was not published")
		}
	})

	t.Run("unauthenticated context falls back to system actor", func(t *testing.T) {
		svc, mockRepo, mockKafka := newAuditService(t)

		var inserted model.AuditLog

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.AuditLog) error {
				inserted = entry

				return nil
			})

		published := make(chan struct{}, 1)
		mockKafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
				published <- struct{}{}

				return nil
			})

		svc.Record(context.Background(), "room.update", "room", "room-id-123", nil)

		assert.Equal(t, constant.ContextSystem, inserted.Actor)
		assert.Empty(t, inserted.Detail)

		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatal("audit entry was not published")
		}
	})

	t.Run("insert failure skips the publish", func(t *testing.T) {
		svc, mockRepo, _ := newAuditService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		svc.Record(context.Background(), "room.update", "room", "room-id-123", nil)
	})
}

func TestAuditService_GetAll(t *testing.T) {
	t.Run("returns paged entries", func(t *testing.T) {
		svc, mockRepo, _ := newAuditService(t)

		logs := []model.AuditLog{
			{ID: "log-1", Actor: "reception@example.com", Action: "booking.create", Entity: "booking"},
			{ID: "log-2", Actor: "manager@example.com", Action: "bill.generate", Entity: "bill"},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(logs, nil)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Logs, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, "booking.create", res.Logs[0].Action)
	})

	t.Run("selection failure", func(t *testing.T) {
		svc, mockRepo, _ := newAuditService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get audit entries")
	})

	t.Run("count failure", func(t *testing.T) {
		svc, mockRepo, _ := newAuditService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.AuditLog{}, nil)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count audit entries")
	})
}
