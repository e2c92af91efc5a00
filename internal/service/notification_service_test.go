package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDelivery struct {
	mu   sync.Mutex
	sent map[uuid.UUID][]*dto.NotificationResponse
}

func (d *recordingDelivery) Send(userID uuid.UUID, n *dto.NotificationResponse) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sent == nil {
		d.sent = make(map[uuid.UUID][]*dto.NotificationResponse)
	}
	d.sent[userID] = append(d.sent[userID], n)
}

func newNotificationFixture() (*memStore, marketplace, *memNotifications, *NotificationService) {
	store := newMemStore()
	m := seedMarketplace(store)
	repo := &memNotifications{}
	return store, m, repo, NewNotificationService(repo, &fakeFactory{store: store}, nil, nil, logger.NewNopLogger())
}

func TestHandleBookingConfirmed(t *testing.T) {
	_, m, repo, svc := newNotificationFixture()
	meetingID := uuid.New()

	err := svc.HandleEvent(context.Background(), events.New(events.BookingConfirmed, map[string]interface{}{
		"meeting_id": meetingID.String(),
		"mentee_id":  m.mentee.Id.String(),
		"mentor_id":  m.mentor.Id.String(),
		"plan_title": m.plan.Title,
	}))
	require.NoError(t, err)
	require.Len(t, repo.rows, 2)

	for _, userID := range []uuid.UUID{m.mentee.Id, m.mentor.Id} {
		got := repo.forUser(userID)
		require.Len(t, got, 1)
		assert.Equal(t, events.BookingConfirmed, got[0].TypeCode)
		assert.Equal(t, "meeting", got[0].EntityType)
		require.NotNil(t, got[0].EntityId)
		assert.Equal(t, meetingID, *got[0].EntityId)
		assert.Equal(t, "/meetings/"+meetingID.String(), got[0].Metadata["action_url"])
		assert.Contains(t, got[0].Message, m.plan.Title)
	}
}

func TestHandleEventPushesToOpenConnections(t *testing.T) {
	store := newMemStore()
	m := seedMarketplace(store)
	repo := &memNotifications{}
	delivery := &recordingDelivery{}
	svc := NewNotificationService(repo, &fakeFactory{store: store}, nil, delivery, logger.NewNopLogger())

	err := svc.HandleEvent(context.Background(), events.New(events.MeetingLocationUpdated, map[string]interface{}{
		"meeting_id": uuid.NewString(),
		"mentee_id":  m.mentee.Id.String(),
		"plan_title": m.plan.Title,
	}))
	require.NoError(t, err)
	require.Len(t, delivery.sent[m.mentee.Id], 1)
	pushed := delivery.sent[m.mentee.Id][0]
	assert.Equal(t, repo.rows[0].Id, pushed.Id)
	assert.Equal(t, "Session scheduled", pushed.Title)
	assert.False(t, pushed.IsRead)
	assert.Empty(t, delivery.sent[m.mentor.Id])
}

func TestHandleEventPrefixedSubject(t *testing.T) {
	_, m, repo, svc := newNotificationFixture()

	err := svc.HandleEvent(context.Background(), events.New("events."+events.MeetingStatusChanged, map[string]interface{}{
		"meeting_id": uuid.NewString(),
		"mentee_id":  m.mentee.Id.String(),
		"status":     string(entity.MeetingStatusCompleted),
	}))
	require.NoError(t, err)
	got := repo.forUser(m.mentee.Id)
	require.Len(t, got, 1)
	assert.Equal(t, events.MeetingStatusChanged, got[0].TypeCode)
	assert.Contains(t, got[0].Message, "Completed")
}

func TestHandleComplaintFiledNotifiesAdmins(t *testing.T) {
	store, m, repo, svc := newNotificationFixture()
	active := entity.User{Id: uuid.New(), Email: "ops@mentoria.dev", Role: entity.UserRoleAdmin, Status: entity.UserStatusActive}
	banned := entity.User{Id: uuid.New(), Email: "old@mentoria.dev", Role: entity.UserRoleAdmin, Status: entity.UserStatusBanned}
	store.users = append(store.users, active, banned)

	err := svc.HandleEvent(context.Background(), events.New(events.ComplaintFiled, map[string]interface{}{
		"complaint_id": uuid.NewString(),
		"mentee_id":    m.mentee.Id.String(),
	}))
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, active.Id, repo.rows[0].UserId)
	assert.Equal(t, "complaint", repo.rows[0].EntityType)
}

func TestHandleEventIgnoresUnknownTypes(t *testing.T) {
	_, m, repo, svc := newNotificationFixture()

	err := svc.HandleEvent(context.Background(), events.New("USER_SIGNED_UP", map[string]interface{}{
		"mentee_id": m.mentee.Id.String(),
	}))
	require.NoError(t, err)
	assert.Empty(t, repo.rows)
}

func TestHandleEventSkipsMissingRecipients(t *testing.T) {
	_, m, repo, svc := newNotificationFixture()

	err := svc.HandleEvent(context.Background(), events.New(events.BookingConfirmed, map[string]interface{}{
		"meeting_id": "not-a-uuid",
		"mentor_id":  m.mentor.Id.String(),
	}))
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Nil(t, repo.rows[0].EntityId)
	assert.NotContains(t, repo.rows[0].Metadata, "action_url")
}

func TestNotificationReads(t *testing.T) {
	_, m, repo, svc := newNotificationFixture()
	ctx := context.Background()
	now := time.Now()
	for i := 0; i < 3; i++ {
		repo.rows = append(repo.rows, entity.Notification{Id: uuid.New(), UserId: m.mentee.Id, TypeCode: events.MeetingStatusChanged, Title: "Session updated", CreatedAt: now})
	}
	repo.rows = append(repo.rows, entity.Notification{Id: uuid.New(), UserId: m.mentor.Id, TypeCode: events.BookingConfirmed, CreatedAt: now})

	list, err := svc.GetNotifications(ctx, m.mentee.Id, 2, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, int64(3), list.Unread)

	require.NoError(t, svc.MarkAsRead(ctx, m.mentee.Id, repo.rows[0].Id))
	list, err = svc.GetNotifications(ctx, m.mentee.Id, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Unread)
	assert.True(t, list.Items[0].IsRead)

	assert.ErrorIs(t, svc.MarkAsRead(ctx, m.mentor.Id, repo.rows[1].Id), ErrNotificationNotFound)
	assert.ErrorIs(t, svc.MarkAsRead(ctx, m.mentee.Id, uuid.New()), ErrNotificationNotFound)

	require.NoError(t, svc.MarkAllAsRead(ctx, m.mentee.Id))
	list, err = svc.GetNotifications(ctx, m.mentee.Id, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, list.Unread)

	mentor, err := svc.GetNotifications(ctx, m.mentor.Id, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mentor.Unread)
}

func TestStartWithoutSubscriber(t *testing.T) {
	_, _, _, svc := newNotificationFixture()
	assert.NotPanics(t, svc.Start)
}
