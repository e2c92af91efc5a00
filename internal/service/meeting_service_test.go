package service

import (
	"context"
	"testing"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeetingFixture(status entity.MeetingStatus) (*memStore, marketplace, entity.Meeting, *fakeEmailQueue, *fakePublisher, IMeetingService) {
	store := newMemStore()
	m := seedMarketplace(store)
	meeting := seedMeeting(store, m, status, time.Now().Add(-time.Hour))
	emails := &fakeEmailQueue{}
	pub := &fakePublisher{}
	svc := NewMeetingService(&fakeFactory{store: store}, emails, pub, logger.NewNopLogger())
	return store, m, meeting, emails, pub, svc
}

func TestUpdateLocationSchedulesMeeting(t *testing.T) {
	store, m, meeting, emails, pub, svc := newMeetingFixture(entity.MeetingStatusPending)

	res, err := svc.UpdateLocation(context.Background(), m.mentor.Id, meeting.Id, &dto.UpdateLocationRequest{Location: "https://meet.example.com/xyz"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.MeetingStatusScheduled), res.Status)
	assert.Equal(t, "https://meet.example.com/xyz", res.Location)
	assert.Equal(t, m.plan.Title, res.PlanTitle)
	assert.Equal(t, m.slot.DisplayId(), res.SlotId)

	assert.Equal(t, entity.MeetingStatusScheduled, store.meetings[0].Status)
	assert.Equal(t, []string{m.mentee.Email}, emails.recipients())
	assert.Equal(t, []string{events.MeetingLocationUpdated}, pub.types())
}

func TestUpdateLocationOwnership(t *testing.T) {
	_, m, meeting, _, _, svc := newMeetingFixture(entity.MeetingStatusPending)
	ctx := context.Background()
	req := &dto.UpdateLocationRequest{Location: "https://meet.example.com/xyz"}

	_, err := svc.UpdateLocation(ctx, m.mentor.Id, uuid.New(), req)
	assert.ErrorIs(t, err, ErrMeetingNotFound)

	_, err = svc.UpdateLocation(ctx, uuid.New(), meeting.Id, req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateLocationRejectsFinishedMeetings(t *testing.T) {
	_, m, meeting, emails, _, svc := newMeetingFixture(entity.MeetingStatusCompleted)

	_, err := svc.UpdateLocation(context.Background(), m.mentor.Id, meeting.Id, &dto.UpdateLocationRequest{Location: "https://meet.example.com/late"})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, emails.recipients())
}

func TestUpdateMeetingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.MeetingStatus
		to      entity.MeetingStatus
		wantErr error
		notify  bool
	}{
		{name: "scheduled to completed", from: entity.MeetingStatusScheduled, to: entity.MeetingStatusCompleted, notify: true},
		{name: "pending to cancelled", from: entity.MeetingStatusPending, to: entity.MeetingStatusCancelled, notify: true},
		{name: "scheduled to cancelled", from: entity.MeetingStatusScheduled, to: entity.MeetingStatusCancelled, notify: true},
		{name: "same status is a no-op", from: entity.MeetingStatusScheduled, to: entity.MeetingStatusScheduled},
		{name: "pending cannot complete", from: entity.MeetingStatusPending, to: entity.MeetingStatusCompleted, wantErr: ErrInvalidTransition},
		{name: "completed cannot go back", from: entity.MeetingStatusCompleted, to: entity.MeetingStatusScheduled, wantErr: ErrInvalidTransition},
		{name: "cancelled is final", from: entity.MeetingStatusCancelled, to: entity.MeetingStatusCompleted, wantErr: ErrInvalidTransition},
		{name: "pending is never a target", from: entity.MeetingStatusScheduled, to: entity.MeetingStatusPending, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, m, meeting, emails, pub, svc := newMeetingFixture(tt.from)

			res, err := svc.UpdateStatus(context.Background(), m.mentor.Id, meeting.Id, &dto.UpdateMeetingStatusRequest{Status: string(tt.to)})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, store.meetings[0].Status)
				assert.Empty(t, pub.types())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(tt.to), res.Status)
			assert.Equal(t, tt.to, store.meetings[0].Status)
			if tt.notify {
				assert.Equal(t, []string{m.mentee.Email}, emails.recipients())
				assert.Equal(t, []string{events.MeetingStatusChanged}, pub.types())
			} else {
				assert.Empty(t, emails.recipients())
				assert.Empty(t, pub.types())
			}
		})
	}
}

func TestUpdateMeetingStatusSchedulingNeedsLocation(t *testing.T) {
	_, m, meeting, _, _, svc := newMeetingFixture(entity.MeetingStatusPending)

	_, err := svc.UpdateStatus(context.Background(), m.mentor.Id, meeting.Id, &dto.UpdateMeetingStatusRequest{Status: string(entity.MeetingStatusScheduled)})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestUpdateMeetingStatusOtherMentor(t *testing.T) {
	_, _, meeting, _, _, svc := newMeetingFixture(entity.MeetingStatusScheduled)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), meeting.Id, &dto.UpdateMeetingStatusRequest{Status: string(entity.MeetingStatusCompleted)})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateReviewLink(t *testing.T) {
	t.Run("completed meeting", func(t *testing.T) {
		store, m, meeting, _, _, svc := newMeetingFixture(entity.MeetingStatusCompleted)
		res, err := svc.UpdateReviewLink(context.Background(), m.mentor.Id, meeting.Id, &dto.UpdateReviewLinkRequest{ReviewLink: "https://docs.example.com/review"})
		require.NoError(t, err)
		assert.Equal(t, "https://docs.example.com/review", res.ReviewLink)
		assert.Equal(t, "https://docs.example.com/review", store.meetings[0].ReviewLink)
	})

	t.Run("not yet completed", func(t *testing.T) {
		_, m, meeting, _, _, svc := newMeetingFixture(entity.MeetingStatusScheduled)
		_, err := svc.UpdateReviewLink(context.Background(), m.mentor.Id, meeting.Id, &dto.UpdateReviewLinkRequest{ReviewLink: "https://docs.example.com/review"})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestMeetingEditsLoseToConcurrentCancel(t *testing.T) {
	cancel := func(s *memStore) { s.meetings[0].Status = entity.MeetingStatusCancelled }

	t.Run("location", func(t *testing.T) {
		store, m, meeting, emails, pub, svc := newMeetingFixture(entity.MeetingStatusPending)
		store.afterMeetingRead = cancel

		_, err := svc.UpdateLocation(context.Background(), m.mentor.Id, meeting.Id, &dto.UpdateLocationRequest{Location: "https://meet.example.com/xyz"})
		assert.ErrorIs(t, err, ErrConcurrentUpdate)
		assert.Equal(t, entity.MeetingStatusCancelled, store.meetings[0].Status)
		assert.Empty(t, store.meetings[0].Location)
		assert.Empty(t, emails.recipients())
		assert.Empty(t, pub.types())
	})

	t.Run("review link", func(t *testing.T) {
		store, m, meeting, _, _, svc := newMeetingFixture(entity.MeetingStatusCompleted)
		store.afterMeetingRead = cancel

		_, err := svc.UpdateReviewLink(context.Background(), m.mentor.Id, meeting.Id, &dto.UpdateReviewLinkRequest{ReviewLink: "https://docs.example.com/review"})
		assert.ErrorIs(t, err, ErrConcurrentUpdate)
		assert.Equal(t, entity.MeetingStatusCancelled, store.meetings[0].Status)
		assert.Empty(t, store.meetings[0].ReviewLink)
	})
}

func TestGetMeetingVisibility(t *testing.T) {
	_, m, meeting, _, _, svc := newMeetingFixture(entity.MeetingStatusPending)
	ctx := context.Background()

	res, err := svc.GetMeeting(ctx, m.mentee.Id, string(entity.UserRoleMentee), meeting.Id)
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.FinalAmount)
	assert.NotNil(t, res.PaidAt)

	_, err = svc.GetMeeting(ctx, m.mentor.Id, string(entity.UserRoleMentor), meeting.Id)
	assert.NoError(t, err)

	_, err = svc.GetMeeting(ctx, uuid.New(), string(entity.UserRoleAdmin), meeting.Id)
	assert.NoError(t, err)

	_, err = svc.GetMeeting(ctx, uuid.New(), string(entity.UserRoleMentee), meeting.Id)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListMeetings(t *testing.T) {
	store, m, _, _, _, svc := newMeetingFixture(entity.MeetingStatusPending)
	ctx := context.Background()
	seedMeeting(store, m, entity.MeetingStatusCompleted, time.Now().Add(-48*time.Hour))

	all, err := svc.ListMenteeMeetings(ctx, m.mentee.Id, &dto.ListMeetingsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
	assert.Equal(t, defaultPageSize, all.Limit)

	pending, err := svc.ListMentorMeetings(ctx, m.mentor.Id, &dto.ListMeetingsQuery{Status: string(entity.MeetingStatusPending)})
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, string(entity.MeetingStatusPending), pending.Items[0].Status)

	paged, err := svc.ListMenteeMeetings(ctx, m.mentee.Id, &dto.ListMeetingsQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, paged.Items, 1)
	assert.Equal(t, int64(2), paged.Total)

	none, err := svc.ListMenteeMeetings(ctx, uuid.New(), &dto.ListMeetingsQuery{})
	require.NoError(t, err)
	assert.Empty(t, none.Items)
}
