package service

import (
	"context"
	"testing"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlan(t *testing.T) {
	store := newMemStore()
	m := seedMarketplace(store)
	svc := NewPlanService(&fakeFactory{store: store}, logger.NewNopLogger())
	ctx := context.Background()

	res, err := svc.CreatePlan(ctx, m.mentor.Id, &dto.PlanRequest{
		Title:          "Career coaching",
		PlanType:       string(entity.PlanTypeSession),
		Charge:         49.999,
		MinutesPerCall: 45,
		CallsPerWeek:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Charge)
	assert.Zero(t, res.CallsPerWeek)
	assert.True(t, res.IsActive)

	_, err = svc.CreatePlan(ctx, m.mentor.Id, &dto.PlanRequest{
		Title:          "Weekly mentorship",
		PlanType:       string(entity.PlanTypeMentorship),
		Charge:         300,
		MinutesPerCall: 30,
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	_, err = svc.CreatePlan(ctx, m.mentee.Id, &dto.PlanRequest{Title: "x", PlanType: "session", Charge: 10, MinutesPerCall: 30})
	assert.ErrorIs(t, err, ErrMentorNotFound)
}

func TestUpdateAndDeactivatePlan(t *testing.T) {
	store := newMemStore()
	m := seedMarketplace(store)
	svc := NewPlanService(&fakeFactory{store: store}, logger.NewNopLogger())
	ctx := context.Background()

	res, err := svc.UpdatePlan(ctx, m.mentor.Id, m.plan.Id, &dto.PlanRequest{
		Title:          "Weekly mentorship",
		PlanType:       string(entity.PlanTypeMentorship),
		Charge:         250,
		MinutesPerCall: 60,
		CallsPerWeek:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.CallsPerWeek)
	assert.Equal(t, 250.0, store.plans[0].Charge)

	_, err = svc.UpdatePlan(ctx, uuid.New(), m.plan.Id, &dto.PlanRequest{Title: "x", PlanType: "session", Charge: 10, MinutesPerCall: 30})
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.DeactivatePlan(ctx, m.mentor.Id, m.plan.Id))
	assert.False(t, store.plans[0].IsActive)
	assert.ErrorIs(t, svc.DeactivatePlan(ctx, m.mentor.Id, uuid.New()), ErrPlanNotFound)

	list, err := svc.ListMentorPlans(ctx, m.mentor.Id)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsActive)
}

func discountRequest(code string) *dto.DiscountRequest {
	now := time.Now()
	return &dto.DiscountRequest{
		Code:       code,
		Type:       string(entity.DiscountTypePercentage),
		Value:      25,
		ValidFrom:  now.Add(-time.Hour),
		ValidTo:    now.Add(7 * 24 * time.Hour),
		UsageLimit: 3,
	}
}

func TestDiscountLifecycle(t *testing.T) {
	store := newMemStore()
	m := seedMarketplace(store)
	svc := NewDiscountService(&fakeFactory{store: store}, logger.NewNopLogger())
	ctx := context.Background()

	created, err := svc.CreateDiscount(ctx, m.mentor.Id, discountRequest("welcome25"))
	require.NoError(t, err)
	assert.Equal(t, "WELCOME25", created.Code)
	assert.True(t, created.IsActive)

	_, err = svc.CreateDiscount(ctx, uuid.New(), discountRequest("Welcome25"))
	assert.ErrorIs(t, err, ErrDiscountCodeTaken)

	valid, err := svc.ValidateCode(ctx, "welcome25", m.mentor.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, valid.DiscountId)

	_, err = svc.ValidateCode(ctx, "WELCOME25", uuid.New())
	assert.ErrorIs(t, err, ErrInvalidDiscount)
	_, err = svc.ValidateCode(ctx, "NOPE", m.mentor.Id)
	assert.ErrorIs(t, err, ErrDiscountNotFound)

	store.discounts[0].UsedCount = 2
	lower := discountRequest("WELCOME25")
	lower.UsageLimit = 1
	_, err = svc.UpdateDiscount(ctx, m.mentor.Id, created.Id, lower)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	renamed := discountRequest("SPRING")
	renamed.UsageLimit = 10
	updated, err := svc.UpdateDiscount(ctx, m.mentor.Id, created.Id, renamed)
	require.NoError(t, err)
	assert.Equal(t, "SPRING", updated.Code)
	assert.Equal(t, 2, updated.UsedCount)

	_, err = svc.UpdateDiscount(ctx, uuid.New(), created.Id, renamed)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.DeleteDiscount(ctx, m.mentor.Id, created.Id))
	assert.False(t, store.discounts[0].IsActive)
	_, err = svc.ValidateCode(ctx, "SPRING", m.mentor.Id)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	list, err := svc.ListDiscounts(ctx, m.mentor.Id)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDiscountRequestValidation(t *testing.T) {
	store := newMemStore()
	m := seedMarketplace(store)
	svc := NewDiscountService(&fakeFactory{store: store}, logger.NewNopLogger())

	over := discountRequest("TOOMUCH")
	over.Value = 120
	_, err := svc.CreateDiscount(context.Background(), m.mentor.Id, over)
	assert.Error(t, err)

	backwards := discountRequest("BACKWARDS")
	backwards.ValidTo = backwards.ValidFrom.Add(-time.Hour)
	_, err = svc.CreateDiscount(context.Background(), m.mentor.Id, backwards)
	assert.Error(t, err)

	assert.Empty(t, store.discounts)
}

func TestMentorSearchAndProfile(t *testing.T) {
	store := newMemStore()
	m := seedMarketplace(store)
	svc := NewMentorService(&fakeFactory{store: store}, logger.NewNopLogger())
	ctx := context.Background()

	store.plans = append(store.plans, entity.Plan{Id: uuid.New(), MentorId: m.mentor.Id, Title: "Quick chat", PlanType: entity.PlanTypeSession, Charge: 40, MinutesPerCall: 20, IsActive: true})
	store.plans = append(store.plans, entity.Plan{Id: uuid.New(), MentorId: m.mentor.Id, Title: "Retired", PlanType: entity.PlanTypeSession, Charge: 5, MinutesPerCall: 20})

	found, err := svc.SearchMentors(ctx, &dto.MentorSearchQuery{Skill: "go"})
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	require.NotNil(t, found.Items[0].StartingPrice)
	assert.Equal(t, 40.0, *found.Items[0].StartingPrice)
	assert.Equal(t, 2, found.Items[0].PlanCount)

	maxPrice := 30.0
	cheap, err := svc.SearchMentors(ctx, &dto.MentorSearchQuery{MaxPrice: &maxPrice})
	require.NoError(t, err)
	assert.Empty(t, cheap.Items)

	minPrice := 50.0
	_, err = svc.SearchMentors(ctx, &dto.MentorSearchQuery{MinPrice: &minPrice, MaxPrice: &maxPrice})
	assert.Error(t, err)

	profile, err := svc.GetMentorProfile(ctx, m.mentor.Id)
	require.NoError(t, err)
	assert.Equal(t, "Max Mentor", profile.FullName)
	assert.Len(t, profile.Plans, 2)

	updated, err := svc.UpdateProfile(ctx, m.mentor.Id, &dto.UpdateMentorProfileRequest{
		Headline: "Principal engineer",
		Skills:   []string{"Go", " go ", "Rust", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "Principal engineer", updated.Headline)
	assert.Equal(t, []string{"go", "rust"}, updated.Skills)

	store.users[1].Status = entity.UserStatusBanned
	_, err = svc.GetMentorProfile(ctx, m.mentor.Id)
	assert.ErrorIs(t, err, ErrMentorNotFound)
	hidden, err := svc.SearchMentors(ctx, &dto.MentorSearchQuery{})
	require.NoError(t, err)
	assert.Empty(t, hidden.Items)
}

func TestFeedback(t *testing.T) {
	store := newMemStore()
	m := seedMarketplace(store)
	completed := seedMeeting(store, m, entity.MeetingStatusCompleted, time.Now().Add(-24*time.Hour))
	pending := seedMeeting(store, m, entity.MeetingStatusPending, time.Now())
	svc := NewFeedbackService(&fakeFactory{store: store}, logger.NewNopLogger())
	ctx := context.Background()

	res, err := svc.Create(ctx, m.mentee.Id, &dto.FeedbackRequest{MeetingId: completed.Id.String(), Rating: 4, Comment: "Very helpful"})
	require.NoError(t, err)
	assert.Equal(t, m.mentor.Id, res.MentorId)
	assert.Equal(t, 4.0, store.mentors[0].Rating)
	assert.Equal(t, 1, store.mentors[0].RatingCount)

	_, err = svc.Create(ctx, m.mentee.Id, &dto.FeedbackRequest{MeetingId: completed.Id.String(), Rating: 1})
	assert.ErrorIs(t, err, ErrFeedbackExists)

	_, err = svc.Create(ctx, m.mentee.Id, &dto.FeedbackRequest{MeetingId: pending.Id.String(), Rating: 5})
	assert.Error(t, err)

	_, err = svc.Create(ctx, uuid.New(), &dto.FeedbackRequest{MeetingId: completed.Id.String(), Rating: 5})
	assert.ErrorIs(t, err, ErrForbidden)

	list, err := svc.ListMentorFeedback(ctx, m.mentor.Id)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
