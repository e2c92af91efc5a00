package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/mailer"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"
	"mentoria-be/pkg/events"
	"mentoria-be/pkg/lock"
	"mentoria-be/pkg/payment"

	"github.com/google/uuid"
)

const checkoutModule = "CHECKOUT"

// Checkout session metadata keys. Fulfillment rebuilds the booking from these.
const (
	metaMenteeID       = "mentee_id"
	metaMentorID       = "mentor_id"
	metaPlanID         = "plan_id"
	metaDate           = "date"
	metaStartTime      = "start_time"
	metaEndTime        = "end_time"
	metaMessage        = "message"
	metaDiscountID     = "discount_id"
	metaPlanCharge     = "plan_charge"
	metaDiscountAmount = "discount_amount"
	metaFinalAmount    = "final_amount"
	metaHoldOwner      = "hold_owner"
)

type ICheckoutService interface {
	CreateCheckoutSession(ctx context.Context, menteeID uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	PreviewPrice(ctx context.Context, menteeID uuid.UUID, req *dto.CheckoutRequest) (*dto.PriceBreakdown, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	HandleCheckoutSessionCompleted(ctx context.Context, event *payment.SessionEvent) error
	ListInvoices(ctx context.Context, userID uuid.UUID, role string) ([]*dto.InvoiceResponse, error)
}

// Stripe accepts session expiries between 30 minutes and 24 hours after
// creation. The lower bound keeps a margin for request latency.
const (
	minSessionLifetime = 31 * time.Minute
	maxSessionLifetime = 24 * time.Hour
)

type CheckoutOptions struct {
	Currency          string
	HoldTTL           time.Duration
	BalanceRetryDelay time.Duration
}

type checkoutService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    payment.Gateway
	holder     lock.Holder
	emails     EmailQueue
	publisher  events.Publisher
	logger     logger.ILogger
	opts       CheckoutOptions
	now        func() time.Time
}

func NewCheckoutService(
	uowFactory unitofwork.RepositoryFactory,
	gateway payment.Gateway,
	holder lock.Holder,
	emails EmailQueue,
	publisher events.Publisher,
	log logger.ILogger,
	opts CheckoutOptions,
) ICheckoutService {
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	// The hold must outlive the session it guards.
	if opts.HoldTTL < minSessionLifetime {
		opts.HoldTTL = minSessionLifetime
	}
	if opts.HoldTTL > maxSessionLifetime {
		opts.HoldTTL = maxSessionLifetime
	}
	return &checkoutService{
		uowFactory: uowFactory,
		gateway:    gateway,
		holder:     holder,
		emails:     emails,
		publisher:  publisher,
		logger:     log,
		opts:       opts,
		now:        time.Now,
	}
}

// checkoutQuote is a validated booking request with its price.
type checkoutQuote struct {
	mentee   *entity.User
	mentor   *entity.Mentor
	plan     *entity.Plan
	slot     *entity.Slot
	discount *entity.Discount
	price    dto.PriceBreakdown
}

func (s *checkoutService) quote(ctx context.Context, menteeID uuid.UUID, req *dto.CheckoutRequest) (*checkoutQuote, error) {
	mentorID, err := uuid.Parse(req.MentorId)
	if err != nil {
		return nil, ErrMentorNotFound
	}
	planID, err := uuid.Parse(req.PlanId)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	key, err := parseSlotKey(mentorID, planID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	mentee, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: menteeID})
	if err != nil {
		return nil, err
	}
	if mentee == nil || mentee.Role != entity.UserRoleMentee {
		return nil, ErrMenteeNotFound
	}

	mentor, err := uow.MentorRepository().FindByUserId(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planID})
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.MentorId != mentorID {
		return nil, ErrPlanNotFound
	}
	if !plan.IsActive {
		return nil, ErrPlanInactive
	}

	slot, err := uow.SlotRepository().FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	if slot.Status != entity.SlotStatusAvailable || !slot.StartTime.After(s.now()) {
		return nil, ErrSlotUnavailable
	}

	q := &checkoutQuote{mentee: mentee, mentor: mentor, plan: plan, slot: slot}

	if req.DiscountId != nil && *req.DiscountId != "" {
		discountID, err := uuid.Parse(*req.DiscountId)
		if err != nil {
			return nil, ErrInvalidDiscount
		}
		discount, err := uow.DiscountRepository().FindOne(ctx, specification.ByID{ID: discountID})
		if err != nil {
			return nil, err
		}
		if discount == nil {
			return nil, ErrInvalidDiscount
		}
		if err := checkDiscountUsable(discount, mentorID, s.now()); err != nil {
			return nil, err
		}
		q.discount = discount
	}

	discountAmount := DiscountAmount(plan.Charge, q.discount)
	q.price = dto.PriceBreakdown{
		PlanCharge:     plan.Charge,
		DiscountAmount: discountAmount,
		FinalAmount:    roundCents(plan.Charge - discountAmount),
		Currency:       s.opts.Currency,
	}
	if q.price.FinalAmount <= 0 {
		return nil, ErrFreeCheckout
	}
	return q, nil
}

func (s *checkoutService) PreviewPrice(ctx context.Context, menteeID uuid.UUID, req *dto.CheckoutRequest) (*dto.PriceBreakdown, error) {
	q, err := s.quote(ctx, menteeID, req)
	if err != nil {
		return nil, err
	}
	return &q.price, nil
}

func (s *checkoutService) CreateCheckoutSession(ctx context.Context, menteeID uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	q, err := s.quote(ctx, menteeID, req)
	if err != nil {
		return nil, err
	}

	holdKey := q.slot.DisplayId()
	owner := uuid.NewString()
	if err := s.holder.Acquire(ctx, holdKey, owner, s.opts.HoldTTL); err != nil {
		if errors.Is(err, lock.ErrHeld) {
			return nil, ErrSlotHeld
		}
		return nil, fmt.Errorf("acquire slot hold: %w", err)
	}

	discountID := ""
	if q.discount != nil {
		discountID = q.discount.Id.String()
	}
	expiresAt := s.now().Add(s.opts.HoldTTL)

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		ProductName:   q.plan.Title,
		Description:   fmt.Sprintf("%s, %s %s-%s", mentorName(q.mentor), q.slot.Date.Format(entity.DateLayout), q.slot.StartTime.Format(entity.TimeLayout), q.slot.EndTime.Format(entity.TimeLayout)),
		AmountCents:   payment.ToCents(q.price.FinalAmount),
		Currency:      q.price.Currency,
		CustomerEmail: q.mentee.Email,
		ExpiresAt:     expiresAt,
		Metadata: map[string]string{
			metaMenteeID:       q.mentee.Id.String(),
			metaMentorID:       q.mentor.UserId.String(),
			metaPlanID:         q.plan.Id.String(),
			metaDate:           q.slot.Date.Format(entity.DateLayout),
			metaStartTime:      q.slot.StartTime.Format(time.RFC3339),
			metaEndTime:        q.slot.EndTime.Format(time.RFC3339),
			metaMessage:        req.Message,
			metaDiscountID:     discountID,
			metaPlanCharge:     formatAmount(q.price.PlanCharge),
			metaDiscountAmount: formatAmount(q.price.DiscountAmount),
			metaFinalAmount:    formatAmount(q.price.FinalAmount),
			metaHoldOwner:      owner,
		},
	})
	if err != nil {
		if relErr := s.holder.Release(ctx, holdKey, owner); relErr != nil {
			s.logger.Warn(checkoutModule, "Failed to release slot hold", map[string]interface{}{"slot_id": holdKey, "error": relErr.Error()})
		}
		s.logger.Error(checkoutModule, "Failed to create checkout session", map[string]interface{}{
			"mentee_id": menteeID,
			"slot_id":   holdKey,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.Info(checkoutModule, "Checkout session created", map[string]interface{}{
		"session_id": session.ID,
		"mentee_id":  menteeID,
		"slot_id":    holdKey,
		"amount":     q.price.FinalAmount,
	})

	return &dto.CheckoutResponse{
		SessionId:      session.ID,
		URL:            session.URL,
		ExpiresAt:      session.ExpiresAt,
		PriceBreakdown: q.price,
	}, nil
}

func (s *checkoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		s.logger.Warn(checkoutModule, "Rejected webhook", map[string]interface{}{"error": err.Error()})
		return ErrInvalidSignature
	}

	switch event.Type {
	case payment.EventCheckoutCompleted:
		return s.HandleCheckoutSessionCompleted(ctx, event)
	case payment.EventCheckoutExpired:
		s.releaseHold(ctx, event.Metadata)
		s.logger.Info(checkoutModule, "Checkout session expired", map[string]interface{}{"session_id": event.SessionID})
		return nil
	default:
		s.logger.Debug(checkoutModule, "Ignoring webhook event", map[string]interface{}{"type": event.Type, "id": event.ID})
		return nil
	}
}

// bookingInput is what a completed session's metadata describes.
type bookingInput struct {
	menteeID       uuid.UUID
	discountID     *uuid.UUID
	slot           entity.SlotKey
	message        string
	planCharge     float64
	discountAmount float64
	finalAmount    float64
}

func parseBookingInput(meta map[string]string) (*bookingInput, error) {
	menteeID, err := uuid.Parse(meta[metaMenteeID])
	if err != nil {
		return nil, ErrMissingMetadata
	}
	mentorID, err := uuid.Parse(meta[metaMentorID])
	if err != nil {
		return nil, ErrMissingMetadata
	}
	planID, err := uuid.Parse(meta[metaPlanID])
	if err != nil {
		return nil, ErrMissingMetadata
	}
	key, err := parseSlotKey(mentorID, planID, meta[metaDate], meta[metaStartTime], meta[metaEndTime])
	if err != nil {
		return nil, ErrMissingMetadata
	}

	in := &bookingInput{menteeID: menteeID, slot: key, message: meta[metaMessage]}
	if raw := meta[metaDiscountID]; raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrMissingMetadata
		}
		in.discountID = &id
	}
	if in.planCharge, err = strconv.ParseFloat(meta[metaPlanCharge], 64); err != nil {
		return nil, ErrMissingMetadata
	}
	if raw := meta[metaDiscountAmount]; raw != "" {
		if in.discountAmount, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, ErrMissingMetadata
		}
	}
	in.finalAmount = roundCents(in.planCharge - in.discountAmount)
	return in, nil
}

func (s *checkoutService) HandleCheckoutSessionCompleted(ctx context.Context, event *payment.SessionEvent) error {
	processed, err := s.alreadyProcessed(ctx, event.SessionID)
	if err != nil {
		return err
	}
	if processed {
		s.logger.Info(checkoutModule, "Duplicate webhook ignored", map[string]interface{}{"session_id": event.SessionID})
		return nil
	}

	in, err := parseBookingInput(event.Metadata)
	if err != nil {
		return s.fail(ctx, event, err)
	}

	details, err := s.fetchPaymentDetails(ctx, event.PaymentIntentID)
	if err != nil {
		return s.fail(ctx, event, err)
	}

	meeting, err := s.fulfill(ctx, event, in, details)
	if err != nil {
		// A concurrent delivery of the same session may have won the race.
		if processed, checkErr := s.alreadyProcessed(ctx, event.SessionID); checkErr == nil && processed {
			return nil
		}
		return s.fail(ctx, event, err)
	}

	s.logger.Info(checkoutModule, "Booking fulfilled", map[string]interface{}{
		"session_id": event.SessionID,
		"meeting_id": meeting.Id,
		"slot_id":    in.slot.DisplayId(),
	})

	s.releaseHold(ctx, event.Metadata)
	s.announceBooking(ctx, meeting, details)
	return nil
}

func (s *checkoutService) alreadyProcessed(ctx context.Context, sessionID string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.WebhookEventRepository().FindBySessionId(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.Status == entity.WebhookEventProcessed, nil
}

// fetchPaymentDetails retries once when Stripe has not attached the balance
// transaction yet. A second miss is accepted with fee and net left unknown.
func (s *checkoutService) fetchPaymentDetails(ctx context.Context, paymentIntentID string) (*payment.PaymentDetails, error) {
	if paymentIntentID == "" {
		return &payment.PaymentDetails{PaidAt: s.now()}, nil
	}
	details, err := s.gateway.FetchPaymentDetails(ctx, paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment details: %w", err)
	}
	if details.BalanceTransactionID != "" {
		return details, nil
	}

	s.logger.Warn(checkoutModule, "Balance transaction not attached yet, retrying", map[string]interface{}{"payment_intent": paymentIntentID})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.opts.BalanceRetryDelay):
	}

	retried, err := s.gateway.FetchPaymentDetails(ctx, paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment details: %w", err)
	}
	return retried, nil
}

func (s *checkoutService) fulfill(ctx context.Context, event *payment.SessionEvent, in *bookingInput, details *payment.PaymentDetails) (*entity.Meeting, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := s.now()

	registration := &entity.PlanRegistration{
		Id:         uuid.New(),
		MenteeId:   in.menteeID,
		PlanId:     in.slot.PlanId,
		Message:    in.message,
		DiscountId: in.discountID,
		CreatedAt:  now,
	}
	if err := uow.BookingRepository().CreateRegistration(ctx, registration); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	currency := event.Currency
	if currency == "" {
		currency = s.opts.Currency
	}
	paidAt := details.PaidAt
	if paidAt.IsZero() {
		paidAt = now
	}
	invoice := &entity.Invoice{
		Id:                   uuid.New(),
		RegistrationId:       registration.Id,
		MenteeId:             in.menteeID,
		MentorId:             in.slot.MentorId,
		PlanId:               in.slot.PlanId,
		PlanCharge:           in.planCharge,
		DiscountAmount:       in.discountAmount,
		FinalAmount:          in.finalAmount,
		Currency:             currency,
		StripeSessionId:      event.SessionID,
		PaymentIntentId:      event.PaymentIntentID,
		ChargeId:             details.ChargeID,
		BalanceTransactionId: details.BalanceTransactionID,
		ReceiptURL:           details.ReceiptURL,
		NetAmount:            in.finalAmount,
		PaidAt:               paidAt,
		CreatedAt:            now,
	}
	if details.BalanceTransactionID != "" {
		invoice.StripeFee = payment.FromCents(details.FeeCents)
		invoice.NetAmount = payment.FromCents(details.NetCents)
	}
	if err := uow.BookingRepository().CreateInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	booking := &entity.Booking{
		Id:             uuid.New(),
		RegistrationId: registration.Id,
		MenteeId:       in.menteeID,
		PlanId:         in.slot.PlanId,
		Slot:           in.slot,
		CreatedAt:      now,
	}
	if err := uow.BookingRepository().CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booked, err := uow.SlotRepository().MarkBooked(ctx, in.slot)
	if err != nil {
		return nil, fmt.Errorf("mark slot booked: %w", err)
	}
	if !booked {
		return nil, ErrSlotAlreadyBooked
	}

	meeting := &entity.Meeting{
		Id:        uuid.New(),
		BookingId: booking.Id,
		MentorId:  in.slot.MentorId,
		MenteeId:  in.menteeID,
		PlanId:    in.slot.PlanId,
		Slot:      in.slot,
		Status:    entity.MeetingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.MeetingRepository().Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	if in.discountID != nil {
		incremented, err := uow.DiscountRepository().IncrementUsage(ctx, *in.discountID)
		if err != nil {
			return nil, fmt.Errorf("increment discount usage: %w", err)
		}
		if !incremented {
			return nil, ErrDiscountExhausted
		}
	}

	processedAt := now
	if err := uow.WebhookEventRepository().MarkProcessed(ctx, &entity.WebhookEvent{
		Id:              uuid.New(),
		Provider:        "stripe",
		ProviderEventId: event.ID,
		SessionId:       event.SessionID,
		EventType:       event.Type,
		Payload:         event.Raw,
		Status:          entity.WebhookEventProcessed,
		ProcessedAt:     &processedAt,
		CreatedAt:       now,
	}); err != nil {
		return nil, fmt.Errorf("record webhook event: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return meeting, nil
}

// unfulfillable reports failures that a redelivery of the same event cannot
// fix. The payment has to be refunded by hand.
func unfulfillable(err error) bool {
	return errors.Is(err, ErrSlotAlreadyBooked) ||
		errors.Is(err, ErrDiscountExhausted) ||
		errors.Is(err, ErrMissingMetadata)
}

// fail records the failed delivery outside the rolled back transaction.
// Transient causes are returned so the webhook is answered with 500 and
// Stripe retries; unfulfillable ones are acknowledged.
func (s *checkoutService) fail(ctx context.Context, event *payment.SessionEvent, cause error) error {
	s.logger.Error(checkoutModule, "Checkout fulfillment failed", map[string]interface{}{
		"session_id": event.SessionID,
		"event_id":   event.ID,
		"error":      cause.Error(),
	})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WebhookEventRepository().MarkFailed(ctx, &entity.WebhookEvent{
		Id:              uuid.New(),
		Provider:        "stripe",
		ProviderEventId: event.ID,
		SessionId:       event.SessionID,
		EventType:       event.Type,
		Payload:         event.Raw,
		Status:          entity.WebhookEventFailed,
		Error:           cause.Error(),
		CreatedAt:       s.now(),
	}); err != nil {
		s.logger.Error(checkoutModule, "Failed to record webhook failure", map[string]interface{}{
			"session_id": event.SessionID,
			"error":      err.Error(),
		})
	}

	if unfulfillable(cause) {
		s.logger.Error(checkoutModule, "Paid checkout cannot be fulfilled, refund required", map[string]interface{}{
			"session_id":     event.SessionID,
			"payment_intent": event.PaymentIntentID,
			"amount_cents":   event.AmountTotal,
		})
		s.releaseHold(ctx, event.Metadata)
		return nil
	}
	return fmt.Errorf("fulfill checkout session %s: %w", event.SessionID, cause)
}

func (s *checkoutService) releaseHold(ctx context.Context, meta map[string]string) {
	mentorID, err1 := uuid.Parse(meta[metaMentorID])
	planID, err2 := uuid.Parse(meta[metaPlanID])
	if err1 != nil || err2 != nil {
		return
	}
	key, err := parseSlotKey(mentorID, planID, meta[metaDate], meta[metaStartTime], meta[metaEndTime])
	if err != nil {
		return
	}

	holdKey := key.DisplayId()
	if owner := meta[metaHoldOwner]; owner != "" {
		err = s.holder.Release(ctx, holdKey, owner)
	} else {
		err = s.holder.ForceRelease(ctx, holdKey)
	}
	if err != nil {
		s.logger.Warn(checkoutModule, "Failed to release slot hold", map[string]interface{}{"slot_id": holdKey, "error": err.Error()})
	}
}

func (s *checkoutService) announceBooking(ctx context.Context, meeting *entity.Meeting, details *payment.PaymentDetails) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	detail, err := uow.MeetingRepository().FindDetail(ctx, meeting.Id)
	if err != nil || detail == nil {
		s.logger.Warn(checkoutModule, "Could not load meeting for confirmation", map[string]interface{}{"meeting_id": meeting.Id})
		return
	}

	booking := mailer.BookingDetails{
		MentorName: detail.MentorName,
		MenteeName: detail.MenteeName,
		PlanTitle:  detail.PlanTitle,
		Date:       detail.Slot.Date.Format(entity.DateLayout),
		StartTime:  detail.Slot.StartTime.Format(entity.TimeLayout),
		EndTime:    detail.Slot.EndTime.Format(entity.TimeLayout),
		Amount:     detail.FinalAmount,
		Currency:   detail.Currency,
		ReceiptURL: details.ReceiptURL,
	}
	toMentee := booking
	toMentee.RecipientName = detail.MenteeName
	toMentor := booking
	toMentor.RecipientName = detail.MentorName

	enqueueEmail(ctx, s.emails, s.logger, checkoutModule, mailer.BookingConfirmationEmail(detail.MenteeEmail, toMentee))
	enqueueEmail(ctx, s.emails, s.logger, checkoutModule, mailer.BookingConfirmationEmail(detail.MentorEmail, toMentor))

	publishEvent(ctx, s.publisher, s.logger, checkoutModule, events.BookingConfirmed, map[string]interface{}{
		"meeting_id": meeting.Id.String(),
		"booking_id": meeting.BookingId.String(),
		"mentee_id":  meeting.MenteeId.String(),
		"mentor_id":  meeting.MentorId.String(),
		"plan_title": detail.PlanTitle,
		"slot_id":    meeting.Slot.DisplayId(),
	})
}

func (s *checkoutService) ListInvoices(ctx context.Context, userID uuid.UUID, role string) ([]*dto.InvoiceResponse, error) {
	specs := []specification.Specification{specification.OrderBy{Field: "paid_at", Desc: true}}
	switch entity.UserRole(role) {
	case entity.UserRoleMentee:
		specs = append(specs, specification.Filter("mentee_id", userID))
	case entity.UserRoleMentor:
		specs = append(specs, specification.Filter("mentor_id", userID))
	case entity.UserRoleAdmin:
	default:
		return nil, ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	invoices, err := uow.BookingRepository().FindInvoices(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		res = append(res, &dto.InvoiceResponse{
			Id:             inv.Id,
			PlanId:         inv.PlanId,
			MentorId:       inv.MentorId,
			MenteeId:       inv.MenteeId,
			PlanCharge:     inv.PlanCharge,
			DiscountAmount: inv.DiscountAmount,
			FinalAmount:    inv.FinalAmount,
			Currency:       inv.Currency,
			ReceiptURL:     inv.ReceiptURL,
			PaidAt:         inv.PaidAt,
		})
	}
	return res, nil
}

func mentorName(m *entity.Mentor) string {
	if m.User == nil {
		return "Mentor"
	}
	return m.User.FullName
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
