package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/mailer"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"
	"mentoria-be/pkg/events"
	"mentoria-be/pkg/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memStore is an in-memory database for service tests. Rows are stored by
// value so a transaction snapshot is a plain copy of the slices.
type memStore struct {
	users         []entity.User
	mentors       []entity.Mentor
	mentees       []entity.Mentee
	plans         []entity.Plan
	slots         []entity.Slot
	discounts     []entity.Discount
	registrations []entity.PlanRegistration
	invoices      []entity.Invoice
	bookings      []entity.Booking
	meetings      []entity.Meeting
	complaints    []entity.Complaint
	feedback      []entity.Feedback
	payouts       []entity.Payout
	webhooks      []entity.WebhookEvent

	// failOn makes the named repository method return the mapped error.
	failOn map[string]error
	now    func() time.Time

	// afterMeetingRead runs once after the next meeting lookup, standing in
	// for another transaction that commits in between.
	afterMeetingRead func(s *memStore)
	// external holds changes committed by other transactions. Rollback
	// replays them on top of the snapshot.
	external []func(s *memStore)
}

func newMemStore() *memStore {
	return &memStore{failOn: map[string]error{}, now: time.Now}
}

func (s *memStore) clone() memStore {
	c := *s
	c.users = append([]entity.User(nil), s.users...)
	c.mentors = append([]entity.Mentor(nil), s.mentors...)
	c.mentees = append([]entity.Mentee(nil), s.mentees...)
	c.plans = append([]entity.Plan(nil), s.plans...)
	c.slots = append([]entity.Slot(nil), s.slots...)
	c.discounts = append([]entity.Discount(nil), s.discounts...)
	c.registrations = append([]entity.PlanRegistration(nil), s.registrations...)
	c.invoices = append([]entity.Invoice(nil), s.invoices...)
	c.bookings = append([]entity.Booking(nil), s.bookings...)
	c.meetings = append([]entity.Meeting(nil), s.meetings...)
	c.complaints = append([]entity.Complaint(nil), s.complaints...)
	c.feedback = append([]entity.Feedback(nil), s.feedback...)
	c.payouts = append([]entity.Payout(nil), s.payouts...)
	c.webhooks = append([]entity.WebhookEvent(nil), s.webhooks...)
	return c
}

// commitExternally applies fn as if another transaction committed it.
func (s *memStore) commitExternally(fn func(s *memStore)) {
	fn(s)
	s.external = append(s.external, fn)
}

func (s *memStore) fail(method string) error {
	return s.failOn[method]
}

// ---------------------------------------------------------------------------
// Specification interpreter
// ---------------------------------------------------------------------------

// column resolves a snake_case column, optionally table-qualified, to the
// matching exported field.
func column(v reflect.Value, name string) reflect.Value {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return v.FieldByName(strings.Join(parts, ""))
}

func equalValue(field reflect.Value, want interface{}) bool {
	if !field.IsValid() {
		return false
	}
	got := field.Interface()
	if gt, ok := got.(time.Time); ok {
		wt, ok := want.(time.Time)
		return ok && gt.Equal(wt)
	}
	return fmt.Sprint(got) == fmt.Sprint(want)
}

func matches(row reflect.Value, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if !equalValue(column(row, "id"), s.ID) {
				return false
			}
		case specification.FilterBy:
			if !equalValue(column(row, s.Field), s.Value) {
				return false
			}
		case specification.OnOrAfter:
			t, ok := column(row, s.Field).Interface().(time.Time)
			if !ok || t.Before(s.At) {
				return false
			}
		case specification.ByCode:
			if !strings.EqualFold(column(row, "code").String(), s.Code) {
				return false
			}
		case specification.UserSearch:
			q := strings.ToLower(s.Query)
			email := strings.ToLower(column(row, "email").String())
			name := strings.ToLower(column(row, "full_name").String())
			if !strings.Contains(email, q) && !strings.Contains(name, q) {
				return false
			}
		}
	}
	return true
}

// selectRows filters then paginates. Ordering follows insertion.
func selectRows[T any](rows []T, specs []specification.Specification) []T {
	var out []T
	for i := range rows {
		if matches(reflect.ValueOf(rows[i]), specs) {
			out = append(out, rows[i])
		}
	}
	for _, sp := range specs {
		if p, ok := sp.(specification.Pagination); ok {
			if p.Offset >= len(out) {
				return nil
			}
			out = out[p.Offset:]
			if p.Limit > 0 && p.Limit < len(out) {
				out = out[:p.Limit]
			}
		}
	}
	return out
}

func findOne[T any](rows []T, specs []specification.Specification) *T {
	found := selectRows(rows, specs)
	if len(found) == 0 {
		return nil
	}
	return &found[0]
}

func ptrs[T any](rows []T) []*T {
	out := make([]*T, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out
}

func idOf(row interface{}) uuid.UUID {
	id, _ := reflect.ValueOf(row).FieldByName("Id").Interface().(uuid.UUID)
	return id
}

func replaceByID[T any](rows []T, row T) bool {
	id := idOf(row)
	for i := range rows {
		if idOf(rows[i]) == id {
			rows[i] = row
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Unit of work
// ---------------------------------------------------------------------------

type fakeFactory struct {
	store *memStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{store: f.store}
}

type fakeUoW struct {
	store *memStore
	snap  *memStore
}

func (u *fakeUoW) Begin(ctx context.Context) error {
	snap := u.store.clone()
	u.snap = &snap
	return nil
}

func (u *fakeUoW) Commit() error {
	if err := u.store.fail("Commit"); err != nil {
		return err
	}
	u.snap = nil
	return nil
}

func (u *fakeUoW) Rollback() error {
	if u.snap != nil {
		committed := append([]func(s *memStore)(nil), u.store.external[len(u.snap.external):]...)
		*u.store = *u.snap
		for _, fn := range committed {
			u.store.commitExternally(fn)
		}
		u.snap = nil
	}
	return nil
}

func (u *fakeUoW) UserRepository() contract.UserRepository           { return memUsers{u.store} }
func (u *fakeUoW) MentorRepository() contract.MentorRepository       { return memMentors{u.store} }
func (u *fakeUoW) MenteeRepository() contract.MenteeRepository       { return memMentees{u.store} }
func (u *fakeUoW) PlanRepository() contract.PlanRepository           { return memPlans{u.store} }
func (u *fakeUoW) SlotRepository() contract.SlotRepository           { return memSlots{u.store} }
func (u *fakeUoW) DiscountRepository() contract.DiscountRepository   { return memDiscounts{u.store} }
func (u *fakeUoW) BookingRepository() contract.BookingRepository     { return memBookings{u.store} }
func (u *fakeUoW) MeetingRepository() contract.MeetingRepository     { return memMeetings{u.store} }
func (u *fakeUoW) ComplaintRepository() contract.ComplaintRepository { return memComplaints{u.store} }
func (u *fakeUoW) FeedbackRepository() contract.FeedbackRepository   { return memFeedback{u.store} }
func (u *fakeUoW) PayoutRepository() contract.PayoutRepository       { return memPayouts{u.store} }
func (u *fakeUoW) WebhookEventRepository() contract.WebhookEventRepository {
	return memWebhooks{u.store}
}

// ---------------------------------------------------------------------------
// Repositories
// ---------------------------------------------------------------------------

type memUsers struct{ s *memStore }

func (r memUsers) Create(ctx context.Context, user *entity.User) error {
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r memUsers) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return findOne(r.s.users, specs), nil
}

func (r memUsers) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return ptrs(selectRows(r.s.users, specs)), nil
}

func (r memUsers) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(selectRows(r.s.users, specs))), nil
}

func (r memUsers) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	for i := range r.s.users {
		if r.s.users[i].Id == id {
			r.s.users[i].Status = status
		}
	}
	return nil
}

func (s *memStore) user(id uuid.UUID) *entity.User {
	for i := range s.users {
		if s.users[i].Id == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

type memMentors struct{ s *memStore }

func (r memMentors) Create(ctx context.Context, mentor *entity.Mentor) error {
	m := *mentor
	m.User = nil
	r.s.mentors = append(r.s.mentors, m)
	return nil
}

func (r memMentors) Update(ctx context.Context, mentor *entity.Mentor) error {
	for i := range r.s.mentors {
		if r.s.mentors[i].UserId == mentor.UserId {
			m := *mentor
			m.User = nil
			r.s.mentors[i] = m
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r memMentors) FindByUserId(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error) {
	for _, m := range r.s.mentors {
		if m.UserId == userID {
			m.User = r.s.user(userID)
			return &m, nil
		}
	}
	return nil, nil
}

func (r memMentors) Search(ctx context.Context, f contract.MentorSearchFilter) ([]*entity.MentorSummary, int64, error) {
	var out []*entity.MentorSummary
	for _, m := range r.s.mentors {
		m.User = r.s.user(m.UserId)
		if m.User == nil || m.User.Status == entity.UserStatusBanned {
			continue
		}
		if f.Query != "" {
			q := strings.ToLower(f.Query)
			if !strings.Contains(strings.ToLower(m.User.FullName), q) && !strings.Contains(strings.ToLower(m.Headline), q) {
				continue
			}
		}
		if f.Skill != "" {
			found := false
			for _, sk := range m.Skills {
				if strings.EqualFold(sk, f.Skill) {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		sum := &entity.MentorSummary{Mentor: m}
		for _, p := range r.s.plans {
			if p.MentorId == m.UserId && p.IsActive {
				sum.PlanCount++
				if sum.StartingPrice == nil || p.Charge < *sum.StartingPrice {
					price := p.Charge
					sum.StartingPrice = &price
				}
			}
		}
		if f.MinPrice != nil && (sum.StartingPrice == nil || *sum.StartingPrice < *f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && (sum.StartingPrice == nil || *sum.StartingPrice > *f.MaxPrice) {
			continue
		}
		out = append(out, sum)
	}
	total := int64(len(out))
	if f.Offset >= len(out) {
		return nil, total, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (r memMentors) RefreshRating(ctx context.Context, mentorID uuid.UUID) error {
	var sum, n int
	for _, f := range r.s.feedback {
		if f.MentorId == mentorID {
			sum += f.Rating
			n++
		}
	}
	for i := range r.s.mentors {
		if r.s.mentors[i].UserId == mentorID {
			r.s.mentors[i].RatingCount = n
			if n > 0 {
				r.s.mentors[i].Rating = float64(sum) / float64(n)
			}
		}
	}
	return nil
}

type memMentees struct{ s *memStore }

func (r memMentees) Create(ctx context.Context, mentee *entity.Mentee) error {
	m := *mentee
	m.User = nil
	r.s.mentees = append(r.s.mentees, m)
	return nil
}

func (r memMentees) FindByUserId(ctx context.Context, userID uuid.UUID) (*entity.Mentee, error) {
	for _, m := range r.s.mentees {
		if m.UserId == userID {
			m.User = r.s.user(userID)
			return &m, nil
		}
	}
	return nil, nil
}

type memPlans struct{ s *memStore }

func (r memPlans) Create(ctx context.Context, plan *entity.Plan) error {
	r.s.plans = append(r.s.plans, *plan)
	return nil
}

func (r memPlans) Update(ctx context.Context, plan *entity.Plan) error {
	if !replaceByID(r.s.plans, *plan) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r memPlans) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	return findOne(r.s.plans, specs), nil
}

func (r memPlans) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	return ptrs(selectRows(r.s.plans, specs)), nil
}

type memSlots struct{ s *memStore }

func (r memSlots) index(key entity.SlotKey) int {
	for i := range r.s.slots {
		if r.s.slots[i].SlotKey.Equal(key) {
			return i
		}
	}
	return -1
}

func (r memSlots) Create(ctx context.Context, slot *entity.Slot) error {
	if r.index(slot.SlotKey) >= 0 {
		return contract.ErrDuplicate
	}
	r.s.slots = append(r.s.slots, *slot)
	return nil
}

func (r memSlots) FindByKey(ctx context.Context, key entity.SlotKey) (*entity.Slot, error) {
	if i := r.index(key); i >= 0 {
		slot := r.s.slots[i]
		return &slot, nil
	}
	return nil, nil
}

func (r memSlots) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Slot, error) {
	rows := selectRows(r.s.slots, specs)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].StartTime.Before(rows[j].StartTime) })
	return ptrs(rows), nil
}

func (r memSlots) Replace(ctx context.Context, oldKey entity.SlotKey, slot *entity.Slot) (bool, error) {
	i := r.index(oldKey)
	if i < 0 || r.s.slots[i].Status != entity.SlotStatusAvailable {
		return false, nil
	}
	if j := r.index(slot.SlotKey); j >= 0 && j != i {
		return false, contract.ErrDuplicate
	}
	r.s.slots[i] = *slot
	return true, nil
}

func (r memSlots) Delete(ctx context.Context, key entity.SlotKey) (bool, error) {
	i := r.index(key)
	if i < 0 || r.s.slots[i].Status != entity.SlotStatusAvailable {
		return false, nil
	}
	r.s.slots = append(r.s.slots[:i:i], r.s.slots[i+1:]...)
	return true, nil
}

func (r memSlots) MarkBooked(ctx context.Context, key entity.SlotKey) (bool, error) {
	if err := r.s.fail("MarkBooked"); err != nil {
		return false, err
	}
	i := r.index(key)
	if i < 0 || r.s.slots[i].Status != entity.SlotStatusAvailable {
		return false, nil
	}
	r.s.slots[i].Status = entity.SlotStatusBooked
	return true, nil
}

type memDiscounts struct{ s *memStore }

func (r memDiscounts) Create(ctx context.Context, discount *entity.Discount) error {
	for _, d := range r.s.discounts {
		if strings.EqualFold(d.Code, discount.Code) {
			return contract.ErrDuplicate
		}
	}
	r.s.discounts = append(r.s.discounts, *discount)
	return nil
}

func (r memDiscounts) Update(ctx context.Context, discount *entity.Discount) error {
	if !replaceByID(r.s.discounts, *discount) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r memDiscounts) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Discount, error) {
	return findOne(r.s.discounts, specs), nil
}

func (r memDiscounts) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Discount, error) {
	return ptrs(selectRows(r.s.discounts, specs)), nil
}

func (r memDiscounts) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range r.s.discounts {
		d := &r.s.discounts[i]
		if d.Id == id && d.UsedCount < d.UsageLimit {
			d.UsedCount++
			return true, nil
		}
	}
	return false, nil
}

type memBookings struct{ s *memStore }

func (r memBookings) CreateRegistration(ctx context.Context, registration *entity.PlanRegistration) error {
	r.s.registrations = append(r.s.registrations, *registration)
	return nil
}

func (r memBookings) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	r.s.bookings = append(r.s.bookings, *booking)
	return nil
}

func (r memBookings) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	if err := r.s.fail("CreateInvoice"); err != nil {
		return err
	}
	for _, inv := range r.s.invoices {
		if inv.StripeSessionId == invoice.StripeSessionId {
			return contract.ErrDuplicate
		}
	}
	r.s.invoices = append(r.s.invoices, *invoice)
	return nil
}

func (r memBookings) FindInvoice(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error) {
	return findOne(r.s.invoices, specs), nil
}

func (r memBookings) FindInvoices(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error) {
	return ptrs(selectRows(r.s.invoices, specs)), nil
}

type memMeetings struct{ s *memStore }

func (r memMeetings) Create(ctx context.Context, meeting *entity.Meeting) error {
	r.s.meetings = append(r.s.meetings, *meeting)
	return nil
}

func (r memMeetings) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error) {
	found := findOne(r.s.meetings, specs)
	if hook := r.s.afterMeetingRead; hook != nil {
		r.s.afterMeetingRead = nil
		r.s.commitExternally(hook)
	}
	return found, nil
}

func (r memMeetings) SetLocation(ctx context.Context, id uuid.UUID, location string) (bool, error) {
	for i := range r.s.meetings {
		m := &r.s.meetings[i]
		if m.Id == id && (m.Status == entity.MeetingStatusPending || m.Status == entity.MeetingStatusScheduled) {
			m.Location = location
			m.Status = entity.MeetingStatusScheduled
			m.UpdatedAt = r.s.now()
			return true, nil
		}
	}
	return false, nil
}

func (r memMeetings) SetReviewLink(ctx context.Context, id uuid.UUID, link string) (bool, error) {
	for i := range r.s.meetings {
		m := &r.s.meetings[i]
		if m.Id == id && m.Status == entity.MeetingStatusCompleted {
			m.ReviewLink = link
			m.UpdatedAt = r.s.now()
			return true, nil
		}
	}
	return false, nil
}

func (r memMeetings) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.MeetingStatus) (bool, error) {
	for i := range r.s.meetings {
		m := &r.s.meetings[i]
		if m.Id == id && m.Status == from {
			m.Status = to
			m.UpdatedAt = r.s.now()
			return true, nil
		}
	}
	return false, nil
}

// invoiceFor follows meeting -> booking -> registration -> invoice.
func (s *memStore) invoiceFor(m entity.Meeting) *entity.Invoice {
	for _, b := range s.bookings {
		if b.Id != m.BookingId {
			continue
		}
		for _, inv := range s.invoices {
			if inv.RegistrationId == b.RegistrationId {
				return &inv
			}
		}
	}
	return nil
}

func (s *memStore) detail(m entity.Meeting) *entity.MeetingDetail {
	d := &entity.MeetingDetail{Meeting: m}
	if u := s.user(m.MentorId); u != nil {
		d.MentorName, d.MentorEmail = u.FullName, u.Email
	}
	if u := s.user(m.MenteeId); u != nil {
		d.MenteeName, d.MenteeEmail = u.FullName, u.Email
	}
	for _, p := range s.plans {
		if p.Id == m.PlanId {
			d.PlanTitle = p.Title
		}
	}
	if inv := s.invoiceFor(m); inv != nil {
		paidAt := inv.PaidAt
		d.FinalAmount, d.Currency, d.PaidAt = inv.FinalAmount, inv.Currency, &paidAt
	}
	return d
}

func (r memMeetings) FindDetail(ctx context.Context, id uuid.UUID) (*entity.MeetingDetail, error) {
	for _, m := range r.s.meetings {
		if m.Id == id {
			return r.s.detail(m), nil
		}
	}
	return nil, nil
}

func (r memMeetings) FindDetails(ctx context.Context, f contract.MeetingFilter) ([]*entity.MeetingDetail, int64, error) {
	var out []*entity.MeetingDetail
	for _, m := range r.s.meetings {
		if f.MentorId != uuid.Nil && m.MentorId != f.MentorId {
			continue
		}
		if f.MenteeId != uuid.Nil && m.MenteeId != f.MenteeId {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		out = append(out, r.s.detail(m))
	}
	total := int64(len(out))
	if f.Offset >= len(out) {
		return nil, total, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (r memMeetings) IsExpiredPending(ctx context.Context, meetingID, menteeID uuid.UUID, window time.Duration) (bool, error) {
	for _, m := range r.s.meetings {
		if m.Id != meetingID || m.MenteeId != menteeID || m.Status != entity.MeetingStatusPending {
			continue
		}
		inv := r.s.invoiceFor(m)
		return inv != nil && r.s.now().Sub(inv.PaidAt) > window, nil
	}
	return false, nil
}

type memComplaints struct{ s *memStore }

func (r memComplaints) Create(ctx context.Context, complaint *entity.Complaint) error {
	for _, c := range r.s.complaints {
		if c.MeetingId == complaint.MeetingId && c.MenteeId == complaint.MenteeId {
			return contract.ErrDuplicate
		}
	}
	r.s.complaints = append(r.s.complaints, *complaint)
	return nil
}

func (r memComplaints) Update(ctx context.Context, complaint *entity.Complaint) error {
	if !replaceByID(r.s.complaints, *complaint) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r memComplaints) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error) {
	return findOne(r.s.complaints, specs), nil
}

func (r memComplaints) FindAll(ctx context.Context, f contract.ComplaintFilter) ([]*entity.Complaint, int64, error) {
	var specs []specification.Specification
	if f.MenteeId != uuid.Nil {
		specs = append(specs, specification.Filter("mentee_id", f.MenteeId))
	}
	if f.Status != "" {
		specs = append(specs, specification.Filter("status", f.Status))
	}
	total := int64(len(selectRows(r.s.complaints, specs)))
	specs = append(specs, specification.Pagination{Limit: f.Limit, Offset: f.Offset})
	return ptrs(selectRows(r.s.complaints, specs)), total, nil
}

type memFeedback struct{ s *memStore }

func (r memFeedback) Create(ctx context.Context, feedback *entity.Feedback) error {
	for _, f := range r.s.feedback {
		if f.MeetingId == feedback.MeetingId {
			return contract.ErrDuplicate
		}
	}
	r.s.feedback = append(r.s.feedback, *feedback)
	return nil
}

func (r memFeedback) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	return findOne(r.s.feedback, specs), nil
}

func (r memFeedback) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	return ptrs(selectRows(r.s.feedback, specs)), nil
}

type memPayouts struct{ s *memStore }

func (r memPayouts) Create(ctx context.Context, payout *entity.Payout) error {
	r.s.payouts = append(r.s.payouts, *payout)
	return nil
}

func (r memPayouts) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payout, error) {
	return ptrs(selectRows(r.s.payouts, specs)), nil
}

func (r memPayouts) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(selectRows(r.s.payouts, specs))), nil
}

func (r memPayouts) balance(mentorID uuid.UUID) entity.MentorBalance {
	b := entity.MentorBalance{MentorId: mentorID}
	if u := r.s.user(mentorID); u != nil {
		b.MentorName = u.FullName
	}
	for _, inv := range r.s.invoices {
		if inv.MentorId == mentorID {
			b.Earned += inv.NetAmount
		}
	}
	for _, p := range r.s.payouts {
		if p.MentorId == mentorID && p.Status == entity.PayoutStatusPaid {
			b.PaidOut += p.Amount
		}
	}
	return b
}

func (r memPayouts) Balances(ctx context.Context) ([]entity.MentorBalance, error) {
	var out []entity.MentorBalance
	for _, m := range r.s.mentors {
		out = append(out, r.balance(m.UserId))
	}
	return out, nil
}

func (r memPayouts) BalanceOf(ctx context.Context, mentorID uuid.UUID) (entity.MentorBalance, error) {
	return r.balance(mentorID), nil
}

type memWebhooks struct{ s *memStore }

func (r memWebhooks) FindBySessionId(ctx context.Context, sessionID string) (*entity.WebhookEvent, error) {
	for _, e := range r.s.webhooks {
		if e.SessionId == sessionID {
			return &e, nil
		}
	}
	return nil, nil
}

func (r memWebhooks) MarkProcessed(ctx context.Context, event *entity.WebhookEvent) error {
	for i := range r.s.webhooks {
		if r.s.webhooks[i].SessionId == event.SessionId {
			r.s.webhooks[i] = *event
			return nil
		}
	}
	r.s.webhooks = append(r.s.webhooks, *event)
	return nil
}

func (r memWebhooks) MarkFailed(ctx context.Context, event *entity.WebhookEvent) error {
	for i := range r.s.webhooks {
		if r.s.webhooks[i].SessionId == event.SessionId {
			if r.s.webhooks[i].Status == entity.WebhookEventProcessed {
				return nil
			}
			r.s.webhooks[i] = *event
			return nil
		}
	}
	r.s.webhooks = append(r.s.webhooks, *event)
	return nil
}

// memNotifications backs the notification service, which sits outside the
// unit of work.
type memNotifications struct {
	mu   sync.Mutex
	rows []entity.Notification
}

func (r *memNotifications) Create(ctx context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *n)
	return nil
}

func (r *memNotifications) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := selectRows(r.rows, []specification.Specification{specification.Filter("user_id", userID)})
	total := int64(len(rows))
	rows = selectRows(rows, []specification.Specification{specification.Pagination{Limit: limit, Offset: offset}})
	return ptrs(rows), total, nil
}

func (r *memNotifications) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.UserId == userID && !row.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *memNotifications) MarkAsRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].Id == id && r.rows[i].UserId == userID {
			r.rows[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (r *memNotifications) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].UserId == userID {
			r.rows[i].IsRead = true
		}
	}
	return nil
}

func (r *memNotifications) forUser(userID uuid.UUID) []entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return selectRows(r.rows, []specification.Specification{specification.Filter("user_id", userID)})
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

type fakeGateway struct {
	mu        sync.Mutex
	createErr error
	requests  []payment.CheckoutRequest

	event    *payment.SessionEvent
	parseErr error

	// details are returned in order; the last one repeats.
	details    []*payment.PaymentDetails
	fetchErr   error
	fetchCalls int
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.createErr != nil {
		return nil, g.createErr
	}
	return &payment.CheckoutSession{
		ID:        fmt.Sprintf("cs_test_%d", len(g.requests)),
		URL:       "https://checkout.stripe.test/pay",
		ExpiresAt: req.ExpiresAt,
	}, nil
}

func (g *fakeGateway) ParseWebhook(payload []byte, signature string) (*payment.SessionEvent, error) {
	if g.parseErr != nil {
		return nil, g.parseErr
	}
	if g.event == nil {
		return nil, errors.New("no event")
	}
	return g.event, nil
}

func (g *fakeGateway) FetchPaymentDetails(ctx context.Context, paymentIntentID string) (*payment.PaymentDetails, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fetchCalls++
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	if len(g.details) == 0 {
		return &payment.PaymentDetails{PaymentIntentID: paymentIntentID}, nil
	}
	d := g.details[0]
	if len(g.details) > 1 {
		g.details = g.details[1:]
	}
	return d, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type fakeEmailQueue struct {
	mu     sync.Mutex
	emails []mailer.Email
}

func (q *fakeEmailQueue) Enqueue(ctx context.Context, email mailer.Email) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.emails = append(q.emails, email)
	return nil
}

func (q *fakeEmailQueue) recipients() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []string
	for _, e := range q.emails {
		out = append(out, e.To)
	}
	return out
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

type marketplace struct {
	mentee entity.User
	mentor entity.User
	plan   entity.Plan
	slot   entity.Slot
}

// seedMarketplace adds a mentee, a mentor with one active session plan and
// an Available slot tomorrow from 10:00 to 11:00 UTC.
func seedMarketplace(store *memStore) marketplace {
	now := store.now()
	mentee := entity.User{Id: uuid.New(), Email: "mentee@example.com", FullName: "Mia Mentee", Role: entity.UserRoleMentee, Status: entity.UserStatusActive, CreatedAt: now}
	mentor := entity.User{Id: uuid.New(), Email: "mentor@example.com", FullName: "Max Mentor", Role: entity.UserRoleMentor, Status: entity.UserStatusActive, CreatedAt: now}
	store.users = append(store.users, mentee, mentor)
	store.mentees = append(store.mentees, entity.Mentee{UserId: mentee.Id})
	store.mentors = append(store.mentors, entity.Mentor{UserId: mentor.Id, Headline: "Staff engineer", Skills: []string{"go", "kubernetes"}})

	plan := entity.Plan{
		Id:             uuid.New(),
		MentorId:       mentor.Id,
		Title:          "System design session",
		PlanType:       entity.PlanTypeSession,
		Charge:         100,
		MinutesPerCall: 60,
		IsActive:       true,
		CreatedAt:      now,
	}
	store.plans = append(store.plans, plan)

	day := now.UTC().AddDate(0, 0, 1)
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	slot := entity.Slot{
		SlotKey: entity.SlotKey{
			MentorId:  mentor.Id,
			PlanId:    plan.Id,
			Date:      date,
			StartTime: date.Add(10 * time.Hour),
			EndTime:   date.Add(11 * time.Hour),
		},
		Status: entity.SlotStatusAvailable,
	}
	store.slots = append(store.slots, slot)

	return marketplace{mentee: mentee, mentor: mentor, plan: plan, slot: slot}
}

func (m marketplace) checkoutRequest() *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		MentorId:  m.mentor.Id.String(),
		PlanId:    m.plan.Id.String(),
		Date:      m.slot.Date.Format(entity.DateLayout),
		StartTime: m.slot.StartTime.Format(entity.TimeLayout),
		EndTime:   m.slot.EndTime.Format(entity.TimeLayout),
		Message:   "Would love feedback on my design doc",
	}
}

// seedMeeting books the marketplace slot directly and returns the meeting,
// paid at paidAt.
func seedMeeting(store *memStore, m marketplace, status entity.MeetingStatus, paidAt time.Time) entity.Meeting {
	reg := entity.PlanRegistration{Id: uuid.New(), MenteeId: m.mentee.Id, PlanId: m.plan.Id, CreatedAt: paidAt}
	inv := entity.Invoice{
		Id:              uuid.New(),
		RegistrationId:  reg.Id,
		MenteeId:        m.mentee.Id,
		MentorId:        m.mentor.Id,
		PlanId:          m.plan.Id,
		PlanCharge:      m.plan.Charge,
		FinalAmount:     m.plan.Charge,
		NetAmount:       m.plan.Charge,
		Currency:        "usd",
		StripeSessionId: "cs_seed_" + reg.Id.String(),
		PaidAt:          paidAt,
		CreatedAt:       paidAt,
	}
	booking := entity.Booking{Id: uuid.New(), RegistrationId: reg.Id, MenteeId: m.mentee.Id, PlanId: m.plan.Id, Slot: m.slot.SlotKey, CreatedAt: paidAt}
	meeting := entity.Meeting{
		Id:        uuid.New(),
		BookingId: booking.Id,
		MentorId:  m.mentor.Id,
		MenteeId:  m.mentee.Id,
		PlanId:    m.plan.Id,
		Slot:      m.slot.SlotKey,
		Status:    status,
		CreatedAt: paidAt,
		UpdatedAt: paidAt,
	}
	if status != entity.MeetingStatusPending {
		meeting.Location = "https://meet.example.com/abc"
	}
	store.registrations = append(store.registrations, reg)
	store.invoices = append(store.invoices, inv)
	store.bookings = append(store.bookings, booking)
	store.meetings = append(store.meetings, meeting)
	for i := range store.slots {
		if store.slots[i].SlotKey.Equal(m.slot.SlotKey) {
			store.slots[i].Status = entity.SlotStatusBooked
		}
	}
	return meeting
}
