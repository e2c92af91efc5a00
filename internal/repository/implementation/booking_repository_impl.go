package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/mapper"
	"mentoria-be/internal/model"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/scope"
	"mentoria-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookingMapper
}

func NewBookingRepository(db *gorm.DB) contract.BookingRepository {
	return &BookingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookingMapper(),
	}
}

func (r *BookingRepositoryImpl) CreateRegistration(ctx context.Context, registration *entity.PlanRegistration) error {
	m := r.mapper.RegistrationToModel(registration)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*registration = *r.mapper.RegistrationToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	m := r.mapper.BookingToModel(booking)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.BookingToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	m := r.mapper.InvoiceToModel(invoice)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*invoice = *r.mapper.InvoiceToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) FindInvoice(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error) {
	var m model.Invoice
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.InvoiceToEntity(&m), nil
}

func (r *BookingRepositoryImpl) FindInvoices(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error) {
	var models []*model.Invoice
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.InvoicesToEntities(models), nil
}

type MeetingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeetingMapper
}

func NewMeetingRepository(db *gorm.DB) contract.MeetingRepository {
	return &MeetingRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeetingMapper(),
	}
}

func (r *MeetingRepositoryImpl) Create(ctx context.Context, meeting *entity.Meeting) error {
	m := r.mapper.ToModel(meeting)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*meeting = *r.mapper.ToEntity(m)
	return nil
}

func (r *MeetingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error) {
	var m model.Meeting
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MeetingRepositoryImpl) SetLocation(ctx context.Context, id uuid.UUID, location string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Meeting{}).
		Where("id = ? AND status IN ?", id, []string{
			string(entity.MeetingStatusPending),
			string(entity.MeetingStatusScheduled),
		}).
		Updates(map[string]interface{}{
			"location":   location,
			"status":     string(entity.MeetingStatusScheduled),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *MeetingRepositoryImpl) SetReviewLink(ctx context.Context, id uuid.UUID, link string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Meeting{}).
		Where("id = ? AND status = ?", id, string(entity.MeetingStatusCompleted)).
		Updates(map[string]interface{}{
			"review_link": link,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *MeetingRepositoryImpl) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.MeetingStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Meeting{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *MeetingRepositoryImpl) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("meetings").
		Select(`meetings.*,
			mentor.full_name AS mentor_name, mentor.email AS mentor_email,
			mentee.full_name AS mentee_name, mentee.email AS mentee_email,
			plans.title AS plan_title,
			invoices.final_amount, invoices.currency, invoices.paid_at`).
		Joins("JOIN users AS mentor ON mentor.id = meetings.mentor_id").
		Joins("JOIN users AS mentee ON mentee.id = meetings.mentee_id").
		Joins("JOIN plans ON plans.id = meetings.plan_id").
		Joins("JOIN bookings ON bookings.id = meetings.booking_id").
		Joins("LEFT JOIN invoices ON invoices.registration_id = bookings.registration_id")
}

func (r *MeetingRepositoryImpl) FindDetail(ctx context.Context, id uuid.UUID) (*entity.MeetingDetail, error) {
	var rows []*model.MeetingDetailRow
	if err := r.detailQuery(ctx).Where("meetings.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.mapper.DetailToEntity(rows[0]), nil
}

func (r *MeetingRepositoryImpl) FindDetails(ctx context.Context, f contract.MeetingFilter) ([]*entity.MeetingDetail, int64, error) {
	query := r.detailQuery(ctx)
	if f.MentorId != uuid.Nil {
		query = query.Where("meetings.mentor_id = ?", f.MentorId)
	}
	if f.MenteeId != uuid.Nil {
		query = query.Where("meetings.mentee_id = ?", f.MenteeId)
	}
	if f.Status != "" {
		query = query.Where("meetings.status = ?", string(f.Status))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*model.MeetingDetailRow
	query = query.Order("meetings.slot_start_time DESC")
	if f.Limit > 0 {
		query = query.Limit(f.Limit).Offset(f.Offset)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return r.mapper.DetailsToEntities(rows), total, nil
}

func (r *MeetingRepositoryImpl) IsExpiredPending(ctx context.Context, meetingID, menteeID uuid.UUID, window time.Duration) (bool, error) {
	var expired bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM meetings
			JOIN bookings ON bookings.id = meetings.booking_id
			JOIN invoices ON invoices.registration_id = bookings.registration_id
			WHERE meetings.id = ?
			  AND meetings.mentee_id = ?
			  AND meetings.status = ?
			  AND NOW() - invoices.paid_at > make_interval(secs => ?)
		)
	`, meetingID, menteeID, string(entity.MeetingStatusPending), window.Seconds()).Scan(&expired).Error
	if err != nil {
		return false, fmt.Errorf("expired pending check: %w", err)
	}
	return expired, nil
}

type ComplaintRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeetingMapper
}

func NewComplaintRepository(db *gorm.DB) contract.ComplaintRepository {
	return &ComplaintRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeetingMapper(),
	}
}

func (r *ComplaintRepositoryImpl) Create(ctx context.Context, complaint *entity.Complaint) error {
	m := r.mapper.ComplaintToModel(complaint)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*complaint = *r.mapper.ComplaintToEntity(m)
	return nil
}

func (r *ComplaintRepositoryImpl) Update(ctx context.Context, complaint *entity.Complaint) error {
	m := r.mapper.ComplaintToModel(complaint)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*complaint = *r.mapper.ComplaintToEntity(m)
	return nil
}

func (r *ComplaintRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error) {
	var m model.Complaint
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ComplaintToEntity(&m), nil
}

func (r *ComplaintRepositoryImpl) FindAll(ctx context.Context, f contract.ComplaintFilter) ([]*entity.Complaint, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Complaint{})
	if f.MenteeId != uuid.Nil {
		query = query.Where("mentee_id = ?", f.MenteeId)
	}
	if f.Status != "" {
		query = query.Where("status = ?", string(f.Status))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*model.Complaint
	query = query.Scopes(scope.OrderByCreatedDesc)
	if f.Limit > 0 {
		query = query.Limit(f.Limit).Offset(f.Offset)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}
	return r.mapper.ComplaintsToEntities(models), total, nil
}

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeetingMapper
}

func NewFeedbackRepository(db *gorm.DB) contract.FeedbackRepository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeetingMapper(),
	}
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.Feedback) error {
	m := r.mapper.FeedbackToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*feedback = *r.mapper.FeedbackToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	var m model.Feedback
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FeedbackToEntity(&m), nil
}

func (r *FeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	var models []*model.Feedback
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Feedback, len(models))
	for i, m := range models {
		out[i] = r.mapper.FeedbackToEntity(m)
	}
	return out, nil
}
