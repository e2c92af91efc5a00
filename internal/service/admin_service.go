package service

import (
	"context"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	// User Management
	ListUsers(ctx context.Context, query *dto.ListUsersQuery) (*serverutils.PaginatedData[*dto.UserResponse], error)
	UpdateUserStatus(ctx context.Context, adminID, userID uuid.UUID, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error)

	// Payouts
	ListMentorBalances(ctx context.Context) ([]*dto.MentorBalanceResponse, error)
	CreatePayout(ctx context.Context, adminID uuid.UUID, req *dto.CreatePayoutRequest) (*dto.PayoutResponse, error)
	ListPayouts(ctx context.Context, query *dto.ListPayoutsQuery) (*serverutils.PaginatedData[*dto.PayoutResponse], error)

	// Logs
	GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]*dto.LogListResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// ============================================================================
// User Management
// ============================================================================

func (s *adminService) ListUsers(ctx context.Context, query *dto.ListUsersQuery) (*serverutils.PaginatedData[*dto.UserResponse], error) {
	limit, offset := pageBounds(query.Limit, query.Offset)

	var filters []specification.Specification
	if query.Role != "" {
		filters = append(filters, specification.Filter("role", query.Role))
	}
	if query.Status != "" {
		filters = append(filters, specification.Filter("status", query.Status))
	}
	if query.Query != "" {
		filters = append(filters, specification.UserSearch{Query: query.Query})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.UserRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	users, err := uow.UserRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return &serverutils.PaginatedData[*dto.UserResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, adminID, userID uuid.UUID, req *dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	status := entity.UserStatus(req.Status)
	if !status.IsValid() {
		return nil, serverutils.NewValidationError("status must be active or banned")
	}
	if adminID == userID && status == entity.UserStatusBanned {
		return nil, serverutils.NewValidationError("admins cannot ban themselves")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := uow.UserRepository().UpdateStatus(ctx, userID, status); err != nil {
		return nil, err
	}

	s.logger.Info("ADMIN", "User status changed", map[string]interface{}{
		"user_id":  userID,
		"status":   status,
		"admin_id": adminID,
	})
	user.Status = status
	return toUserResponse(user), nil
}

// ============================================================================
// Payouts
// ============================================================================

func (s *adminService) ListMentorBalances(ctx context.Context) ([]*dto.MentorBalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	balances, err := uow.PayoutRepository().Balances(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MentorBalanceResponse, 0, len(balances))
	for _, b := range balances {
		res = append(res, &dto.MentorBalanceResponse{
			MentorId:   b.MentorId,
			MentorName: b.MentorName,
			Earned:     roundCents(b.Earned),
			PaidOut:    roundCents(b.PaidOut),
			Available:  roundCents(b.Available()),
		})
	}
	return res, nil
}

// CreatePayout records money sent to a mentor outside the platform. The
// balance row lock keeps two concurrent payouts from overdrawing it.
func (s *adminService) CreatePayout(ctx context.Context, adminID uuid.UUID, req *dto.CreatePayoutRequest) (*dto.PayoutResponse, error) {
	mentorID, err := uuid.Parse(req.MentorId)
	if err != nil {
		return nil, ErrMentorNotFound
	}
	amount := roundCents(req.Amount)
	if amount <= 0 {
		return nil, serverutils.NewValidationError("amount must be positive")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	mentor, err := uow.MentorRepository().FindByUserId(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	balance, err := uow.PayoutRepository().BalanceOf(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if amount > roundCents(balance.Available()) {
		return nil, ErrInsufficientBalance
	}

	payout := &entity.Payout{
		Id:        uuid.New(),
		MentorId:  mentorID,
		Amount:    amount,
		Status:    entity.PayoutStatusPaid,
		Reference: req.Reference,
		CreatedBy: adminID,
		CreatedAt: time.Now(),
	}
	if err := uow.PayoutRepository().Create(ctx, payout); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("ADMIN", "Payout recorded", map[string]interface{}{
		"payout_id": payout.Id,
		"mentor_id": mentorID,
		"amount":    amount,
	})
	return toPayoutResponse(payout), nil
}

func (s *adminService) ListPayouts(ctx context.Context, query *dto.ListPayoutsQuery) (*serverutils.PaginatedData[*dto.PayoutResponse], error) {
	limit, offset := pageBounds(query.Limit, query.Offset)

	var filters []specification.Specification
	if query.MentorId != "" {
		mentorID, err := uuid.Parse(query.MentorId)
		if err != nil {
			return nil, serverutils.NewValidationError("invalid mentor_id")
		}
		filters = append(filters, specification.Filter("mentor_id", mentorID))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.PayoutRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	payouts, err := uow.PayoutRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		items = append(items, toPayoutResponse(p))
	}
	return &serverutils.PaginatedData[*dto.PayoutResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// ============================================================================
// Logs
// ============================================================================

func (s *adminService) GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]*dto.LogListResponse, error) {
	limit, offset = pageBounds(limit, offset)
	entries, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, &dto.LogListResponse{
			Id:        e.Id,
			Level:     e.Level,
			Module:    e.Module,
			Message:   e.Message,
			Details:   e.Details,
			CreatedAt: e.Timestamp,
		})
	}
	return res, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Status:    string(u.Status),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func toPayoutResponse(p *entity.Payout) *dto.PayoutResponse {
	return &dto.PayoutResponse{
		Id:        p.Id,
		MentorId:  p.MentorId,
		Amount:    p.Amount,
		Status:    string(p.Status),
		Reference: p.Reference,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}
