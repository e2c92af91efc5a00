package mapper

import (
	"mentoria-be/internal/entity"
	"mentoria-be/internal/model"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) RegistrationToModel(r *entity.PlanRegistration) *model.PlanRegistration {
	if r == nil {
		return nil
	}
	return &model.PlanRegistration{
		Id:         r.Id,
		MenteeId:   r.MenteeId,
		PlanId:     r.PlanId,
		Message:    r.Message,
		DiscountId: r.DiscountId,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *BookingMapper) RegistrationToEntity(r *model.PlanRegistration) *entity.PlanRegistration {
	if r == nil {
		return nil
	}
	return &entity.PlanRegistration{
		Id:         r.Id,
		MenteeId:   r.MenteeId,
		PlanId:     r.PlanId,
		Message:    r.Message,
		DiscountId: r.DiscountId,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *BookingMapper) InvoiceToModel(i *entity.Invoice) *model.Invoice {
	if i == nil {
		return nil
	}
	return &model.Invoice{
		Id:                   i.Id,
		RegistrationId:       i.RegistrationId,
		MenteeId:             i.MenteeId,
		MentorId:             i.MentorId,
		PlanId:               i.PlanId,
		PlanCharge:           i.PlanCharge,
		DiscountAmount:       i.DiscountAmount,
		FinalAmount:          i.FinalAmount,
		Currency:             i.Currency,
		StripeSessionId:      i.StripeSessionId,
		PaymentIntentId:      i.PaymentIntentId,
		ChargeId:             i.ChargeId,
		BalanceTransactionId: i.BalanceTransactionId,
		ReceiptURL:           i.ReceiptURL,
		StripeFee:            i.StripeFee,
		NetAmount:            i.NetAmount,
		PaidAt:               i.PaidAt,
		CreatedAt:            i.CreatedAt,
	}
}

func (m *BookingMapper) InvoiceToEntity(i *model.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}
	return &entity.Invoice{
		Id:                   i.Id,
		RegistrationId:       i.RegistrationId,
		MenteeId:             i.MenteeId,
		MentorId:             i.MentorId,
		PlanId:               i.PlanId,
		PlanCharge:           i.PlanCharge,
		DiscountAmount:       i.DiscountAmount,
		FinalAmount:          i.FinalAmount,
		Currency:             i.Currency,
		StripeSessionId:      i.StripeSessionId,
		PaymentIntentId:      i.PaymentIntentId,
		ChargeId:             i.ChargeId,
		BalanceTransactionId: i.BalanceTransactionId,
		ReceiptURL:           i.ReceiptURL,
		StripeFee:            i.StripeFee,
		NetAmount:            i.NetAmount,
		PaidAt:               i.PaidAt,
		CreatedAt:            i.CreatedAt,
	}
}

func (m *BookingMapper) InvoicesToEntities(invoices []*model.Invoice) []*entity.Invoice {
	out := make([]*entity.Invoice, len(invoices))
	for i, inv := range invoices {
		out[i] = m.InvoiceToEntity(inv)
	}
	return out
}

func (m *BookingMapper) BookingToModel(b *entity.Booking) *model.Booking {
	if b == nil {
		return nil
	}
	return &model.Booking{
		Id:             b.Id,
		RegistrationId: b.RegistrationId,
		MenteeId:       b.MenteeId,
		MentorId:       b.Slot.MentorId,
		PlanId:         b.PlanId,
		SlotDate:       b.Slot.Date,
		SlotStartTime:  b.Slot.StartTime,
		SlotEndTime:    b.Slot.EndTime,
		CreatedAt:      b.CreatedAt,
	}
}

func (m *BookingMapper) BookingToEntity(b *model.Booking) *entity.Booking {
	if b == nil {
		return nil
	}
	return &entity.Booking{
		Id:             b.Id,
		RegistrationId: b.RegistrationId,
		MenteeId:       b.MenteeId,
		PlanId:         b.PlanId,
		Slot: entity.SlotKey{
			MentorId:  b.MentorId,
			PlanId:    b.PlanId,
			Date:      b.SlotDate,
			StartTime: b.SlotStartTime,
			EndTime:   b.SlotEndTime,
		},
		CreatedAt: b.CreatedAt,
	}
}
