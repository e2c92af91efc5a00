package mapper

import (
	"mentoria-be/internal/entity"
	"mentoria-be/internal/model"
)

type MeetingMapper struct{}

func NewMeetingMapper() *MeetingMapper {
	return &MeetingMapper{}
}

func (m *MeetingMapper) ToEntity(mt *model.Meeting) *entity.Meeting {
	if mt == nil {
		return nil
	}
	return &entity.Meeting{
		Id:        mt.Id,
		BookingId: mt.BookingId,
		MentorId:  mt.MentorId,
		MenteeId:  mt.MenteeId,
		PlanId:    mt.PlanId,
		Slot: entity.SlotKey{
			MentorId:  mt.MentorId,
			PlanId:    mt.PlanId,
			Date:      mt.SlotDate,
			StartTime: mt.SlotStartTime,
			EndTime:   mt.SlotEndTime,
		},
		Location:   mt.Location,
		ReviewLink: mt.ReviewLink,
		Status:     entity.MeetingStatus(mt.Status),
		CreatedAt:  mt.CreatedAt,
		UpdatedAt:  mt.UpdatedAt,
	}
}

func (m *MeetingMapper) ToModel(mt *entity.Meeting) *model.Meeting {
	if mt == nil {
		return nil
	}
	return &model.Meeting{
		Id:            mt.Id,
		BookingId:     mt.BookingId,
		MentorId:      mt.MentorId,
		MenteeId:      mt.MenteeId,
		PlanId:        mt.PlanId,
		SlotDate:      mt.Slot.Date,
		SlotStartTime: mt.Slot.StartTime,
		SlotEndTime:   mt.Slot.EndTime,
		Location:      mt.Location,
		ReviewLink:    mt.ReviewLink,
		Status:        string(mt.Status),
		CreatedAt:     mt.CreatedAt,
		UpdatedAt:     mt.UpdatedAt,
	}
}

func (m *MeetingMapper) DetailToEntity(row *model.MeetingDetailRow) *entity.MeetingDetail {
	if row == nil {
		return nil
	}
	return &entity.MeetingDetail{
		Meeting:     *m.ToEntity(&row.Meeting),
		MentorName:  row.MentorName,
		MentorEmail: row.MentorEmail,
		MenteeName:  row.MenteeName,
		MenteeEmail: row.MenteeEmail,
		PlanTitle:   row.PlanTitle,
		FinalAmount: row.FinalAmount,
		Currency:    row.Currency,
		PaidAt:      row.PaidAt,
	}
}

func (m *MeetingMapper) DetailsToEntities(rows []*model.MeetingDetailRow) []*entity.MeetingDetail {
	out := make([]*entity.MeetingDetail, len(rows))
	for i, r := range rows {
		out[i] = m.DetailToEntity(r)
	}
	return out
}

func (m *MeetingMapper) ComplaintToEntity(c *model.Complaint) *entity.Complaint {
	if c == nil {
		return nil
	}
	return &entity.Complaint{
		Id:            c.Id,
		MeetingId:     c.MeetingId,
		MenteeId:      c.MenteeId,
		MentorId:      c.MentorId,
		Content:       c.Content,
		Status:        entity.ComplaintStatus(c.Status),
		AdminResponse: c.AdminResponse,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *MeetingMapper) ComplaintToModel(c *entity.Complaint) *model.Complaint {
	if c == nil {
		return nil
	}
	return &model.Complaint{
		Id:            c.Id,
		MeetingId:     c.MeetingId,
		MenteeId:      c.MenteeId,
		MentorId:      c.MentorId,
		Content:       c.Content,
		Status:        string(c.Status),
		AdminResponse: c.AdminResponse,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *MeetingMapper) ComplaintsToEntities(complaints []*model.Complaint) []*entity.Complaint {
	out := make([]*entity.Complaint, len(complaints))
	for i, c := range complaints {
		out[i] = m.ComplaintToEntity(c)
	}
	return out
}

func (m *MeetingMapper) FeedbackToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:        f.Id,
		MeetingId: f.MeetingId,
		MenteeId:  f.MenteeId,
		MentorId:  f.MentorId,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func (m *MeetingMapper) FeedbackToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:        f.Id,
		MeetingId: f.MeetingId,
		MenteeId:  f.MenteeId,
		MentorId:  f.MentorId,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}
