package service

import (
	"math"
	"strings"
	"time"

	"mentoria-be/internal/entity"

	"github.com/google/uuid"
)

// DiscountAmount applies a discount to a plan charge. The result is rounded
// to cents and never exceeds the charge.
func DiscountAmount(charge float64, d *entity.Discount) float64 {
	if d == nil {
		return 0
	}
	var amount float64
	switch d.Type {
	case entity.DiscountTypePercentage:
		amount = charge * d.Value / 100
	case entity.DiscountTypeFixed:
		amount = d.Value
	}
	amount = roundCents(amount)
	if amount < 0 {
		return 0
	}
	if amount > charge {
		return charge
	}
	return amount
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// checkDiscountUsable reports why a discount cannot be applied to a
// checkout with mentorID at now, or nil when it can.
func checkDiscountUsable(d *entity.Discount, mentorID uuid.UUID, now time.Time) error {
	switch {
	case d.MentorId != mentorID:
		return ErrInvalidDiscount
	case !d.IsActive:
		return ErrInvalidDiscount
	case now.Before(d.ValidFrom) || now.After(d.ValidTo):
		return ErrInvalidDiscount
	case d.UsedCount >= d.UsageLimit:
		return ErrInvalidDiscount
	}
	return nil
}

// parseDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns UTC midnight.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.Parse(entity.DateLayout, raw); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseClock accepts HH:MM, HH:MM:SS or RFC3339 and places the time on day.
func parseClock(day time.Time, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{entity.TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

// parseSlotKey builds a slot identity from client input. End must follow
// start on the slot's own date.
func parseSlotKey(mentorID, planID uuid.UUID, date, start, end string) (entity.SlotKey, error) {
	day, err := parseDate(date)
	if err != nil {
		return entity.SlotKey{}, ErrInvalidSlotTime
	}
	startAt, err := parseClock(day, start)
	if err != nil {
		return entity.SlotKey{}, ErrInvalidSlotTime
	}
	endAt, err := parseClock(day, end)
	if err != nil {
		return entity.SlotKey{}, ErrInvalidSlotTime
	}
	if !endAt.After(startAt) || !sameDay(day, startAt) || !sameDay(day, endAt) {
		return entity.SlotKey{}, ErrInvalidSlotTime
	}
	return entity.SlotKey{
		MentorId:  mentorID,
		PlanId:    planID,
		Date:      day,
		StartTime: startAt,
		EndTime:   endAt,
	}, nil
}

func sameDay(day, t time.Time) bool {
	y, m, d := t.Date()
	return y == day.Year() && m == day.Month() && d == day.Day()
}
