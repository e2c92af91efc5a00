package mailer

import (
	"fmt"
	"html"
)

// Email is a rendered message ready to hand to the dispatcher.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type BookingDetails struct {
	RecipientName string
	MentorName    string
	MenteeName    string
	PlanTitle     string
	Date          string
	StartTime     string
	EndTime       string
	Amount        float64
	Currency      string
	ReceiptURL    string
}

type MeetingDetails struct {
	RecipientName string
	MentorName    string
	PlanTitle     string
	Date          string
	StartTime     string
	EndTime       string
	Location      string
	Status        string
}

type ComplaintDetails struct {
	RecipientName string
	MeetingDate   string
	Status        string
	Response      string
}

func wrap(title, inner string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			%s
			<p style="color: #888; font-size: 12px;">Mentoria</p>
		</div>
	`, html.EscapeString(title), inner)
}

func BookingConfirmationEmail(to string, d BookingDetails) Email {
	inner := fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Your session <b>%s</b> between %s (mentor) and %s (mentee) is booked.</p>
			<p>%s, %s - %s</p>
			<p>Amount paid: %.2f %s</p>
			<p><a href="%s">View receipt</a></p>
			<p>The mentor will share the meeting location soon.</p>`,
		html.EscapeString(d.RecipientName),
		html.EscapeString(d.PlanTitle),
		html.EscapeString(d.MentorName),
		html.EscapeString(d.MenteeName),
		d.Date, d.StartTime, d.EndTime,
		d.Amount, d.Currency,
		html.EscapeString(d.ReceiptURL),
	)
	return Email{To: to, Subject: "Booking confirmed: " + d.PlanTitle, Body: wrap("Booking confirmed", inner)}
}

func LocationUpdatedEmail(to string, d MeetingDetails) Email {
	inner := fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>%s has scheduled your session <b>%s</b> on %s, %s - %s.</p>
			<p>Join here: <a href="%s">%s</a></p>`,
		html.EscapeString(d.RecipientName),
		html.EscapeString(d.MentorName),
		html.EscapeString(d.PlanTitle),
		d.Date, d.StartTime, d.EndTime,
		html.EscapeString(d.Location), html.EscapeString(d.Location),
	)
	return Email{To: to, Subject: "Your session has been scheduled", Body: wrap("Session scheduled", inner)}
}

func MeetingStatusEmail(to string, d MeetingDetails) Email {
	var subject, line string
	switch d.Status {
	case "Completed":
		subject = "Your session is complete"
		line = "Thanks for attending! You can now leave feedback for your mentor."
	case "Cancelled":
		subject = "Your session was cancelled"
		line = "Your session has been cancelled. Contact support if you believe this is a mistake."
	default:
		subject = "Your session was updated"
		line = "The status of your session is now " + html.EscapeString(d.Status) + "."
	}
	inner := fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Session <b>%s</b> with %s on %s, %s - %s.</p>
			<p>%s</p>`,
		html.EscapeString(d.RecipientName),
		html.EscapeString(d.PlanTitle),
		html.EscapeString(d.MentorName),
		d.Date, d.StartTime, d.EndTime,
		line,
	)
	return Email{To: to, Subject: subject, Body: wrap(subject, inner)}
}

func ComplaintUpdateEmail(to string, d ComplaintDetails) Email {
	response := d.Response
	if response == "" {
		response = "No additional comment."
	}
	inner := fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Your complaint about the session on %s is now <b>%s</b>.</p>
			<p>%s</p>`,
		html.EscapeString(d.RecipientName),
		d.MeetingDate,
		html.EscapeString(d.Status),
		html.EscapeString(response),
	)
	return Email{To: to, Subject: "Complaint " + d.Status, Body: wrap("Complaint update", inner)}
}
