package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/tripglide/tripglide-api/internal/domain"
)

// BookingMailer sends booking confirmation and cancellation emails to the
// contact address on the booking. It satisfies service.BookingNotifier;
// delivery failures are the caller's problem to log, not to retry here.
type BookingMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewBookingMailer(host, port, username, password, from string) *BookingMailer {
	return &BookingMailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
	}
}

func (m *BookingMailer) BookingConfirmed(ctx context.Context, booking domain.Booking, trip domain.Trip) error {
	subject := fmt.Sprintf("Booking confirmed: %s (%s)", trip.Title, booking.Reference)
	body := fmt.Sprintf(
		"Your booking is confirmed.\n\nReference: %s\nTrip: %s, %s\nTravel date: %s\nTravelers: %d\nTotal: %s\n\nSee you there!",
		booking.Reference,
		trip.Title,
		trip.Country,
		booking.TravelDate.Format("2 January 2006"),
		booking.Travelers,
		formatTotal(booking.TotalPrice),
	)
	return m.send(ctx, booking.ContactEmail, subject, body)
}

func (m *BookingMailer) BookingCancelled(ctx context.Context, booking domain.Booking, trip domain.Trip) error {
	subject := fmt.Sprintf("Booking cancelled: %s", booking.Reference)
	body := fmt.Sprintf(
		"Your booking %s for %s has been cancelled.\n\nIf this was not you, contact support.",
		booking.Reference,
		trip.Title,
	)
	return m.send(ctx, booking.ContactEmail, subject, body)
}

func (m *BookingMailer) send(ctx context.Context, to, subject, body string) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" {
		return errors.New("mailer missing configuration")
	}
	if strings.TrimSpace(to) == "" {
		return errors.New("recipient address is empty")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("Content-Transfer-Encoding: 7bit\r\n\r\n")
	message.WriteString(body)
	message.WriteString("\r\n")

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(message.String()))
}

func formatTotal(total float64) string {
	return fmt.Sprintf("$%.2f", total)
}
