package service

import (
	"context"
	"fmt"
	"strings"

	"bistro/config"
	"bistro/infras/kafka"
	"bistro/infras/mailer"
	"bistro/infras/otel"
	"bistro/internal/domains/reservation/model"
	"bistro/shared/constant"
	"bistro/shared/timezone"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const displayTimeFormat = "02/01/2006 15:04"

// Notification tells customers about changes to their reservation. It is a dispatcher sink and
// the handler of the reservation events topic.
type Notification interface {
	model.EventVisitor
	Publish(ctx context.Context, event model.Event) error
	HandleMessage(ctx context.Context, message kafkaGo.Message)
}

type serviceImpl struct {
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(mailer mailer.Mailer, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) Publish(ctx context.Context, event model.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	log.Info().Str("type", string(event.Type())).Str("event", event.ID()).Msg("processing reservation event")

	return event.Accept(ctx, s)
}

func (s *serviceImpl) HandleMessage(ctx context.Context, message kafkaGo.Message) {
	envelope, err := kafka.DecodeKafkaMessage[model.EventEnvelope](message)
	if err != nil {
		return
	}

	event, err := envelope.ToEvent()
	if err != nil {
		log.Error().Err(err).Str("key", string(message.Key)).Msg("failed to decode reservation event")

		return
	}

	if err = s.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("event", event.ID()).Msg("failed to notify customer")
	}
}

func (s *serviceImpl) VisitConfirmed(ctx context.Context, event model.ReservationConfirmed) error {
	snapshot := event.Snapshot()

	if err := s.sendEmail(ctx, snapshot, "Reservation confirmed", event.Type(),
		"Your reservation has been confirmed.",
		"We look forward to seeing you!"); err != nil {
		return err
	}

	s.sendSMS(snapshot.Customer.Phone(), fmt.Sprintf("Your reservation for %s at table %s is confirmed. Thank you!",
		formatTime(snapshot.Time), snapshot.TableID))

	return nil
}

func (s *serviceImpl) VisitCancelled(ctx context.Context, event model.ReservationCancelled) error {
	return s.sendEmail(ctx, event.Snapshot(), "Reservation cancelled", event.Type(),
		"Your reservation has been cancelled as requested.",
		"We hope to welcome you another time.")
}

func (s *serviceImpl) VisitCompleted(ctx context.Context, event model.ReservationCompleted) error {
	return s.sendEmail(ctx, event.Snapshot(), "Thank you for your visit", event.Type(),
		"Thank you for dining with us. We hope you had a great experience.",
		"Your feedback is very important to us.")
}

func (s *serviceImpl) VisitModified(ctx context.Context, event model.ReservationModified) error {
	previous := event.Previous()

	change := fmt.Sprintf("Your reservation has been changed. It was previously at table %s on %s for %d people.",
		previous.TableID, formatTime(previous.Time), previous.PartySize)

	return s.sendEmail(ctx, event.Snapshot(), "Reservation modified", event.Type(), change,
		"If you did not request this change please contact us.")
}

func (s *serviceImpl) sendEmail(ctx context.Context, snapshot model.Snapshot, subject string, eventType model.EventType, intro, outro string) error {
	customer := snapshot.Customer

	details := []string{
		"Date and time: " + formatTime(snapshot.Time),
		"Table: " + snapshot.TableID.String(),
		fmt.Sprintf("Party size: %d", snapshot.PartySize),
	}

	if customer.HasSpecialRequests() {
		details = append(details, "Special requests: "+customer.SpecialRequests())
	}

	text := fmt.Sprintf("Hello %s,\n\n%s\n\n- %s\n\n%s\n\n%s",
		customer.DisplayName(), intro, strings.Join(details, "\n- "), outro, s.signature())

	html := fmt.Sprintf("<p>Hello %s,</p><p>%s</p><ul><li>%s</li></ul><p>%s</p><p>%s</p>",
		customer.DisplayName(), intro, strings.Join(details, "</li><li>"), outro, s.signature())

	err := s.mailer.Send(ctx, mailer.Email{
		To:      customer.Email(),
		ToName:  customer.DisplayName(),
		Subject: fmt.Sprintf("%s - %s", subject, customer.DisplayName()),
		HTML:    html,
		Text:    text,
		Tags:    []string{string(eventType)},
	})
	if err != nil {
		log.Error().Err(err).Str("reservation", snapshot.ReservationID.String()).Msg("failed to send reservation email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("reservation", snapshot.ReservationID.String()).Str("type", string(eventType)).Msg("reservation email sent")

	return nil
}

// sendSMS has no gateway behind it yet; messages are logged.
func (s *serviceImpl) sendSMS(phone, message string) {
	log.Info().Str("phone", phone).Str("message", message).Msg("sms notification")
}

func (s *serviceImpl) signature() string {
	if s.cfg.App.Name == constant.Empty {
		return "The restaurant team"
	}

	return "The " + s.cfg.App.Name + " team"
}

func formatTime(rt model.ReservationTime) string {
	if rt.IsZero() {
		return "-"
	}

	return timezone.Format(rt.Start(), displayTimeFormat)
}
