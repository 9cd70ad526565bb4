package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"consulta/config"
	"consulta/infras/kafka"
	"consulta/infras/otel"
	"consulta/internal/domains/booking/domain"
	"consulta/internal/domains/booking/model/dto"
	"consulta/internal/domains/booking/repository"
	consultantRepo "consulta/internal/domains/consultant/repository"
	"consulta/internal/domains/shared/vo"
	"consulta/shared/clock"
	"consulta/shared/constant"
	"consulta/shared/failure"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	consultants consultantRepo.Consultant
	cfg         *config.Config
	kafka       kafka.Client
	clock       clock.Clock
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	consultants consultantRepo.Consultant,
	cfg *config.Config,
	kafkaClient kafka.Client,
	clk clock.Clock,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		consultants: consultants,
		cfg:         cfg,
		kafka:       kafkaClient,
		clock:       clk,
		otel:        otel,
	}
}

// Create books a time slot with a consultant. Steps run in a fixed order so
// the first violation reported is deterministic: the consultant must resolve
// before any other rule is checked, and the booking identity is taken before
// the customer fields are validated. Nothing is saved unless every rule
// passes.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	consultantID, err := vo.NewConsultantID(req.ConsultantID)
	if err != nil {
		return res, err
	}

	consultant, err := s.consultants.FindByID(ctx, consultantID)
	if err != nil {
		log.Error().Err(err).Str("consultantID", consultantID.String()).Msg("failed to load consultant")

		return res, err
	}

	if consultant == nil {
		return res, failure.DomainRule("Consultant not found")
	}

	id := s.repo.NextIdentity()

	customerName, err := domain.NewCustomerName(req.CustomerName)
	if err != nil {
		return res, err
	}

	customerEmail, err := vo.NewEmail(req.CustomerEmail)
	if err != nil {
		return res, err
	}

	startsAt, endsAt, err := req.ParseTimes()
	if err != nil {
		return res, err
	}

	timeSlot, err := domain.NewTimeSlot(startsAt, endsAt)
	if err != nil {
		return res, err
	}

	booking := domain.NewBooking(id, consultantID, customerName, customerEmail, timeSlot, s.clock.Now())

	if err = s.repo.Save(ctx, booking); err != nil {
		log.Error().Err(err).Str("bookingID", id.String()).Msg("failed to save booking")

		return res, err
	}

	res.FromDomain(booking)

	if s.cfg.Kafka.Enable {
		event := res

		go func() {
			c := context.WithoutCancel(ctx)

			message := kafka.Message{
				Key:   event.ID,
				Value: event,
			}

			if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingCreated, message); err != nil {
				log.Error().Err(err).Str("bookingID", event.ID).Msg("failed to publish booking created event")
			}
		}()
	}

	return res, nil
}
