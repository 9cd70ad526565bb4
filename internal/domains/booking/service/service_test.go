package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"consulta/config"
	"consulta/infras/kafka"
	kafkaMocks "consulta/infras/kafka/mocks"
	"consulta/infras/otel/mocks"
	bookingMocks "consulta/internal/domains/booking/mocks"
	"consulta/internal/domains/booking/model/dto"
	"consulta/internal/domains/booking/service"
	consultantDomain "consulta/internal/domains/consultant/domain"
	consultantMocks "consulta/internal/domains/consultant/mocks"
	"consulta/internal/domains/shared/vo"
	"consulta/shared/clock"
)

const knownConsultantID = "9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b"

func knownConsultant(t *testing.T) *consultantDomain.Consultant {
	t.Helper()

	id, err := vo.NewConsultantID(knownConsultantID)
	assert.NoError(t, err)

	email, err := vo.NewEmail("anna.mueller@example.com")
	assert.NoError(t, err)

	consultant := consultantDomain.NewConsultant(
		id,
		"Dr. Anna Müller",
		email,
		consultantDomain.EightHours(),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	return &consultant
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ConsultantID:  knownConsultantID,
		CustomerName:  "Max Mustermann",
		CustomerEmail: "max@example.com",
		StartsAt:      "2026-01-20T10:00:00Z",
		EndsAt:        "2026-01-20T11:00:00Z",
	}
}

func TestBookingService_Create(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	newService := func(ctrl *gomock.Controller) (service.Booking, *bookingMocks.MockBooking, *consultantMocks.MockConsultant) {
		mockRepo := bookingMocks.NewMockBooking(ctrl)
		mockConsultants := consultantMocks.NewMockConsultant(ctrl)
		mockKafka := kafkaMocks.NewMockClient(ctrl)
		mockOtel := mocks.NewOtel()

		cfg := &config.Config{}

		svc := service.New(mockRepo, mockConsultants, cfg, mockKafka, clock.NewFixedClock(now), mockOtel)

		return svc, mockRepo, mockConsultants
	}

	t.Run("successful creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockConsultants := newService(ctrl)

		identity := vo.GenerateBookingID()

		mockConsultants.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(knownConsultant(t), nil)

		mockRepo.EXPECT().
			NextIdentity().
			Return(identity)

		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, identity.String(), res.ID)
		assert.Equal(t, knownConsultantID, res.ConsultantID)
		assert.Equal(t, "Max Mustermann", res.CustomerName)
		assert.Equal(t, "max@example.com", res.CustomerEmail)
		assert.Equal(t, "2026-01-20T10:00:00Z", res.StartsAt)
		assert.Equal(t, "2026-01-20T11:00:00Z", res.EndsAt)
		assert.Equal(t, 60, res.DurationMinutes)
		assert.Equal(t, "2026-01-15T09:30:00Z", res.CreatedAt)
	})

	t.Run("uppercase consultant id is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockConsultants := newService(ctrl)

		mockConsultants.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id vo.ConsultantID) (*consultantDomain.Consultant, error) {
				assert.Equal(t, knownConsultantID, id.String())

				return knownConsultant(t), nil
			})

		mockRepo.EXPECT().NextIdentity().Return(vo.GenerateBookingID())
		mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		req := validRequest()
		req.ConsultantID = "9D4E8C2A-1B3D-4F5E-9A8C-7B6E5D4C3A2B"

		res, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, knownConsultantID, res.ConsultantID)
	})

	t.Run("malformed consultant id fails before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _ := newService(ctrl)

		req := validRequest()
		req.ConsultantID = "not-a-uuid"

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Invalid UUID format: not-a-uuid")
	})

	t.Run("unknown consultant wins over every later rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, mockConsultants := newService(ctrl)

		mockConsultants.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		// the customer fields are also invalid, but the consultant check runs
		// first and no identity is generated
		req := validRequest()
		req.ConsultantID = "00000000-0000-0000-0000-000000000000"
		req.CustomerName = ""
		req.CustomerEmail = "not-an-email"

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Consultant not found")
	})

	t.Run("consultant lookup error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, mockConsultants := newService(ctrl)

		mockConsultants.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Create(context.Background(), validRequest())

		assert.Error(t, err)
	})

	t.Run("identity is taken before customer validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockConsultants := newService(ctrl)

		mockConsultants.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(knownConsultant(t), nil)

		mockRepo.EXPECT().
			NextIdentity().
			Return(vo.GenerateBookingID())

		req := validRequest()
		req.CustomerName = "   "

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Customer name cannot be empty")
	})

	t.Run("invalid email never reaches save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockConsultants := newService(ctrl)

		mockConsultants.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(knownConsultant(t), nil)

		mockRepo.EXPECT().
			NextIdentity().
			Return(vo.GenerateBookingID())

		req := validRequest()
		req.CustomerEmail = "invalid-email"

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Invalid email format: invalid-email")
	})

	t.Run("inverted slot never reaches save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockConsultants := newService(ctrl)

		mockConsultants.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(knownConsultant(t), nil)

		mockRepo.EXPECT().
			NextIdentity().
			Return(vo.GenerateBookingID())

		req := validRequest()
		req.StartsAt = "2026-01-20T11:00:00Z"
		req.EndsAt = "2026-01-20T10:00:00Z"

		_, err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Start time must be before end time")
	})

	t.Run("save error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockConsultants := newService(ctrl)

		mockConsultants.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(knownConsultant(t), nil)

		mockRepo.EXPECT().
			NextIdentity().
			Return(vo.GenerateBookingID())

		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := svc.Create(context.Background(), validRequest())

		assert.Error(t, err)
	})
}

func TestBookingService_Create_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockConsultants := consultantMocks.NewMockConsultant(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topics.BookingCreated = "booking.created"

	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	svc := service.New(mockRepo, mockConsultants, cfg, mockKafka, clock.NewFixedClock(now), mockOtel)

	mockConsultants.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		Return(knownConsultant(t), nil)

	mockRepo.EXPECT().
		NextIdentity().
		Return(vo.GenerateBookingID())

	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)

	published := make(chan string, 1)

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "booking.created", gomock.Any()).
		DoAndReturn(func(_ context.Context, topic string, _ ...kafka.Message) error {
			published <- topic

			return nil
		})

	_, err := svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)

	select {
	case topic := <-published:
		assert.Equal(t, "booking.created", topic)
	case <-time.After(time.Second):
		t.Fatal("booking.created event was not published")
	}
}
