package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"consulta/infras/otel"
	"consulta/infras/postgres"
	"consulta/internal/domains/booking/domain"
	"consulta/internal/domains/booking/model"
	"consulta/internal/domains/shared/vo"
	gModel "consulta/shared/model"
	gRepo "consulta/shared/repository"
)

// Booking is the write side of the booking store. Reads never go through it;
// identity generation is split out so callers can fetch an id before the
// aggregate exists.
type Booking interface {
	Save(ctx context.Context, booking domain.Booking) error
	NextIdentity() vo.BookingID
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) NextIdentity() vo.BookingID {
	return vo.GenerateBookingID()
}

func (repo *repositoryImpl) Save(ctx context.Context, booking domain.Booking) error {
	return repo.Insert(ctx, toRow(booking))
}

func toRow(booking domain.Booking) model.Booking {
	return model.Booking{
		ID:            booking.ID().String(),
		ConsultantID:  booking.ConsultantID().String(),
		CustomerName:  booking.CustomerName().String(),
		CustomerEmail: booking.CustomerEmail().String(),
		StartsAt:      booking.TimeSlot().StartsAt(),
		EndsAt:        booking.TimeSlot().EndsAt(),
		Metadata: gModel.Metadata{
			CreatedAt: booking.CreatedAt(),
			UpdatedAt: booking.CreatedAt(),
		},
	}
}
