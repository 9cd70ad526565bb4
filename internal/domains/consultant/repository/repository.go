package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"consulta/infras/otel"
	"consulta/infras/postgres"
	"consulta/internal/domains/consultant/domain"
	"consulta/internal/domains/consultant/model"
	"consulta/internal/domains/shared/vo"
	"consulta/shared"
	"consulta/shared/constant"
	gDto "consulta/shared/dto"
	gRepo "consulta/shared/repository"
)

type Consultant interface {
	Insert(ctx context.Context, model model.Consultant) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Consultant, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Consultant, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	FindByID(ctx context.Context, id vo.ConsultantID) (*domain.Consultant, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Consultant]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Consultant {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Consultant](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindByID rehydrates the consultant aggregate. A missing consultant is not
// an error; it returns a nil aggregate so callers decide how absence maps to
// their own failure mode.
func (repo *repositoryImpl) FindByID(ctx context.Context, id vo.ConsultantID) (*domain.Consultant, error) {
	row, err := repo.Get(ctx, shared.FilterByID(id.String(), model.FieldID, model.TableName))
	if err != nil {
		return nil, err
	}

	if row.ID == constant.Empty {
		return nil, nil
	}

	return toDomain(row)
}

func toDomain(row model.Consultant) (*domain.Consultant, error) {
	id, err := vo.NewConsultantID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt consultant row %q: %w", row.ID, err)
	}

	email, err := vo.NewEmail(row.Email)
	if err != nil {
		return nil, fmt.Errorf("corrupt consultant row %q: %w", row.ID, err)
	}

	capacity, err := domain.NewDailyCapacity(row.DailyCapacityMinutes)
	if err != nil {
		return nil, fmt.Errorf("corrupt consultant row %q: %w", row.ID, err)
	}

	consultant := domain.NewConsultant(id, row.Name, email, capacity, row.CreatedAt)

	return &consultant, nil
}
