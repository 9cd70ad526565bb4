package helper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"consulta/config"
	"consulta/infras/otel"
	"consulta/infras/postgres"
	"consulta/infras/redis"
	"consulta/internal/domains/consultant/model"
	"consulta/shared"
	"consulta/shared/cache"
	gModel "consulta/shared/model"
)

// AnnaMuellerID is fixed so repeated seeding stays idempotent and local
// clients have a stable consultant to book against.
const AnnaMuellerID = "9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b"

func Seed(cfg *config.Config) error {
	db := postgres.CreatePostgresWriteConn(*cfg)
	if db == nil {
		return errors.New("failed to connect to database for seeding")
	}
	defer db.Close()

	now := time.Now().UTC()

	consultants := []model.Consultant{
		{
			ID:                   AnnaMuellerID,
			Name:                 "Dr. Anna Müller",
			Email:                "anna.mueller@example.com",
			DailyCapacityMinutes: 480,
			Metadata: gModel.Metadata{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "Dr. Thomas Schmidt",
			Email:                "thomas.schmidt@example.com",
			DailyCapacityMinutes: 420,
			Metadata: gModel.Metadata{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, name, email, daily_capacity_minutes, created_at, updated_at)
		VALUES (:id, :name, :email, :daily_capacity_minutes, :created_at, :updated_at)
		ON CONFLICT DO NOTHING`, model.TableName)

	for _, consultant := range consultants {
		if _, err := db.NamedExec(query, consultant); err != nil {
			return fmt.Errorf("error seeding consultant %s: %w", consultant.Name, err)
		}

		log.Info().Str("name", consultant.Name).Msg("Seeded consultant")
	}

	// Stale listings would otherwise survive until the TTL runs out.
	redisClient := redis.New(cfg)
	defer redisClient.Close()

	shared.InvalidateCaches(context.Background(), cache.NewRedisCache(redisClient, otel.New(cfg)), model.EntityName)

	log.Info().Msg("Database seeding completed successfully")

	return nil
}
