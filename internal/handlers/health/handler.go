package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"consulta/infras/postgres"
	"consulta/transport/http/response"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports service liveness.
// @Summary Health check
// @Description Report whether the service and its database are reachable.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service healthy"
// @Failure 503 {object} response.Error "Service unhealthy"
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	if err := handler.db.Read.PingContext(request.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed to reach database")

		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, "OK")
}
