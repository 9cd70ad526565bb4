package consultant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"consulta/infras/otel"
	"consulta/internal/domains/consultant/model"
	"consulta/internal/domains/consultant/service"
	"consulta/shared/constant"
	gDto "consulta/shared/dto"
	"consulta/transport/http/response"
)

type Handler struct {
	service service.Consultant
	otel    otel.Otel
}

func New(service service.Consultant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/consultants", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetConsultants)
	})
}

// GetConsultants retrieves all consultants.
// @Summary Get all consultants
// @Description Retrieve all consultants with optional name filtering and pagination.
// @Tags Consultant
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name (substring match)"
// @Success 200 {object} response.Data[dto.GetConsultantsResponse] "List of consultants"
// @Failure 500 {object} response.Error
// @Router /v1/consultants [get]
func (handler *Handler) GetConsultants(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsultants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	name := request.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	consultants, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get consultants")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Consultants retrieved successfully")

	response.WithJSON(writer, http.StatusOK, consultants)
}
