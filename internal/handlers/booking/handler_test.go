package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"consulta/infras/otel/mocks"
	"consulta/internal/domains/booking/model/dto"
	"consulta/internal/handlers/booking"
	"consulta/shared/failure"
)

type stubBookingService struct {
	res   dto.BookingResponse
	err   error
	calls int
}

func (s *stubBookingService) Create(_ context.Context, _ dto.CreateBookingRequest) (dto.BookingResponse, error) {
	s.calls++

	return s.res, s.err
}

func newRouter(svc *stubBookingService) http.Handler {
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

const validBody = `{
	"consultant_id": "9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b",
	"customer_name": "Max Mustermann",
	"customer_email": "max@example.com",
	"starts_at": "2026-01-20T10:00:00Z",
	"ends_at": "2026-01-20T11:00:00Z"
}`

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Run("valid request responds 201 with the booking", func(t *testing.T) {
		svc := &stubBookingService{
			res: dto.BookingResponse{
				ID:              "5b2a9c1e-3d4f-4a6b-8c7d-9e0f1a2b3c4d",
				ConsultantID:    "9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b",
				CustomerName:    "Max Mustermann",
				CustomerEmail:   "max@example.com",
				StartsAt:        "2026-01-20T10:00:00Z",
				EndsAt:          "2026-01-20T11:00:00Z",
				DurationMinutes: 60,
				CreatedAt:       "2026-01-15T09:30:00Z",
			},
		}

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader(validBody))

		newRouter(svc).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, 1, svc.calls)

		var body struct {
			Data dto.BookingResponse `json:"data"`
		}

		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, svc.res, body.Data)
	})

	t.Run("domain rule violation responds 409 with the single message", func(t *testing.T) {
		tests := []struct {
			name    string
			message string
		}{
			{name: "inverted slot", message: "Start time must be before end time"},
			{name: "unknown consultant", message: "Consultant not found"},
			{name: "empty name", message: "Customer name cannot be empty"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := &stubBookingService{err: failure.DomainRule(tt.message)}

				recorder := httptest.NewRecorder()
				request := httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader(validBody))

				newRouter(svc).ServeHTTP(recorder, request)

				assert.Equal(t, http.StatusConflict, recorder.Code)

				var body struct {
					Error string `json:"error"`
				}

				assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, tt.message, body.Error)
			})
		}
	})

	t.Run("malformed input responds 422 without reaching the service", func(t *testing.T) {
		tests := []struct {
			name    string
			body    string
			message string
		}{
			{
				name:    "missing customer name",
				body:    `{"consultant_id":"9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b","customer_email":"max@example.com","starts_at":"2026-01-20T10:00:00Z","ends_at":"2026-01-20T11:00:00Z"}`,
				message: "customer_name is required",
			},
			{
				name:    "malformed consultant id",
				body:    `{"consultant_id":"not-a-uuid","customer_name":"Max","customer_email":"max@example.com","starts_at":"2026-01-20T10:00:00Z","ends_at":"2026-01-20T11:00:00Z"}`,
				message: "consultant_id must be a valid UUID",
			},
			{
				name:    "invalid email",
				body:    `{"consultant_id":"9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b","customer_name":"Max","customer_email":"nope","starts_at":"2026-01-20T10:00:00Z","ends_at":"2026-01-20T11:00:00Z"}`,
				message: "customer_email must be a valid email address",
			},
			{
				name: "unparseable start time",
				body: `{"consultant_id":"9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b","customer_name":"Max","customer_email":"max@example.com","starts_at":"20.01.2026 10:00","ends_at":"2026-01-20T11:00:00Z"}`,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := &stubBookingService{}

				recorder := httptest.NewRecorder()
				request := httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader(tt.body))

				newRouter(svc).ServeHTTP(recorder, request)

				assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
				assert.Equal(t, 0, svc.calls)

				if tt.message != "" {
					var body struct {
						Error string `json:"error"`
					}

					assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
					assert.Equal(t, tt.message, body.Error)
				}
			})
		}
	})

	t.Run("undecodable body responds 422", func(t *testing.T) {
		svc := &stubBookingService{}

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader("{not json"))

		newRouter(svc).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Equal(t, 0, svc.calls)
	})
}
