package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/api/handlers"
	"github.com/m04kA/salon-booking/internal/domain"
	requestBooking "github.com/m04kA/salon-booking/internal/usecase/request_booking"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/types"
)

type stubUseCase struct {
	got *requestBooking.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *requestBooking.Request) (*requestBooking.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	date, _ := time.Parse(domain.DateFormat, req.Date)
	return &requestBooking.Response{
		ID:        7,
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		StylistID: req.StylistID,
		Date:      date,
		Time:      types.TimeString(req.Time),
		Status:    string(domain.StatusPending),
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func doRequest(t *testing.T, uc *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.Nop{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{}
	rec := doRequest(t, uc, `{"clientId":1,"serviceId":2,"stylistId":3,"date":"2025-06-11","time":"10:00","notes":"corte"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got.StylistID)
	assert.Equal(t, int64(3), *uc.got.StylistID)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-06-11", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{"clientId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{requestBooking.ErrInvalidInput, http.StatusBadRequest, handlers.CodeInvalidInput},
		{requestBooking.ErrPastDate, http.StatusUnprocessableEntity, handlers.CodePastDate},
		{requestBooking.ErrStylistNotFound, http.StatusNotFound, handlers.CodeStylistNotFound},
		{requestBooking.ErrStylistNotEligible, http.StatusUnprocessableEntity, handlers.CodeStylistNotEligible},
		{requestBooking.ErrStylistUnavailableDay, http.StatusConflict, handlers.CodeStylistUnavailableDay},
		{requestBooking.ErrSlotOccupied, http.StatusConflict, handlers.CodeSlotOccupied},
		{fmt.Errorf("%w: boom", requestBooking.ErrInternal), http.StatusInternalServerError, handlers.CodeStorageFailure},
		{errors.New("unexpected"), http.StatusInternalServerError, handlers.CodeStorageFailure},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, `{"clientId":1,"serviceId":2,"date":"2025-06-11","time":"10:00"}`)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
