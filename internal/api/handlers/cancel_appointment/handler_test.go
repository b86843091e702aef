package cancel_appointment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/service/appointments"
	"github.com/m04kA/salon-booking/internal/service/appointments/models"
	"github.com/m04kA/salon-booking/pkg/logger"
)

type stubService struct {
	gotID  int64
	gotReq *models.CancelRequest
	err    error
}

func (s *stubService) Cancel(_ context.Context, id int64, req *models.CancelRequest) error {
	s.gotID = id
	s.gotReq = req
	return s.err
}

func serve(svc *stubService, id, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+id+"/cancel", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"appointmentId": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop{}).Handle(rec, r)
	return rec
}

func TestHandle_WithReason(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, "5", `{"reason":"viaje"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(5), svc.gotID)
	require.NotNil(t, svc.gotReq.Reason)
	assert.Equal(t, "viaje", *svc.gotReq.Reason)
}

func TestHandle_EmptyBodyUsesDefaultReason(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, "5", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.Reason)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "5", `{"reason":`).Code)
	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: appointments.ErrAppointmentNotFound}, "5", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{err: fmt.Errorf("%w: too long", appointments.ErrInvalidInput)}, "5", "").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: appointments.ErrInternal}, "5", "").Code)
}
