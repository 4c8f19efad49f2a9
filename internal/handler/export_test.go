package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/export"
)

func TestHandleExportRolls(t *testing.T) {
	csv := []byte("roll_id,username\nr-1,alice\n")

	mockSvc := new(MockExportService)
	mockSvc.On("RollsCSV", mock.Anything, export.FilterAll).Return(csv, nil)

	h := NewExportHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/rolls", nil)
	rec := httptest.NewRecorder()

	h.HandleExportRolls(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, csv, rec.Body.Bytes())
	mockSvc.AssertExpectations(t)
}

func TestHandleExportRolls_FilterPassedThrough(t *testing.T) {
	mockSvc := new(MockExportService)
	mockSvc.On("RollsCSV", mock.Anything, export.FilterPityOnly).Return([]byte("header\n"), nil)

	h := NewExportHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/rolls?filter=pity", nil)
	rec := httptest.NewRecorder()

	h.HandleExportRolls(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestHandleExportRolls_BadFilter(t *testing.T) {
	mockSvc := new(MockExportService)
	mockSvc.On("RollsCSV", mock.Anything, export.Filter("bogus")).Return(nil, domain.ErrInvalidInput)

	h := NewExportHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/rolls?filter=bogus", nil)
	rec := httptest.NewRecorder()

	h.HandleExportRolls(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExportPrizes(t *testing.T) {
	csv := []byte("prize_id,username\npz-1,alice\n")

	mockSvc := new(MockExportService)
	mockSvc.On("PrizesCSV", mock.Anything).Return(csv, nil)

	h := NewExportHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/prizes", nil)
	rec := httptest.NewRecorder()

	h.HandleExportPrizes(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, csv, rec.Body.Bytes())
}
