package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/usecase"
	"github.com/Swastik2002/TrustMed/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubAppointmentUsecase struct {
	bookErr   error
	statusErr error
	getErr    error
}

func (s *stubAppointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return &dto.AppointmentResponse{
		ID: uuid.New(), PatientID: req.PatientID, DoctorID: req.DoctorID,
		Date: req.Date, Time: req.Time, Status: "scheduled",
	}, nil
}

func (s *stubAppointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &dto.AppointmentResponse{ID: id, Status: "scheduled"}, nil
}

func (s *stubAppointmentUsecase) GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (s *stubAppointmentUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return &dto.AppointmentResponse{ID: id, Status: status}, nil
}

func (s *stubAppointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.statusErr
}

type stubAvailabilityUsecase struct {
	result *dto.AvailabilityResponse
	err    error
}

func (s *stubAvailabilityUsecase) GetAvailability(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestHandler(appt *stubAppointmentUsecase, avail *stubAvailabilityUsecase) *AppointmentHandler {
	return NewAppointmentHandler(appt, avail, validator.NewValidator())
}

func bookBody(t *testing.T) string {
	t.Helper()
	body, err := json.Marshal(dto.BookAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		Date:      "2026-09-14",
		Time:      "10:00 AM",
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return string(body)
}

func TestAppointmentHandlerBook(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(bookBody(t)))
		rec := httptest.NewRecorder()

		h.Book(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
	})

	t.Run("slot taken maps to 400", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{bookErr: usecase.ErrSlotTaken}, &stubAvailabilityUsecase{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(bookBody(t)))
		rec := httptest.NewRecorder()

		h.Book(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("no schedule maps to 400", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{bookErr: usecase.ErrNoSchedule}, &stubAvailabilityUsecase{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(bookBody(t)))
		rec := httptest.NewRecorder()

		h.Book(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(`{"date":"2026-09-14"}`))
		rec := httptest.NewRecorder()

		h.Book(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestAppointmentHandlerGetByID(t *testing.T) {
	t.Run("missing maps to 404", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{getErr: usecase.ErrAppointmentNotFound}, &stubAvailabilityUsecase{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+uuid.NewString(), nil)
		req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("bad uuid maps to 400", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/nope", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "nope"})
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestAppointmentHandlerAvailability(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{
			result: &dto.AvailabilityResponse{Available: true, Slots: []string{"9:00 AM"}},
		})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/availability?doctorId="+uuid.NewString()+"&date=2026-09-14", nil)
		rec := httptest.NewRecorder()

		h.GetAvailability(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("corrupt schedule maps to 500", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{err: usecase.ErrScheduleCorrupt})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/availability?doctorId="+uuid.NewString()+"&date=2026-09-14", nil)
		rec := httptest.NewRecorder()

		h.GetAvailability(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
	})

	t.Run("missing date maps to 400", func(t *testing.T) {
		h := newTestHandler(&stubAppointmentUsecase{}, &stubAvailabilityUsecase{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/availability?doctorId="+uuid.NewString(), nil)
		rec := httptest.NewRecorder()

		h.GetAvailability(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}
