package usecase

import (
	"context"
	"testing"

	"github.com/Swastik2002/TrustMed/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestCreateSchedule(t *testing.T) {
	doctorID := uuid.New()

	request := func() *dto.CreateScheduleRequest {
		return &dto.CreateScheduleRequest{
			DoctorID:     doctorID,
			Date:         "2026-09-14",
			StartTime:    "9:00 AM",
			EndTime:      "5:00 PM",
			SlotDuration: 30,
		}
	}

	newUsecase := func(repo *fakeScheduleRepo, cache *fakeCache) ScheduleUsecase {
		return NewScheduleUsecase(testLogger(), &fakeTransactor{}, repo, cache, &fakeAudit{})
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		cache := newFakeCache()
		u := newUsecase(repo, cache)

		got, err := u.Create(context.Background(), request())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if got.StartTime != "9:00 AM" || got.EndTime != "5:00 PM" {
			t.Fatalf("window = %s to %s", got.StartTime, got.EndTime)
		}
		if len(repo.schedules) != 1 {
			t.Fatalf("stored schedules = %d, want 1", len(repo.schedules))
		}
		if len(cache.invalidated) != 1 {
			t.Fatal("expected availability cache invalidation")
		}
	})

	t.Run("canonicalizes time labels", func(t *testing.T) {
		u := newUsecase(&fakeScheduleRepo{}, newFakeCache())

		req := request()
		req.StartTime = "09:00 AM"
		got, err := u.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if got.StartTime != "9:00 AM" {
			t.Fatalf("start = %q, want canonical 9:00 AM", got.StartTime)
		}
	})

	t.Run("inverted window", func(t *testing.T) {
		u := newUsecase(&fakeScheduleRepo{}, newFakeCache())

		req := request()
		req.StartTime, req.EndTime = req.EndTime, req.StartTime
		if _, err := u.Create(context.Background(), req); err != ErrInvalidTimeWindow {
			t.Fatalf("err = %v, want ErrInvalidTimeWindow", err)
		}
	})

	t.Run("invalid time label", func(t *testing.T) {
		u := newUsecase(&fakeScheduleRepo{}, newFakeCache())

		req := request()
		req.StartTime = "13:00 AM"
		if _, err := u.Create(context.Background(), req); err != ErrInvalidTimeFormat {
			t.Fatalf("err = %v, want ErrInvalidTimeFormat", err)
		}
	})

	t.Run("zero duration", func(t *testing.T) {
		u := newUsecase(&fakeScheduleRepo{}, newFakeCache())

		req := request()
		req.SlotDuration = 0
		if _, err := u.Create(context.Background(), req); err != ErrInvalidDuration {
			t.Fatalf("err = %v, want ErrInvalidDuration", err)
		}
	})

	t.Run("duplicate date", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		u := newUsecase(repo, newFakeCache())

		if _, err := u.Create(context.Background(), request()); err != nil {
			t.Fatalf("first Create: %v", err)
		}
		if _, err := u.Create(context.Background(), request()); err != ErrScheduleExists {
			t.Fatalf("err = %v, want ErrScheduleExists", err)
		}
	})

	// A concurrent Create can pass the existence check and lose the insert
	// race to uq_doctor_schedules_doctor_date instead.
	t.Run("unique violation on concurrent create", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			createErr: &pgconn.PgError{Code: "23505", ConstraintName: "uq_doctor_schedules_doctor_date"},
		}
		tx := &fakeTransactor{}
		u := NewScheduleUsecase(testLogger(), tx, repo, newFakeCache(), &fakeAudit{})

		if _, err := u.Create(context.Background(), request()); err != ErrScheduleExists {
			t.Fatalf("err = %v, want ErrScheduleExists", err)
		}
		if !tx.rolledBack {
			t.Fatal("expected transaction rollback")
		}
	})
}

func TestDeleteSchedule(t *testing.T) {
	doctorID := uuid.New()

	t.Run("delete invalidates availability", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		cache := newFakeCache()
		u := NewScheduleUsecase(testLogger(), &fakeTransactor{}, repo, cache, &fakeAudit{})

		created, err := u.Create(context.Background(), &dto.CreateScheduleRequest{
			DoctorID: doctorID, Date: "2026-09-14",
			StartTime: "9:00 AM", EndTime: "11:00 AM", SlotDuration: 30,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if err := u.Delete(context.Background(), created.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(repo.schedules) != 0 {
			t.Fatal("schedule row still present")
		}
		if len(cache.invalidated) != 2 {
			t.Fatalf("invalidations = %d, want create and delete", len(cache.invalidated))
		}
	})

	t.Run("missing schedule", func(t *testing.T) {
		u := NewScheduleUsecase(testLogger(), &fakeTransactor{}, &fakeScheduleRepo{}, newFakeCache(), &fakeAudit{})

		if err := u.Delete(context.Background(), 99); err != ErrScheduleNotFound {
			t.Fatalf("err = %v, want ErrScheduleNotFound", err)
		}
	})
}
