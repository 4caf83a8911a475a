package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func newTestDoctorUsecase() (DoctorUsecase, *mockDoctorRepo) {
	repo := newMockDoctorRepo()
	return NewDoctorUsecase(newTestLogger(), repo, &recordingPublisher{}), repo
}

func createDoctor(t *testing.T, uc DoctorUsecase, name, specialty, status string) *dto.DoctorResponse {
	t.Helper()
	res, err := uc.Create(context.Background(), &dto.CreateDoctorRequest{
		Name:       name,
		Specialty:  specialty,
		Experience: "10 years",
		Status:     status,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return res
}

func TestDoctorUsecase_Create_DefaultStatus(t *testing.T) {
	uc, _ := newTestDoctorUsecase()

	doctor := createDoctor(t, uc, "dr. Hendra", "surgery", "")
	if doctor.Status != string(entity.DoctorStatusOnDuty) {
		t.Errorf("expected default status on_duty, got %s", doctor.Status)
	}
}

func TestDoctorUsecase_GetAll_Summary(t *testing.T) {
	uc, _ := newTestDoctorUsecase()
	ctx := context.Background()

	createDoctor(t, uc, "dr. Ani", "pediatrics", "on_duty")
	createDoctor(t, uc, "dr. Bayu", "pediatrics", "on_leave")
	createDoctor(t, uc, "dr. Citra", "dentistry", "on_duty")

	res, err := uc.GetAll(ctx, dto.DoctorListQuery{})
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}

	if res.Summary.Total != 3 || len(res.Doctors) != 3 {
		t.Errorf("expected 3 doctors, got %d", res.Summary.Total)
	}
	if res.Summary.SpecialtyCount["pediatrics"] != 2 || res.Summary.SpecialtyCount["dentistry"] != 1 {
		t.Errorf("unexpected specialty count %v", res.Summary.SpecialtyCount)
	}
	if res.Summary.StatusCount["on_duty"] != 2 || res.Summary.StatusCount["on_leave"] != 1 {
		t.Errorf("unexpected status count %v", res.Summary.StatusCount)
	}

	// Summary follows the filtered rows
	res, err = uc.GetAll(ctx, dto.DoctorListQuery{Specialty: "pediatrics", Status: "on_duty"})
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if res.Summary.Total != 1 || res.Doctors[0].Name != "dr. Ani" {
		t.Errorf("expected only dr. Ani, got %+v", res.Doctors)
	}
}

func TestDoctorUsecase_GetAll_IgnoresUnknownSpecialty(t *testing.T) {
	uc, _ := newTestDoctorUsecase()

	createDoctor(t, uc, "dr. Dimas", "surgery", "")

	res, err := uc.GetAll(context.Background(), dto.DoctorListQuery{Specialty: "cardiology"})
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if res.Summary.Total != 1 {
		t.Errorf("expected unknown specialty to be ignored, got %d rows", res.Summary.Total)
	}
}

func TestDoctorUsecase_UpdateAndDelete(t *testing.T) {
	uc, _ := newTestDoctorUsecase()
	ctx := context.Background()
	created := createDoctor(t, uc, "dr. Eka", "ophthalmology", "")

	updated, err := uc.Update(ctx, created.ID, &dto.UpdateDoctorRequest{Status: strPtr("resigned")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != "resigned" || updated.Specialty != "ophthalmology" {
		t.Errorf("unexpected doctor %+v", updated)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := uc.GetByID(ctx, created.ID); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, created.ID); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound on second delete, got %v", err)
	}
}
