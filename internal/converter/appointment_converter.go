package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientName:     appointment.PatientName,
		DoctorName:      appointment.DoctorName,
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentToDetailResponse attaches the patient and doctor projections.
// Either side may be nil when no record carries the referenced name.
func AppointmentToDetailResponse(appointment *entity.Appointment, patient *entity.Patient, doctor *entity.Doctor) dto.AppointmentDetailResponse {
	return dto.AppointmentDetailResponse{
		AppointmentResponse: *AppointmentToResponse(appointment),
		Patient:             PatientToAppointmentInfo(patient),
		Doctor:              DoctorToAppointmentInfo(doctor),
	}
}

func AppointmentToRecentResponse(appointment *entity.Appointment) dto.RecentAppointmentResponse {
	return dto.RecentAppointmentResponse{
		ID:              appointment.ID,
		PatientName:     appointment.PatientName,
		DoctorName:      appointment.DoctorName,
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
	}
}
