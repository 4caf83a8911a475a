package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:         doctor.ID,
		Name:       doctor.Name,
		Specialty:  string(doctor.Specialty),
		Experience: doctor.Experience,
		Phone:      doctor.Phone,
		Status:     string(doctor.Status),
		Notes:      doctor.Notes,
		CreatedAt:  doctor.CreatedAt,
		UpdatedAt:  doctor.UpdatedAt,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}

// CreateDoctorRequestToEntity converts CreateDoctorRequest DTO to Doctor entity.
// Status defaults to on duty.
func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest) *entity.Doctor {
	status := entity.DoctorStatus(req.Status)
	if status == "" {
		status = entity.DoctorStatusOnDuty
	}

	return &entity.Doctor{
		Name:       req.Name,
		Specialty:  entity.Specialty(req.Specialty),
		Experience: req.Experience,
		Phone:      req.Phone,
		Status:     status,
		Notes:      req.Notes,
	}
}

func ApplyDoctorUpdate(doctor *entity.Doctor, req *dto.UpdateDoctorRequest) {
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = entity.Specialty(*req.Specialty)
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.Phone != nil {
		doctor.Phone = req.Phone
	}
	if req.Status != nil {
		doctor.Status = entity.DoctorStatus(*req.Status)
	}
	if req.Notes != nil {
		doctor.Notes = req.Notes
	}
}

func DoctorToAppointmentInfo(doctor *entity.Doctor) *dto.AppointmentDoctorInfo {
	if doctor == nil {
		return nil
	}

	return &dto.AppointmentDoctorInfo{
		Name:       doctor.Name,
		Specialty:  string(doctor.Specialty),
		Experience: doctor.Experience,
	}
}
