package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		Name:             patient.Name,
		Age:              patient.Age,
		Gender:           string(patient.Gender),
		Phone:            patient.Phone,
		Address:          patient.Address,
		MedicalCondition: patient.MedicalCondition,
		Notes:            patient.Notes,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}

// CreatePatientRequestToEntity converts CreatePatientRequest DTO to Patient entity
func CreatePatientRequestToEntity(req *dto.CreatePatientRequest) *entity.Patient {
	patient := &entity.Patient{
		Name:             req.Name,
		Gender:           entity.Gender(req.Gender),
		Phone:            req.Phone,
		Address:          req.Address,
		MedicalCondition: req.MedicalCondition,
		Notes:            req.Notes,
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	return patient
}

// ApplyPatientUpdate copies the fields present in req onto patient
func ApplyPatientUpdate(patient *entity.Patient, req *dto.UpdatePatientRequest) {
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = entity.Gender(*req.Gender)
	}
	if req.Phone != nil {
		patient.Phone = req.Phone
	}
	if req.Address != nil {
		patient.Address = req.Address
	}
	if req.MedicalCondition != nil {
		patient.MedicalCondition = *req.MedicalCondition
	}
	if req.Notes != nil {
		patient.Notes = req.Notes
	}
}

// PatientToAppointmentInfo projects the patient fields shown next to an appointment
func PatientToAppointmentInfo(patient *entity.Patient) *dto.AppointmentPatientInfo {
	if patient == nil {
		return nil
	}

	return &dto.AppointmentPatientInfo{
		Name:      patient.Name,
		Age:       patient.Age,
		Gender:    string(patient.Gender),
		Phone:     patient.Phone,
		Condition: patient.MedicalCondition,
	}
}
