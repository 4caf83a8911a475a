package entity

import "time"

// Specialty is the department a doctor belongs to
type Specialty string

const (
	SpecialtyInternalMedicine Specialty = "internal_medicine"
	SpecialtySurgery          Specialty = "surgery"
	SpecialtyPediatrics       Specialty = "pediatrics"
	SpecialtyGynecology       Specialty = "gynecology"
	SpecialtyOphthalmology    Specialty = "ophthalmology"
	SpecialtyDentistry        Specialty = "dentistry"
)

// Specialties lists every department in display order
var Specialties = []Specialty{
	SpecialtyInternalMedicine,
	SpecialtySurgery,
	SpecialtyPediatrics,
	SpecialtyGynecology,
	SpecialtyOphthalmology,
	SpecialtyDentistry,
}

func (s Specialty) IsValid() bool {
	for _, v := range Specialties {
		if s == v {
			return true
		}
	}
	return false
}

// DoctorStatus represents the employment status of a doctor
type DoctorStatus string

const (
	DoctorStatusOnDuty   DoctorStatus = "on_duty"
	DoctorStatusOnLeave  DoctorStatus = "on_leave"
	DoctorStatusResigned DoctorStatus = "resigned"
)

func (s DoctorStatus) IsValid() bool {
	switch s {
	case DoctorStatusOnDuty, DoctorStatusOnLeave, DoctorStatusResigned:
		return true
	}
	return false
}

// Doctor represents a member of the medical staff
type Doctor struct {
	ID         uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string       `gorm:"type:varchar(100);not null;index" json:"name"`
	Specialty  Specialty    `gorm:"type:varchar(30);not null;index" json:"specialty"`
	Experience string       `gorm:"type:varchar(50);not null" json:"experience"`
	Phone      *string      `gorm:"type:varchar(20)" json:"phone"`
	Status     DoctorStatus `gorm:"type:varchar(20);not null;default:'on_duty'" json:"status"`
	Notes      *string      `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// SpecialtyCount is a group-by row of doctors per specialty
type SpecialtyCount struct {
	Specialty   Specialty
	DoctorCount int64
}
