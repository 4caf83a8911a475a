package entity

import "time"

// PatientFilter is a domain-level filter for querying patients.
type PatientFilter struct {
	Search string // Substring of name, phone or medical condition
	Gender Gender // Ignored unless valid
	Limit  int
	Offset int
}

// DoctorFilter is a domain-level filter for querying doctors.
type DoctorFilter struct {
	Specialty Specialty    // Ignored unless valid
	Status    DoctorStatus // Compared as given
	Search    string       // Substring of name or specialty
}

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	From        *time.Time // Inclusive
	To          *time.Time // Inclusive
	Status      string
	DoctorName  string
	PatientName string
}

// StatusCount is a group-by row of appointments per status
type StatusCount struct {
	Status AppointmentStatus
	Total  int64
}
