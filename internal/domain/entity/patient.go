package entity

import "time"

// Gender is the closed set of values accepted for Patient.Gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether g is one of the known genders
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// Patient represents a registered patient record
type Patient struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Age              int       `gorm:"not null" json:"age"`
	Gender           Gender    `gorm:"type:varchar(10);not null" json:"gender"`
	Phone            *string   `gorm:"type:varchar(20)" json:"phone"`
	Address          *string   `gorm:"type:text" json:"address"`
	MedicalCondition string    `gorm:"type:text;not null" json:"medical_condition"`
	Notes            *string   `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// PendingCaseKeywords mark a patient as a pending case when found in the
// medical condition text. This is a heuristic, there is no status column.
var PendingCaseKeywords = []string{"follow-up", "under observation"}
