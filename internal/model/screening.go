package model

import "encoding/json"

// ScreeningRecord stores one diabetes-risk prediction returned by the
// external scoring service for a patient.
// swagger:model ScreeningRecord
type ScreeningRecord struct {
	UUIDBase
	PatientID   uint            `gorm:"index;type:bigint unsigned" json:"patientId"`
	Patient     *User           `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Features    json.RawMessage `gorm:"type:json" json:"features"`
	RiskLabel   string          `gorm:"size:50" json:"riskLabel"`
	Probability float64         `json:"probability"`
}

func (ScreeningRecord) TableName() string {
	return "screening_records"
}
