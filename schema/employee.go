package schema

import (
	"time"
)

// Employee is a row of the HR roster spreadsheet. Attestation documents
// are rendered from these fields, keyed by the IDBOOST identity that
// requests reference through their IdBoost column.
type Employee struct {
	IDBoost  int64     `json:"IDBOOST"`
	FullName string    `json:"full_name"`
	CIN      string    `json:"cin"`
	JobTitle string    `json:"job_title"`
	HireDate time.Time `json:"hire_date"`
}
