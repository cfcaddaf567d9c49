package schema

import (
	"time"
)

const (
	STATUS_PENDING     = "pending"
	STATUS_IN_PROGRESS = "in progress"
	STATUS_RESOLVED    = "resolved"
	STATUS_CLOSED      = "closed"
	STATUS_REJECTED    = "rejected"
)

// Categories is the fixed set of request categories an employee can
// submit. The strings are part of the stored data and must not change.
var Categories = []string{
	"Attestation de travail",
	"Attestation de salaire",
	"Domicialisation irrévocable de salaire",
	"Attestation de congé",
	"Attestation de salaire annuelle",
	"Borderaux de CNSS",
	"Attestation de titularisation",
	"Bulletins de paie cachetés",
}

// Statuses lists every status a request can carry. Transitions are not
// ordered: an operator may move a request from any status to any other.
var Statuses = []string{
	STATUS_PENDING,
	STATUS_IN_PROGRESS,
	STATUS_RESOLVED,
	STATUS_CLOSED,
	STATUS_REJECTED,
}

// ValidCategory reports whether a category belongs to the fixed set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidStatus reports whether a status belongs to the fixed set.
func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Request is a single HR document request. Column names mirror the
// historical "Communication" list so existing stored data keeps working.
type Request struct {
	ID               int64     `json:"id" gorm:"column:id;primary_key;auto_increment"`
	OffreTitle       string    `json:"offre_title" gorm:"column:offre_title"`
	ShortDescription string    `json:"short_description" gorm:"column:short_description"`
	Deadline         time.Time `json:"deadline" gorm:"column:deadline"`
	UserEmail        string    `json:"userEmail" gorm:"column:userEmail"`
	IDBoost          int64     `json:"IdBoost" gorm:"column:IdBoost"`
	Status           string    `json:"status" gorm:"column:status"`
	City             string    `json:"city" gorm:"column:city"`
	Code             string    `json:"code" gorm:"column:code"`
	PdfLink          string    `json:"pdfLink" gorm:"column:pdfLink"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`

	// Derived from the processing ledger; never persisted. An active
	// receipt for the request code is the single source of truth.
	IsTakenInCharge bool   `json:"isTakenInCharge" gorm:"-"`
	TakenInChargeBy string `json:"takenInChargeBy" gorm:"-"`
}

// TableName keeps the historical list name as the storage contract.
func (Request) TableName() string {
	return "Communication"
}

// RequestStatistics aggregates request counts for the statistics views.
type RequestStatistics struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByCity     map[string]int64 `json:"by_city"`
}
