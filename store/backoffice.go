package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/cnet-digital/backoffice-api/schema"
)

// back office main datastore
type BackOfficeCore interface {
	Ping() error
	Migrate() error

	// Requests
	CreateRequest(requester string, draft RequestDraft) (*schema.Request, error)
	GetRequest(id int64) (*schema.Request, error)
	ListRequests(filter RequestFilter) ([]schema.Request, error)
	UpdateRequestStatus(id int64, status string) error
	DeleteRequest(id int64) error
	SetRequestDocument(id int64, fileURL string) error

	// Processing ledger
	TakeInCharge(code, assignee string) (*schema.ProcessingReceipt, error)
	Release(code string) (*schema.ProcessingReceipt, error)

	// Publications
	CreatePublication(draft PublicationDraft) (*schema.Publication, error)
	ListPublications() ([]schema.Publication, error)
	UpdatePublication(id int64, draft PublicationDraft) error
	DeletePublication(id int64) error
	PurgeExpiredPublications(before time.Time) (int64, error)

	// Statistics
	RequestStatistics() (*schema.RequestStatistics, error)
}

// BackOfficeStore is an implementation of BackOfficeCore
type BackOfficeStore struct {
	ormDB *gorm.DB
}

func NewBackOfficeStore(ormDB *gorm.DB) *BackOfficeStore {
	return &BackOfficeStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *BackOfficeStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Migrate creates the list tables. On postgres it also installs a
// partial unique index so that at most one active receipt can exist per
// request code; the index is the atomic backstop for the precondition
// check in TakeInCharge. Other dialects rely on the transactional check
// alone.
func (s *BackOfficeStore) Migrate() error {
	if err := s.ormDB.AutoMigrate(
		&schema.Request{},
		&schema.ProcessingReceipt{},
		&schema.Publication{},
	).Error; err != nil {
		return err
	}

	if s.ormDB.Dialect().GetName() == "postgres" {
		return s.ormDB.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS "idx_processing_request_active"
			ON "processingRequest" (code) WHERE datedefindetraitement IS NULL`,
		).Error
	}

	return nil
}
