package store

import (
	"fmt"
	"time"

	"github.com/cnet-digital/backoffice-api/schema"
)

var (
	ErrRequestNotFound = fmt.Errorf("the request does not exist")
)

// RequestDraft carries the operator-submitted fields of a new request.
// The requester identity is passed separately: it is resolved once at
// the API boundary and never re-fetched mid-operation.
type RequestDraft struct {
	OffreTitle       string
	ShortDescription string
	Deadline         time.Time
	IDBoost          int64
	City             string
	Code             string
}

// RequestFilter narrows ListRequests. Empty fields match everything.
type RequestFilter struct {
	Category string
	City     string
	Status   string
}

// CreateRequest writes a new request with status pending. No receipt is
// created at submission; a request becomes taken in charge only through
// TakeInCharge.
func (s *BackOfficeStore) CreateRequest(requester string, draft RequestDraft) (*schema.Request, error) {
	request := schema.Request{
		OffreTitle:       draft.OffreTitle,
		ShortDescription: draft.ShortDescription,
		Deadline:         draft.Deadline,
		UserEmail:        requester,
		IDBoost:          draft.IDBoost,
		Status:           schema.STATUS_PENDING,
		City:             draft.City,
		Code:             draft.Code,
		CreatedAt:        time.Now(),
	}

	if err := s.ormDB.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *BackOfficeStore) GetRequest(id int64) (*schema.Request, error) {
	var request schema.Request
	if err := s.ormDB.Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}

	if err := s.annotateProcessing(&request); err != nil {
		return nil, err
	}

	return &request, nil
}

// ListRequests returns every matching request in primary-key order. The
// whole result set is fetched in one call; there is no pagination, which
// bounds this API to list sizes an operator screen can hold anyway.
// The isTakenInCharge flag and assignee are recomputed from the active
// receipts of the processing ledger on every read.
func (s *BackOfficeStore) ListRequests(filter RequestFilter) ([]schema.Request, error) {
	requests := []schema.Request{}

	query := s.ormDB.Order("id")
	if filter.Category != "" {
		query = query.Where("offre_title = ?", filter.Category)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}

	assignees, err := s.activeAssignees()
	if err != nil {
		return nil, err
	}

	for i := range requests {
		if username, ok := assignees[requests[i].Code]; ok {
			requests[i].IsTakenInCharge = true
			requests[i].TakenInChargeBy = username
		}
	}

	return requests, nil
}

// UpdateRequestStatus overwrites the status unconditionally. Statuses
// form a flat set: any status is reachable from any status, whether or
// not the request is taken in charge.
func (s *BackOfficeStore) UpdateRequestStatus(id int64, status string) error {
	result := s.ormDB.Model(schema.Request{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// DeleteRequest removes a request permanently. Receipts referencing the
// request code are kept: the ledger is an audit trail and is never
// cascaded.
func (s *BackOfficeStore) DeleteRequest(id int64) error {
	result := s.ormDB.Where("id = ?", id).Delete(schema.Request{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// SetRequestDocument writes the stored-file reference of an uploaded
// attachment onto the request.
func (s *BackOfficeStore) SetRequestDocument(id int64, fileURL string) error {
	result := s.ormDB.Model(schema.Request{}).
		Where("id = ?", id).
		Update("pdfLink", fileURL)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// activeAssignees maps request codes to the assignee of their active
// receipt, if any.
func (s *BackOfficeStore) activeAssignees() (map[string]string, error) {
	receipts := []schema.ProcessingReceipt{}
	if err := s.ormDB.
		Where("datedefindetraitement IS NULL").
		Find(&receipts).Error; err != nil {
		return nil, err
	}

	assignees := make(map[string]string, len(receipts))
	for _, r := range receipts {
		assignees[r.Code] = r.Username
	}
	return assignees, nil
}

func (s *BackOfficeStore) annotateProcessing(request *schema.Request) error {
	assignees, err := s.activeAssignees()
	if err != nil {
		return err
	}

	if username, ok := assignees[request.Code]; ok {
		request.IsTakenInCharge = true
		request.TakenInChargeBy = username
	}
	return nil
}
