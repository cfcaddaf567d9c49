package store

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/cnet-digital/backoffice-api/schema"
)

var (
	ErrAlreadyTakenInCharge = fmt.Errorf("the request is already taken in charge")
	ErrReceiptNotFound      = fmt.Errorf("no active processing receipt matches this code")
	ErrAmbiguousReceipt     = fmt.Errorf("multiple processing receipts match this code")
)

// TakeInCharge opens a processing receipt for a request code on behalf
// of an assignee. The check for a pre-existing active receipt and the
// insert run in one transaction; on postgres the partial unique index
// installed by Migrate turns a lost race between two operators into a
// unique violation, which is reported as ErrAlreadyTakenInCharge as
// well.
func (s *BackOfficeStore) TakeInCharge(code, assignee string) (*schema.ProcessingReceipt, error) {
	receipt := schema.ProcessingReceipt{
		DateDeTraitement: time.Now(),
		Username:         assignee,
		Code:             code,
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var active int
	if err := tx.Model(schema.ProcessingReceipt{}).
		Where("code = ? AND datedefindetraitement IS NULL", code).
		Count(&active).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if active > 0 {
		tx.Rollback()
		return nil, ErrAlreadyTakenInCharge
	}

	if err := tx.Create(&receipt).Error; err != nil {
		tx.Rollback()
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAlreadyTakenInCharge
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &receipt, nil
}

// Release end-stamps the active receipt of a code. Exactly one active
// receipt must match: zero means the code was never taken in charge (or
// already released), more than one means the ledger was corrupted by
// writes that bypassed TakeInCharge. Both cases are terminal for the
// caller and leave the ledger untouched; no last-assigned-wins
// disambiguation is attempted.
func (s *BackOfficeStore) Release(code string) (*schema.ProcessingReceipt, error) {
	receipts := []schema.ProcessingReceipt{}
	if err := s.ormDB.
		Where("code = ? AND datedefindetraitement IS NULL", code).
		Find(&receipts).Error; err != nil {
		return nil, err
	}

	switch len(receipts) {
	case 0:
		return nil, ErrReceiptNotFound
	case 1:
		// fallthrough to the update
	default:
		return nil, ErrAmbiguousReceipt
	}

	receipt := receipts[0]
	now := time.Now()
	if err := s.ormDB.Model(&receipt).
		Update("datedefindetraitement", now).Error; err != nil {
		return nil, err
	}

	receipt.DateDeFinDeTraitement = &now
	return &receipt, nil
}
