package schema

import (
	"time"
)

// ProcessingReceipt records that an operator took a request in charge.
// A receipt with a null end date is active; receipts are end-stamped on
// release and never deleted, so the table doubles as an audit trail.
// Column names mirror the historical "processingRequest" list.
type ProcessingReceipt struct {
	ID                    int64      `json:"id" gorm:"column:id;primary_key;auto_increment"`
	DateDeTraitement      time.Time  `json:"datedetraitement" gorm:"column:datedetraitement"`
	DateDeFinDeTraitement *time.Time `json:"datedefindetraitement" gorm:"column:datedefindetraitement"`
	Username              string     `json:"username" gorm:"column:username"`
	Code                  string     `json:"code" gorm:"column:code"`
}

func (ProcessingReceipt) TableName() string {
	return "processingRequest"
}

// Active reports whether the receipt has not been released yet.
func (r ProcessingReceipt) Active() bool {
	return r.DateDeFinDeTraitement == nil
}
