package schema

import (
	"time"
)

// Publication is a back-office announcement with an attached document,
// shown on the intranet until its deadline passes. Column names mirror
// the historical "BackOfficeV5" list.
type Publication struct {
	ID               int64     `json:"id" gorm:"column:id;primary_key;auto_increment"`
	OffreTitle       string    `json:"offre_title" gorm:"column:offre_title"`
	ShortDescription string    `json:"short_description" gorm:"column:short_description"`
	Deadline         time.Time `json:"deadline" gorm:"column:deadline"`
	City             string    `json:"city" gorm:"column:city"`
	FileType         string    `json:"fileType" gorm:"column:fileType"`
	FileURL          string    `json:"fileUrl" gorm:"column:fileUrl"`
	FileName         string    `json:"fileName" gorm:"column:fileName"`
	Category         string    `json:"category" gorm:"column:category"`
	Link             string    `json:"link" gorm:"column:link"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Publication) TableName() string {
	return "BackOfficeV5"
}
