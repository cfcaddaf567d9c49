package store

import (
	"fmt"
	"time"

	"github.com/cnet-digital/backoffice-api/schema"
)

var (
	ErrPublicationNotFound = fmt.Errorf("the publication does not exist")
)

// PublicationDraft carries the fields of a new or updated publication.
// The file reference comes from the file store, not from the client.
type PublicationDraft struct {
	OffreTitle       string
	ShortDescription string
	Deadline         time.Time
	City             string
	FileType         string
	FileURL          string
	FileName         string
	Category         string
	Link             string
}

func (s *BackOfficeStore) CreatePublication(draft PublicationDraft) (*schema.Publication, error) {
	publication := schema.Publication{
		OffreTitle:       draft.OffreTitle,
		ShortDescription: draft.ShortDescription,
		Deadline:         draft.Deadline,
		City:             draft.City,
		FileType:         draft.FileType,
		FileURL:          draft.FileURL,
		FileName:         draft.FileName,
		Category:         draft.Category,
		Link:             draft.Link,
		CreatedAt:        time.Now(),
	}

	if err := s.ormDB.Create(&publication).Error; err != nil {
		return nil, err
	}
	return &publication, nil
}

// ListPublications returns every publication, newest first, the order
// the intranet front page shows them in.
func (s *BackOfficeStore) ListPublications() ([]schema.Publication, error) {
	publications := []schema.Publication{}
	if err := s.ormDB.Order("id desc").Find(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

// UpdatePublication overwrites the editable fields of a publication.
// The stored file reference is left alone unless the draft carries a
// new one.
func (s *BackOfficeStore) UpdatePublication(id int64, draft PublicationDraft) error {
	updates := map[string]interface{}{
		"offre_title":       draft.OffreTitle,
		"short_description": draft.ShortDescription,
		"deadline":          draft.Deadline,
		"city":              draft.City,
		"fileType":          draft.FileType,
		"category":          draft.Category,
		"link":              draft.Link,
	}
	if draft.FileURL != "" {
		updates["fileUrl"] = draft.FileURL
		updates["fileName"] = draft.FileName
	}

	result := s.ormDB.Model(schema.Publication{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPublicationNotFound
	}

	return nil
}

func (s *BackOfficeStore) DeletePublication(id int64) error {
	result := s.ormDB.Where("id = ?", id).Delete(schema.Publication{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPublicationNotFound
	}

	return nil
}

// PurgeExpiredPublications deletes publications whose deadline lies
// before the cutoff and returns how many were removed. Uploaded files
// are kept in the file library.
func (s *BackOfficeStore) PurgeExpiredPublications(before time.Time) (int64, error) {
	result := s.ormDB.
		Where("deadline < ?", before).
		Delete(schema.Publication{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
