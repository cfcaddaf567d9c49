package store

import (
	"os"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/suite"
)

type PublicationTestSuite struct {
	suite.Suite
	ormDB *gorm.DB
	dir   string
	store *BackOfficeStore
}

func (s *PublicationTestSuite) SetupSuite() {
	s.ormDB, s.dir = openTestDB(&s.Suite)
	s.store = NewBackOfficeStore(s.ormDB)
}

func (s *PublicationTestSuite) SetupTest() {
	cleanTables(&s.Suite, s.ormDB)
}

func (s *PublicationTestSuite) TearDownSuite() {
	s.ormDB.Close()
	os.RemoveAll(s.dir)
}

func (s *PublicationTestSuite) TestCreateAndListNewestFirst() {
	first, err := s.store.CreatePublication(PublicationDraft{
		OffreTitle:       "Note de service",
		ShortDescription: "horaires d'été",
		Deadline:         time.Now().AddDate(0, 1, 0),
		City:             "rabat",
		FileType:         "pdf",
		FileURL:          "/AttestationsPdf/5ea0a000000000000000a001/note.pdf",
		FileName:         "note.pdf",
		Category:         "RH",
	})
	s.NoError(err)

	second, err := s.store.CreatePublication(PublicationDraft{
		OffreTitle:       "Campagne CNSS",
		ShortDescription: "bordereaux disponibles",
		Deadline:         time.Now().AddDate(0, 2, 0),
		Category:         "RH",
	})
	s.NoError(err)

	publications, err := s.store.ListPublications()
	s.NoError(err)
	s.Require().Len(publications, 2)
	s.Equal(second.ID, publications[0].ID)
	s.Equal(first.ID, publications[1].ID)
	s.Equal("note.pdf", publications[1].FileName)
}

func (s *PublicationTestSuite) TestUpdateKeepsFileUnlessReplaced() {
	created, err := s.store.CreatePublication(PublicationDraft{
		OffreTitle:       "Note de service",
		ShortDescription: "horaires d'été",
		Deadline:         time.Now().AddDate(0, 1, 0),
		FileURL:          "/AttestationsPdf/5ea0a000000000000000a001/note.pdf",
		FileName:         "note.pdf",
		FileType:         "pdf",
	})
	s.NoError(err)

	err = s.store.UpdatePublication(created.ID, PublicationDraft{
		OffreTitle:       "Note de service",
		ShortDescription: "horaires d'hiver",
		Deadline:         time.Now().AddDate(0, 3, 0),
		FileType:         "pdf",
	})
	s.NoError(err)

	publications, err := s.store.ListPublications()
	s.NoError(err)
	s.Require().Len(publications, 1)
	s.Equal("horaires d'hiver", publications[0].ShortDescription)
	s.Equal("note.pdf", publications[0].FileName)
	s.NotEmpty(publications[0].FileURL)

	s.Equal(ErrPublicationNotFound, s.store.UpdatePublication(created.ID+100, PublicationDraft{}))
}

func (s *PublicationTestSuite) TestDeletePublication() {
	created, err := s.store.CreatePublication(PublicationDraft{
		OffreTitle:       "Note de service",
		ShortDescription: "x",
		Deadline:         time.Now(),
	})
	s.NoError(err)

	s.NoError(s.store.DeletePublication(created.ID))
	s.Equal(ErrPublicationNotFound, s.store.DeletePublication(created.ID))
}

func (s *PublicationTestSuite) TestPurgeExpiredPublications() {
	_, err := s.store.CreatePublication(PublicationDraft{
		OffreTitle:       "Expirée",
		ShortDescription: "x",
		Deadline:         time.Now().AddDate(0, 0, -10),
	})
	s.NoError(err)

	kept, err := s.store.CreatePublication(PublicationDraft{
		OffreTitle:       "Courante",
		ShortDescription: "y",
		Deadline:         time.Now().AddDate(0, 0, 10),
	})
	s.NoError(err)

	purged, err := s.store.PurgeExpiredPublications(time.Now().AddDate(0, 0, -1))
	s.NoError(err)
	s.Equal(int64(1), purged)

	publications, err := s.store.ListPublications()
	s.NoError(err)
	s.Require().Len(publications, 1)
	s.Equal(kept.ID, publications[0].ID)
}

func TestPublicationTestSuite(t *testing.T) {
	suite.Run(t, new(PublicationTestSuite))
}
