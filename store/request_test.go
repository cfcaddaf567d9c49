package store

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/suite"

	"github.com/cnet-digital/backoffice-api/schema"
)

// openTestDB opens a throwaway sqlite database migrated to the list
// schema. The sqlite dialect has no partial unique indexes, so the
// transactional precondition check in TakeInCharge is what the suites
// exercise.
func openTestDB(s *suite.Suite) (*gorm.DB, string) {
	dir, err := ioutil.TempDir("", "backoffice-store-test")
	if err != nil {
		s.T().Fatalf("create temp dir with error: %s", err)
	}

	ormDB, err := gorm.Open("sqlite3", filepath.Join(dir, "store.db"))
	if err != nil {
		s.T().Fatalf("open sqlite database with error: %s", err)
	}

	if err := NewBackOfficeStore(ormDB).Migrate(); err != nil {
		s.T().Fatalf("migrate with error: %s", err)
	}

	return ormDB, dir
}

func cleanTables(s *suite.Suite, ormDB *gorm.DB) {
	for _, model := range []interface{}{
		schema.Request{},
		schema.ProcessingReceipt{},
		schema.Publication{},
	} {
		if err := ormDB.Delete(model).Error; err != nil {
			s.T().Fatalf("clean table with error: %s", err)
		}
	}
}

type RequestTestSuite struct {
	suite.Suite
	ormDB *gorm.DB
	dir   string
	store *BackOfficeStore
}

func (s *RequestTestSuite) SetupSuite() {
	s.ormDB, s.dir = openTestDB(&s.Suite)
	s.store = NewBackOfficeStore(s.ormDB)
}

func (s *RequestTestSuite) SetupTest() {
	cleanTables(&s.Suite, s.ormDB)
}

func (s *RequestTestSuite) TearDownSuite() {
	s.ormDB.Close()
	os.RemoveAll(s.dir)
}

func (s *RequestTestSuite) TestCreateRequestRoundTrip() {
	deadline := time.Now().AddDate(0, 0, 7)

	created, err := s.store.CreateRequest("alice@cnet.co", RequestDraft{
		OffreTitle:       "Attestation de travail",
		ShortDescription: "besoin pour la banque",
		Deadline:         deadline,
		IDBoost:          4521,
		City:             "rabat",
		Code:             "C1",
	})
	s.NoError(err)
	s.NotZero(created.ID)
	s.Equal(schema.STATUS_PENDING, created.Status)

	requests, err := s.store.ListRequests(RequestFilter{})
	s.NoError(err)
	s.Len(requests, 1)

	got := requests[0]
	s.Equal("Attestation de travail", got.OffreTitle)
	s.Equal("besoin pour la banque", got.ShortDescription)
	s.Equal("alice@cnet.co", got.UserEmail)
	s.Equal(int64(4521), got.IDBoost)
	s.Equal(schema.STATUS_PENDING, got.Status)
	s.Equal("rabat", got.City)
	s.Equal("C1", got.Code)
	s.WithinDuration(deadline, got.Deadline, time.Second)
	s.False(got.IsTakenInCharge)
	s.Empty(got.TakenInChargeBy)
}

func (s *RequestTestSuite) TestListRequestsFilter() {
	_, err := s.store.CreateRequest("alice@cnet.co", RequestDraft{
		OffreTitle: "Attestation de travail", ShortDescription: "x",
		Deadline: time.Now(), IDBoost: 1, City: "rabat", Code: "C1",
	})
	s.NoError(err)
	_, err = s.store.CreateRequest("bob@cnet.co", RequestDraft{
		OffreTitle: "Attestation de salaire", ShortDescription: "y",
		Deadline: time.Now(), IDBoost: 2, City: "casablanca", Code: "C2",
	})
	s.NoError(err)

	byCategory, err := s.store.ListRequests(RequestFilter{Category: "Attestation de salaire"})
	s.NoError(err)
	s.Len(byCategory, 1)
	s.Equal("C2", byCategory[0].Code)

	byCity, err := s.store.ListRequests(RequestFilter{City: "rabat"})
	s.NoError(err)
	s.Len(byCity, 1)
	s.Equal("C1", byCity[0].Code)

	none, err := s.store.ListRequests(RequestFilter{City: "rabat", Category: "Attestation de salaire"})
	s.NoError(err)
	s.Len(none, 0)
}

func (s *RequestTestSuite) TestUpdateRequestStatus() {
	created, err := s.store.CreateRequest("alice@cnet.co", RequestDraft{
		OffreTitle: "Attestation de congé", ShortDescription: "x",
		Deadline: time.Now(), IDBoost: 1, City: "rabat", Code: "C1",
	})
	s.NoError(err)

	s.NoError(s.store.UpdateRequestStatus(created.ID, schema.STATUS_RESOLVED))

	got, err := s.store.GetRequest(created.ID)
	s.NoError(err)
	s.Equal(schema.STATUS_RESOLVED, got.Status)

	s.Equal(ErrRequestNotFound, s.store.UpdateRequestStatus(created.ID+100, schema.STATUS_CLOSED))
}

func (s *RequestTestSuite) TestDeleteRequestKeepsLedger() {
	created, err := s.store.CreateRequest("alice@cnet.co", RequestDraft{
		OffreTitle: "Attestation de travail", ShortDescription: "x",
		Deadline: time.Now(), IDBoost: 1, City: "rabat", Code: "C1",
	})
	s.NoError(err)

	_, err = s.store.TakeInCharge("C1", "bob@cnet.co")
	s.NoError(err)

	s.NoError(s.store.DeleteRequest(created.ID))
	s.Equal(ErrRequestNotFound, s.store.DeleteRequest(created.ID))

	// the receipt survives as an orphaned audit record
	var receipts int
	s.NoError(s.ormDB.Model(schema.ProcessingReceipt{}).
		Where("code = ?", "C1").Count(&receipts).Error)
	s.Equal(1, receipts)
}

func (s *RequestTestSuite) TestSetRequestDocument() {
	created, err := s.store.CreateRequest("alice@cnet.co", RequestDraft{
		OffreTitle: "Attestation de travail", ShortDescription: "x",
		Deadline: time.Now(), IDBoost: 1, City: "rabat", Code: "C1",
	})
	s.NoError(err)

	ref := "/AttestationsPdf/5ea0a000000000000000a000/attestation.pdf"
	s.NoError(s.store.SetRequestDocument(created.ID, ref))

	got, err := s.store.GetRequest(created.ID)
	s.NoError(err)
	s.Equal(ref, got.PdfLink)
}

func TestRequestTestSuite(t *testing.T) {
	suite.Run(t, new(RequestTestSuite))
}
