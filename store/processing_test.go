package store

import (
	"os"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/suite"

	"github.com/cnet-digital/backoffice-api/schema"
)

type ProcessingTestSuite struct {
	suite.Suite
	ormDB *gorm.DB
	dir   string
	store *BackOfficeStore
}

func (s *ProcessingTestSuite) SetupSuite() {
	s.ormDB, s.dir = openTestDB(&s.Suite)
	s.store = NewBackOfficeStore(s.ormDB)
}

func (s *ProcessingTestSuite) SetupTest() {
	cleanTables(&s.Suite, s.ormDB)
}

func (s *ProcessingTestSuite) TearDownSuite() {
	s.ormDB.Close()
	os.RemoveAll(s.dir)
}

func (s *ProcessingTestSuite) submit(code string) *schema.Request {
	request, err := s.store.CreateRequest("alice@cnet.co", RequestDraft{
		OffreTitle:       "Attestation de travail",
		ShortDescription: "besoin pour la banque",
		Deadline:         time.Now().AddDate(0, 0, 7),
		IDBoost:          4521,
		City:             "rabat",
		Code:             code,
	})
	s.Require().NoError(err)
	return request
}

func (s *ProcessingTestSuite) TestTakeInChargeAndRelease() {
	s.submit("C1")

	receipt, err := s.store.TakeInCharge("C1", "bob@cnet.co")
	s.NoError(err)
	s.Equal("C1", receipt.Code)
	s.Equal("bob@cnet.co", receipt.Username)
	s.True(receipt.Active())

	requests, err := s.store.ListRequests(RequestFilter{})
	s.NoError(err)
	s.Require().Len(requests, 1)
	s.True(requests[0].IsTakenInCharge)
	s.Equal("bob@cnet.co", requests[0].TakenInChargeBy)

	released, err := s.store.Release("C1")
	s.NoError(err)
	s.Require().NotNil(released.DateDeFinDeTraitement)
	s.False(released.DateDeFinDeTraitement.Before(released.DateDeTraitement))

	requests, err = s.store.ListRequests(RequestFilter{})
	s.NoError(err)
	s.Require().Len(requests, 1)
	s.False(requests[0].IsTakenInCharge)
	s.Empty(requests[0].TakenInChargeBy)
}

func (s *ProcessingTestSuite) TestTakeInChargeTwiceFails() {
	s.submit("C1")

	_, err := s.store.TakeInCharge("C1", "bob@cnet.co")
	s.NoError(err)

	_, err = s.store.TakeInCharge("C1", "carol@cnet.co")
	s.Equal(ErrAlreadyTakenInCharge, err)

	// the first receipt is untouched
	requests, err := s.store.ListRequests(RequestFilter{})
	s.NoError(err)
	s.Require().Len(requests, 1)
	s.Equal("bob@cnet.co", requests[0].TakenInChargeBy)
}

func (s *ProcessingTestSuite) TestTakeInChargeAgainAfterRelease() {
	s.submit("C1")

	_, err := s.store.TakeInCharge("C1", "bob@cnet.co")
	s.NoError(err)
	_, err = s.store.Release("C1")
	s.NoError(err)

	receipt, err := s.store.TakeInCharge("C1", "carol@cnet.co")
	s.NoError(err)
	s.Equal("carol@cnet.co", receipt.Username)

	// the ledger keeps both receipts
	var receipts int
	s.NoError(s.ormDB.Model(schema.ProcessingReceipt{}).
		Where("code = ?", "C1").Count(&receipts).Error)
	s.Equal(2, receipts)
}

func (s *ProcessingTestSuite) TestReleaseNotFound() {
	s.submit("C1")

	_, err := s.store.Release("C9")
	s.Equal(ErrReceiptNotFound, err)

	// nothing was modified
	var receipts int
	s.NoError(s.ormDB.Model(schema.ProcessingReceipt{}).Count(&receipts).Error)
	s.Equal(0, receipts)
}

func (s *ProcessingTestSuite) TestReleaseAmbiguous() {
	s.submit("C1")

	// two active receipts written directly, bypassing the guard, the
	// way legacy list data could look
	start := time.Now()
	for _, username := range []string{"bob@cnet.co", "carol@cnet.co"} {
		s.Require().NoError(s.ormDB.Create(&schema.ProcessingReceipt{
			DateDeTraitement: start,
			Username:         username,
			Code:             "C1",
		}).Error)
	}

	_, err := s.store.Release("C1")
	s.Equal(ErrAmbiguousReceipt, err)

	// both receipts stay active
	var active int
	s.NoError(s.ormDB.Model(schema.ProcessingReceipt{}).
		Where("code = ? AND datedefindetraitement IS NULL", "C1").
		Count(&active).Error)
	s.Equal(2, active)
}

func (s *ProcessingTestSuite) TestWorkflowScenario() {
	request := s.submit("C1")
	s.Equal(schema.STATUS_PENDING, request.Status)

	_, err := s.store.TakeInCharge("C1", "bob@cnet.co")
	s.NoError(err)

	requests, err := s.store.ListRequests(RequestFilter{})
	s.NoError(err)
	s.Require().Len(requests, 1)
	s.True(requests[0].IsTakenInCharge)
	s.Equal("bob@cnet.co", requests[0].TakenInChargeBy)

	released, err := s.store.Release("C1")
	s.NoError(err)
	s.Require().NotNil(released.DateDeFinDeTraitement)
	s.True(released.DateDeFinDeTraitement.Sub(released.DateDeTraitement) >= 0)

	requests, err = s.store.ListRequests(RequestFilter{})
	s.NoError(err)
	s.Require().Len(requests, 1)
	s.False(requests[0].IsTakenInCharge)
}

func TestProcessingTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessingTestSuite))
}
