package background

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// PurgeExpiredPublications is a background job that removes every
// publication whose deadline passed more than a day ago. Uploaded files
// referenced by purged publications stay in the file library; the
// processing ledger is untouched.
func (m *BackgroundManager) PurgeExpiredPublications() error {
	cutoff := time.Now().AddDate(0, 0, -1)

	purged, err := m.store.PurgeExpiredPublications(cutoff)
	if err != nil {
		return err
	}

	log.WithField("prefix", "background").
		Infof("purged %d expired publications", purged)
	return nil
}
