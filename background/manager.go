package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"

	"github.com/cnet-digital/backoffice-api/store"
)

// BackgroundManager runs the back-office maintenance jobs off the
// request path, through the machinery task queue.
type BackgroundManager struct {
	store store.BackOfficeCore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      store.NewBackOfficeStore(ormDB),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("backoffice-worker", 5)
	return m.worker.Launch()
}
