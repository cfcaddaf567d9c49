package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// adminPurgeExpiredPublications is an internal only api to trigger the
// task that removes publications whose deadline has passed
func (s *Server) adminPurgeExpiredPublications(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "purge_expired_publications",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
