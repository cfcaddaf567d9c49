package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cnet-digital/backoffice-api/directory"
	"github.com/cnet-digital/backoffice-api/docgen"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// downloadAttestation renders the attestation document for a request.
// The employee fields come from the roster keyed by the request's
// IdBoost; the request category decides the document title.
func (s *Server) downloadAttestation(c *gin.Context) {
	request, ok := s.findRequest(c)
	if !ok {
		return
	}

	employee, err := s.directory.FindByIDBoost(request.IDBoost)
	if err != nil {
		if err == directory.ErrEmployeeNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorEmployeeNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	var buf bytes.Buffer
	if err := docgen.Attestation(&buf, request.OffreTitle, employee, time.Now()); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+docgen.Filename(request.OffreTitle)+`"`)
	c.Data(http.StatusOK, docxContentType, buf.Bytes())
}
