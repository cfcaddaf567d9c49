package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cnet-digital/backoffice-api/store"
)

// attachDocument uploads a supporting document and writes its reference
// onto the request. The extension allowlist is checked before the
// upload call so a rejected file never reaches the file library. The
// upload and the record update are two remote calls: if the second one
// fails the uploaded file stays in the library with no referencing
// record, and the operator retries the whole action.
func (s *Server) attachDocument(c *gin.Context) {
	request, ok := s.findRequest(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !store.AllowedExtension(header.Filename) {
		abortWithEncoding(c, http.StatusBadRequest, errorExtensionNotAllowed)
		return
	}

	file, err := header.Open()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	defer file.Close()

	ref, err := s.fileStore.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.SetRequestDocument(request.ID, ref); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdfLink": ref})
}

// downloadAttachment streams a stored file back by its reference.
func (s *Server) downloadAttachment(c *gin.Context) {
	ref := c.Param("ref")

	stream, filename, err := s.fileStore.Open(c.Request.Context(), ref)
	if err != nil {
		switch err {
		case store.ErrFileNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorFileNotFound, err)
		case store.ErrInvalidFileRef:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}
	defer stream.Close()

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, stream); err != nil {
		log.Error(err)
	}
}
