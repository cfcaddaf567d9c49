package api

import (
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cnet-digital/backoffice-api/store"
)

// createPublication posts a new back-office publication. The attached
// file travels in the same multipart form as the metadata; it is
// uploaded first and its reference written into the record, so a failed
// record insert can leave an unreferenced file in the library.
func (s *Server) createPublication(c *gin.Context) {
	var params struct {
		OffreTitle       string `form:"offre_title" binding:"required"`
		ShortDescription string `form:"short_description" binding:"required"`
		Deadline         string `form:"deadline" binding:"required"`
		City             string `form:"city"`
		Category         string `form:"category"`
		Link             string `form:"link"`
	}

	if err := c.ShouldBind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	deadline, err := time.Parse(time.RFC3339, params.Deadline)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	draft := store.PublicationDraft{
		OffreTitle:       params.OffreTitle,
		ShortDescription: params.ShortDescription,
		Deadline:         deadline,
		City:             params.City,
		Category:         params.Category,
		Link:             params.Link,
	}

	if header, err := c.FormFile("file"); err == nil {
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

		draft.FileURL = ref
		draft.FileName = header.Filename
		draft.FileType = strings.TrimPrefix(path.Ext(header.Filename), ".")
	}

	publication, err := s.store.CreatePublication(draft)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, publication)
}

func (s *Server) listPublications(c *gin.Context) {
	publications, err := s.store.ListPublications()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"publications": publications})
}

func (s *Server) updatePublication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("publicationID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		OffreTitle       string    `json:"offre_title" binding:"required"`
		ShortDescription string    `json:"short_description" binding:"required"`
		Deadline         time.Time `json:"deadline" binding:"required"`
		City             string    `json:"city"`
		FileType         string    `json:"fileType"`
		Category         string    `json:"category"`
		Link             string    `json:"link"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	err = s.store.UpdatePublication(id, store.PublicationDraft{
		OffreTitle:       params.OffreTitle,
		ShortDescription: params.ShortDescription,
		Deadline:         params.Deadline,
		City:             params.City,
		FileType:         params.FileType,
		Category:         params.Category,
		Link:             params.Link,
	})
	if err != nil {
		if err == store.ErrPublicationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPublicationNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) deletePublication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("publicationID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.DeletePublication(id); err != nil {
		if err == store.ErrPublicationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPublicationNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
