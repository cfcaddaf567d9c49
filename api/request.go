package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/cnet-digital/backoffice-api/schema"
	"github.com/cnet-digital/backoffice-api/store"
)

// submitRequest is the API for submitting a new HR document request.
// The record is written with status pending; no processing receipt is
// created at submission.
func (s *Server) submitRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		OffreTitle       string    `json:"offre_title" binding:"required"`
		ShortDescription string    `json:"short_description" binding:"required"`
		Deadline         time.Time `json:"deadline" binding:"required"`
		IDBoost          int64     `json:"IdBoost" binding:"required"`
		City             string    `json:"city" binding:"required"`
		Code             string    `json:"code" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !schema.ValidCategory(params.OffreTitle) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCategory)
		return
	}

	request, err := s.store.CreateRequest(requester, store.RequestDraft{
		OffreTitle:       params.OffreTitle,
		ShortDescription: params.ShortDescription,
		Deadline:         params.Deadline,
		IDBoost:          params.IDBoost,
		City:             params.City,
		Code:             params.Code,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// listRequests returns all matching requests in one shot, with the
// taken-in-charge flag recomputed from the processing ledger.
func (s *Server) listRequests(c *gin.Context) {
	requests, err := s.store.ListRequests(store.RequestFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Status:   c.Query("status"),
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// updateRequestStatus overwrites the status of a request. Any status is
// reachable from any status; being taken in charge is not required.
func (s *Server) updateRequestStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("requestID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !schema.ValidStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownStatus)
		return
	}

	if err := s.store.UpdateRequestStatus(id, params.Status); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// deleteRequest removes a request permanently. The confirmation prompt
// lives in the frontend; receipts referencing the request code are
// intentionally left in the ledger.
func (s *Server) deleteRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("requestID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.DeleteRequest(id); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// findRequest resolves the :requestID route parameter to a record.
func (s *Server) findRequest(c *gin.Context) (*schema.Request, bool) {
	id, err := strconv.ParseInt(c.Param("requestID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return nil, false
	}

	request, err := s.store.GetRequest(id)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return nil, false
	}

	return request, true
}
