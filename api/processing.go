package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cnet-digital/backoffice-api/store"
)

// takeInCharge is the API for an operator to claim a request. The
// assignee is the requester identity carried by the token; it is never
// re-fetched from session state.
func (s *Server) takeInCharge(c *gin.Context) {
	assignee := c.GetString("requester")
	if assignee == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
		return
	}

	request, ok := s.findRequest(c)
	if !ok {
		return
	}

	receipt, err := s.store.TakeInCharge(request.Code, assignee)
	if err != nil {
		if err == store.ErrAlreadyTakenInCharge {
			abortWithEncoding(c, http.StatusConflict, errorAlreadyTakenInCharge, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// releaseRequest is the API for an operator to relinquish a claimed
// request. Zero or multiple active receipts for the code are terminal
// errors; nothing is modified in either case.
func (s *Server) releaseRequest(c *gin.Context) {
	request, ok := s.findRequest(c)
	if !ok {
		return
	}

	receipt, err := s.store.Release(request.Code)
	if err != nil {
		switch err {
		case store.ErrReceiptNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorReceiptNotFound, err)
		case store.ErrAmbiguousReceipt:
			abortWithEncoding(c, http.StatusConflict, errorAmbiguousReceipt, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, receipt)
}
