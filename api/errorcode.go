package api

import (
	"github.com/cnet-digital/backoffice-api/directory"
	"github.com/cnet-digital/backoffice-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "invalid api key",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "unknown request category",
		1013: "unknown request status",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrReceiptNotFound.Error(),
		1202: store.ErrAmbiguousReceipt.Error(),
		1203: store.ErrAlreadyTakenInCharge.Error(),
		1204: "file extension is not allowed",
		1205: directory.ErrEmployeeNotFound.Error(),
		1206: store.ErrFileNotFound.Error(),
		1207: store.ErrPublicationNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidAPIKey              = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorUnknownCategory    = errorJSON(1012)
	errorUnknownStatus      = errorJSON(1013)

	errorRequestNotFound      = errorJSON(1200)
	errorReceiptNotFound      = errorJSON(1201)
	errorAmbiguousReceipt     = errorJSON(1202)
	errorAlreadyTakenInCharge = errorJSON(1203)
	errorExtensionNotAllowed  = errorJSON(1204)
	errorEmployeeNotFound     = errorJSON(1205)
	errorFileNotFound         = errorJSON(1206)
	errorPublicationNotFound  = errorJSON(1207)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
