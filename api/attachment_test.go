package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/cnet-digital/backoffice-api/api/mocks"
	"github.com/cnet-digital/backoffice-api/schema"
)

func multipartFile(t *testing.T, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	assert.Nil(t, err, "create form file")
	_, err = fw.Write([]byte("file content"))
	assert.Nil(t, err, "write form file")

	assert.Nil(t, mw.Close(), "close multipart writer")
	return &buf, mw.FormDataContentType()
}

func TestAttachDocument(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBackOfficeCore(ctl)
	f := mocks.NewMockFileStore(ctl)
	s := Server{store: b, fileStore: f}

	ref := "/AttestationsPdf/5ea0a000000000000000a000/attestation.pdf"
	b.EXPECT().GetRequest(int64(1)).Return(&schema.Request{
		ID:   1,
		Code: "C1",
	}, nil).Times(1)
	f.EXPECT().Upload(gomock.Any(), "attestation.pdf", gomock.Any()).
		Return(ref, nil).Times(1)
	b.EXPECT().SetRequestDocument(int64(1), ref).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requesterMiddleware("bob@cnet.co"))
	router.POST("/:requestID/attachment", s.attachDocument)

	body, contentType := multipartFile(t, "attestation.pdf")
	req := httptest.NewRequest("POST", "/1/attachment", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, ref, resp["pdfLink"], "wrong file reference")
}

// A disallowed extension is rejected before any upload call is made:
// the file store mock carries no expectations, so an upload would fail
// the test.
func TestAttachDocumentDisallowedExtension(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := mocks.NewMockBackOfficeCore(ctl)
	f := mocks.NewMockFileStore(ctl)
	s := Server{store: b, fileStore: f}

	b.EXPECT().GetRequest(int64(1)).Return(&schema.Request{
		ID:   1,
		Code: "C1",
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requesterMiddleware("bob@cnet.co"))
	router.POST("/:requestID/attachment", s.attachDocument)

	body, contentType := multipartFile(t, "notes.txt")
	req := httptest.NewRequest("POST", "/1/attachment", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1204), resp.Code, "wrong error code")
}
