package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/model"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Stubs ---

type stubApplicationService struct {
	submit              func(req service.CreateApplicationRequest, files map[string]*multipart.FileHeader) (*model.Application, error)
	list                func() ([]model.Application, error)
	getByID             func(id string) (*model.Application, error)
	getByPassportNumber func(passportNumber string) (*model.Application, error)
	update              func(id string, req service.UpdateApplicationRequest) (*model.Application, error)
	remove              func(id string) error
}

func (s *stubApplicationService) Submit(_ context.Context, req service.CreateApplicationRequest, files map[string]*multipart.FileHeader) (*model.Application, error) {
	return s.submit(req, files)
}
func (s *stubApplicationService) List(context.Context) ([]model.Application, error) {
	return s.list()
}
func (s *stubApplicationService) GetByID(_ context.Context, id string) (*model.Application, error) {
	return s.getByID(id)
}
func (s *stubApplicationService) GetByPassportNumber(_ context.Context, passportNumber string) (*model.Application, error) {
	return s.getByPassportNumber(passportNumber)
}
func (s *stubApplicationService) Update(_ context.Context, id string, req service.UpdateApplicationRequest) (*model.Application, error) {
	return s.update(id, req)
}
func (s *stubApplicationService) Delete(_ context.Context, id string) error {
	return s.remove(id)
}

type stubAttachmentService struct {
	appendImage func(applicationID string, file *multipart.FileHeader) (string, error)
	removeImage func(applicationID, fileURL string) error
}

func (s *stubAttachmentService) AppendImage(_ context.Context, applicationID string, file *multipart.FileHeader) (string, error) {
	return s.appendImage(applicationID, file)
}
func (s *stubAttachmentService) RemoveImage(_ context.Context, applicationID, fileURL string) error {
	return s.removeImage(applicationID, fileURL)
}

func newRouter(app *stubApplicationService, attach *stubAttachmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewApplicationHandler(app, attach).RegisterRoutes(router.Group(""))
	return router
}

// --- Tests ---

func TestDeleteApplicationNotFound(t *testing.T) {
	router := newRouter(&stubApplicationService{
		remove: func(string) error { return service.ErrApplicationNotFound },
	}, &stubAttachmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/applications/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Application not found."}`, w.Body.String())
}

func TestGetApplicationInvalidID(t *testing.T) {
	router := newRouter(&stubApplicationService{
		getByID: func(string) (*model.Application, error) { return nil, service.ErrInvalidID },
	}, &stubAttachmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications/123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid application ID."}`, w.Body.String())
}

func TestUpdateApplicationStatus(t *testing.T) {
	id := uuid.New()
	var gotReq service.UpdateApplicationRequest

	router := newRouter(&stubApplicationService{
		update: func(gotID string, req service.UpdateApplicationRequest) (*model.Application, error) {
			assert.Equal(t, id.String(), gotID)
			gotReq = req
			return &model.Application{ID: id, Fullname: "Karim", Status: "Approved"}, nil
		},
	}, &stubAttachmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/applications/"+id.String(),
		strings.NewReader(`{"status":"Approved"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotReq.Status)
	assert.Equal(t, "Approved", *gotReq.Status)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Approved", body["status"])
	assert.Equal(t, "Karim", body["fullname"])
}

func TestSubmitFormPassesFieldsAndFiles(t *testing.T) {
	var gotReq service.CreateApplicationRequest
	var gotFiles map[string]*multipart.FileHeader

	router := newRouter(&stubApplicationService{
		submit: func(req service.CreateApplicationRequest, files map[string]*multipart.FileHeader) (*model.Application, error) {
			gotReq = req
			gotFiles = files
			return &model.Application{ID: uuid.New(), Status: model.StatusPending}, nil
		},
	}, &stubAttachmentService{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("fullname", "Rahim Uddin"))
	require.NoError(t, w.WriteField("passportNumber", "BD1234567"))
	part, err := w.CreateFormFile("passportPhoto", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Form submitted successfully!"}`, rec.Body.String())

	assert.Equal(t, "Rahim Uddin", gotReq.Fullname)
	assert.Equal(t, "BD1234567", gotReq.PassportNumber)
	require.Contains(t, gotFiles, "passportPhoto")
	assert.Equal(t, "photo.jpg", gotFiles["passportPhoto"].Filename)
	assert.NotContains(t, gotFiles, "signature")
}

func TestUploadFormFileWithoutFile(t *testing.T) {
	router := newRouter(&stubApplicationService{}, &stubAttachmentService{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-form-file/"+uuid.NewString(), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No file uploaded."}`, rec.Body.String())
}

func TestDeleteFormFileDecodesLink(t *testing.T) {
	fileURL := "https://files.travellaneconnect.com/uploads/applicationFormImage_1_extra.jpg"
	var gotLink string

	router := newRouter(&stubApplicationService{}, &stubAttachmentService{
		removeImage: func(_ string, link string) error {
			gotLink = link
			return nil
		},
	})

	// Clients double-encode the link so it survives path routing.
	escaped := url.QueryEscape(url.QueryEscape(fileURL))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete,
		"/api/upload-form-file/"+uuid.NewString()+"/delete-file/"+escaped, nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fileURL, gotLink)
}
