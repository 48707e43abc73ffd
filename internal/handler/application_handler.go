package handler

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/model"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/service"
	"github.com/fiamanillah/TravelLaneConnectBackend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService service.ApplicationService
	attachmentService  service.AttachmentService
}

func NewApplicationHandler(applicationService service.ApplicationService, attachmentService service.AttachmentService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		attachmentService:  attachmentService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.POST("/submit-form", h.SubmitForm)
		api.GET("/applications", h.ListApplications)
		api.GET("/applications/:id", h.GetApplication)
		api.GET("/application/:passportNumber", h.GetApplicationByPassportNumber)
		api.PUT("/applications/:id", h.UpdateApplication)
		api.DELETE("/applications/:id", h.DeleteApplication)
		api.POST("/upload-form-file/:applicationId", h.UploadFormFile)
		api.DELETE("/upload-form-file/:applicationId/delete-file/:fileLink", h.DeleteFormFile)
	}
}

// SubmitForm accepts the multipart application form with up to four document files
// @Summary      Submit application form
// @Description  Creates an application from multipart form data with optional passportPhoto, nidScan, passportScan and signature files
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  response.MessageBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/submit-form [post]
func (h *ApplicationHandler) SubmitForm(c *gin.Context) {
	var req service.CreateApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid form data: "+err.Error()))
		return
	}

	files := make(map[string]*multipart.FileHeader, len(model.DocumentSlots))
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, slot := range model.DocumentSlots {
			if headers := form.File[slot]; len(headers) > 0 {
				files[slot] = headers[0]
			}
		}
	}

	if _, err := h.applicationService.Submit(c.Request.Context(), req, files); err != nil {
		log.Printf("Error during form submission: %v", err)
		c.JSON(http.StatusInternalServerError, response.Error("An error occurred while processing the form."))
		return
	}

	c.JSON(http.StatusOK, response.Message("Form submitted successfully!"))
}

// ListApplications returns every application, newest first
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Success      200  {array}   model.Application
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applicationService.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching applications: %v", err)
		c.JSON(http.StatusInternalServerError, response.Error("An error occurred while fetching applications."))
		return
	}
	c.JSON(http.StatusOK, applications)
}

// GetApplication fetches one application by its identifier
// @Summary      Get application by ID
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  model.Application
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	application, err := h.applicationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondApplicationError(c, err, "An error occurred while fetching the application.")
		return
	}
	c.JSON(http.StatusOK, application)
}

// GetApplicationByPassportNumber fetches one application by passport number
// @Summary      Get application by passport number
// @Tags         applications
// @Produce      json
// @Param        passportNumber  path      string  true  "Passport number"
// @Success      200             {object}  model.Application
// @Failure      404             {object}  response.ErrorBody
// @Router       /api/application/{passportNumber} [get]
func (h *ApplicationHandler) GetApplicationByPassportNumber(c *gin.Context) {
	application, err := h.applicationService.GetByPassportNumber(c.Request.Context(), c.Param("passportNumber"))
	if err != nil {
		h.respondApplicationError(c, err, "An error occurred while fetching the application.")
		return
	}
	c.JSON(http.StatusOK, application)
}

// UpdateApplication applies a partial update to an application
// @Summary      Update application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Application ID"
// @Param        payload  body      service.UpdateApplicationRequest  true  "Fields to update"
// @Success      200      {object}  model.Application
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req service.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	application, err := h.applicationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondApplicationError(c, err, "An error occurred while updating the application.")
		return
	}
	c.JSON(http.StatusOK, application)
}

// DeleteApplication deletes one application by its identifier
// @Summary      Delete application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.MessageBody
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.applicationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondApplicationError(c, err, "An error occurred while deleting the application.")
		return
	}
	c.JSON(http.StatusOK, response.Message("Application deleted successfully."))
}

// UploadFormFile uploads one supplementary image and appends its URL
// @Summary      Append supplementary image
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Param        applicationId         path      string  true  "Application ID"
// @Param        applicationFormImage  formData  file    true  "Image file"
// @Success      200                   {object}  response.FileBody
// @Failure      400                   {object}  response.ErrorBody
// @Failure      404                   {object}  response.ErrorBody
// @Router       /api/upload-form-file/{applicationId} [post]
func (h *ApplicationHandler) UploadFormFile(c *gin.Context) {
	file, err := c.FormFile("applicationFormImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("No file uploaded."))
		return
	}

	fileURL, err := h.attachmentService.AppendImage(c.Request.Context(), c.Param("applicationId"), file)
	if err != nil {
		h.respondApplicationError(c, err, "An error occurred while uploading the file.")
		return
	}

	c.JSON(http.StatusOK, response.File("File uploaded and URL appended successfully!", fileURL))
}

// DeleteFormFile removes one supplementary image URL from an application
// @Summary      Remove supplementary image
// @Tags         attachments
// @Produce      json
// @Param        applicationId  path      string  true  "Application ID"
// @Param        fileLink       path      string  true  "URL-encoded file link"
// @Success      200            {object}  response.FileBody
// @Failure      404            {object}  response.ErrorBody
// @Router       /api/upload-form-file/{applicationId}/delete-file/{fileLink} [delete]
func (h *ApplicationHandler) DeleteFormFile(c *gin.Context) {
	fileLink := c.Param("fileLink")
	if decoded, err := url.QueryUnescape(fileLink); err == nil {
		fileLink = decoded
	}

	if err := h.attachmentService.RemoveImage(c.Request.Context(), c.Param("applicationId"), fileLink); err != nil {
		h.respondApplicationError(c, err, "An error occurred while deleting the file.")
		return
	}

	c.JSON(http.StatusOK, response.File("File URL removed successfully!", fileLink))
}

// respondApplicationError maps service sentinels onto the API's status codes
// and terse bodies; anything unrecognized is logged and reported generically.
func (h *ApplicationHandler) respondApplicationError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, response.Error("Invalid application ID."))
	case errors.Is(err, service.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, response.Error("Application not found."))
	case errors.Is(err, service.ErrNoUpdateFields):
		c.JSON(http.StatusBadRequest, response.Error("No fields provided to update."))
	case errors.Is(err, service.ErrNoFileUploaded):
		c.JSON(http.StatusBadRequest, response.Error("No file uploaded."))
	case errors.Is(err, service.ErrFileNotInApplication):
		c.JSON(http.StatusNotFound, response.Error("File not found in the application."))
	default:
		log.Printf("application handler error: %v", err)
		c.JSON(http.StatusInternalServerError, response.Error(generic))
	}
}
