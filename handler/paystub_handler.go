package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paystublab/analyzer/dto"
	"github.com/paystublab/analyzer/service"
)

type PaystubHandler struct {
	paystubService *service.PaystubService
}

func NewPaystubHandler(paystubService *service.PaystubService) *PaystubHandler {
	return &PaystubHandler{
		paystubService: paystubService,
	}
}

// AnalyzePaystub handles the POST /api/v1/paystub/analyze endpoint
func (h *PaystubHandler) AnalyzePaystub(c *gin.Context) {
	log.Println("Received paystub analyze request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrMissingFile.Error(), err)
		return
	}

	request := &dto.AnalyzeRequest{File: fileHeader}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}

	log.Printf("Analyzing %s (%d bytes)", fileHeader.Filename, len(data))

	response := h.paystubService.Analyze(data)

	log.Println("Paystub analysis completed")
	c.JSON(http.StatusOK, response)
}

// ComputeSummary handles the POST /api/v1/paystub/summary endpoint
func (h *PaystubHandler) ComputeSummary(c *gin.Context) {
	var request dto.SummaryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	periods, err := request.PayFrequency.PeriodsPerYear()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	summary := service.BuildSummary(request.Fields)
	withholding := service.CheckWithholding(request.Fields, periods)

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Summary:     summary,
		Withholding: withholding,
		Chart:       service.BuildChart(summary),
	})
}

// sendError sends a structured error response
func (h *PaystubHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "REQUEST_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
