package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UploadField is the multipart field carrying the banknote image
const UploadField = "file"

// PredictionHandler handles classification and history HTTP requests
type PredictionHandler struct {
	predictionUseCase usecase.PredictionUseCase
	maxUploadBytes    int64
	logger            coreport.Logger
}

// NewPredictionHandler creates a new prediction handler instance
func NewPredictionHandler(
	predictionUseCase usecase.PredictionUseCase,
	maxUploadBytes int64,
	logger coreport.Logger,
) *PredictionHandler {
	return &PredictionHandler{
		predictionUseCase: predictionUseCase,
		maxUploadBytes:    maxUploadBytes,
		logger:            logger,
	}
}

// Predict handles the POST /predict/ endpoint
func (h *PredictionHandler) Predict(c *gin.Context) {
	upload, err := h.readUpload(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	result, err := h.predictionUseCase.Classify(c.Request.Context(), middleware.CurrentUser(c), upload)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	resp := dto.NewPredictionResponse(result.Prediction)
	resp.Status = dto.StatusSuccess
	resp.QualityFlags = result.QualityFlags
	c.JSON(http.StatusOK, resp)
}

// readUpload extracts the image from the multipart form, enforcing the size limit
func (h *PredictionHandler) readUpload(c *gin.Context) (usecase.ImageUpload, error) {
	fileHeader, err := c.FormFile(UploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return usecase.ImageUpload{}, fmt.Errorf("%w: file exceeds %d bytes", domainerr.ErrInvalidUpload, h.maxUploadBytes)
		}
		return usecase.ImageUpload{}, fmt.Errorf("%w: multipart field %q is required", domainerr.ErrInvalidUpload, UploadField)
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return usecase.ImageUpload{}, fmt.Errorf("%w: file exceeds %d bytes", domainerr.ErrInvalidUpload, h.maxUploadBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return usecase.ImageUpload{}, fmt.Errorf("%w: %v", domainerr.ErrInvalidUpload, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return usecase.ImageUpload{}, fmt.Errorf("%w: %v", domainerr.ErrInvalidUpload, err)
	}

	return usecase.ImageUpload{FileName: fileHeader.Filename, Data: data}, nil
}

// History handles the GET /predict/history endpoint
func (h *PredictionHandler) History(c *gin.Context) {
	predictions, err := h.predictionUseCase.History(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPredictionListResponse(predictions))
}

// Get handles the GET /predict/:id endpoint
func (h *PredictionHandler) Get(c *gin.Context) {
	predictionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		middleware.AbortWithError(c, fmt.Errorf("%w: invalid prediction ID format", domainerr.ErrInvalidRequest))
		return
	}

	prediction, err := h.predictionUseCase.Get(c.Request.Context(), middleware.CurrentUser(c), predictionID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPredictionResponse(prediction))
}

// Clear handles the DELETE /predict/clear endpoint
func (h *PredictionHandler) Clear(c *gin.Context) {
	deleted, err := h.predictionUseCase.Clear(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClearHistoryResponse{
		Message: "Prediction history cleared successfully",
		Deleted: deleted,
	})
}
