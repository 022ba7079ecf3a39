package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthscan/backend/internal/service"
	"github.com/pageza/healthscan/backend/internal/types"
)

// MaxImageBytes caps an uploaded product photo.
const MaxImageBytes = 10 << 20

// maxBodyBytes leaves room for base64 and multipart overhead.
const maxBodyBytes = 2 * MaxImageBytes

type ScanHandler struct {
	scanService service.IScanService
}

func NewScanHandler(scanService service.IScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// RegisterRoutes expects router to be behind the auth middleware. limit, if
// given, guards only scan creation.
func (h *ScanHandler) RegisterRoutes(router *gin.RouterGroup, limit ...gin.HandlerFunc) {
	scans := router.Group("/scans")
	{
		create := append(append([]gin.HandlerFunc{}, limit...), h.CreateScan)
		scans.POST("", create...)
		scans.GET("", h.ListScans)
		scans.GET("/:id", h.GetScan)
		scans.DELETE("/:id", h.DeleteScan)
	}
}

// CreateScan accepts either a multipart "image" file or a JSON body with a
// base64 data URI in image_data.
func (h *ScanHandler) CreateScan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	image, err := readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.scanService.Scan(c.Request.Context(), userID, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func readImage(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("image")
		if err != nil {
			return nil, fmt.Errorf("image file is required: %w", err)
		}
		if header.Size > MaxImageBytes {
			return nil, fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
		}
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	var req types.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return service.DecodeImageDataURI(req.ImageData)
}

func (h *ScanHandler) ListScans(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	scans, err := h.scanService.ListScans(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": scans})
}

func (h *ScanHandler) GetScan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	scan, err := h.scanService.GetScan(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scan)
}

func (h *ScanHandler) DeleteScan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.scanService.DeleteScan(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
