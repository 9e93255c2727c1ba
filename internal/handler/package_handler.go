package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/tryout-api/internal/handler/dto"
	apperrors "github.com/yourusername/tryout-api/internal/pkg/errors"
	"github.com/yourusername/tryout-api/internal/service"
)

// PackageHandler serves scoring runs and their outputs.
type PackageHandler struct {
	scoringService      *service.ScoringService
	reportService       *service.ReportService
	notificationService *service.NotificationService
	packageService      *service.PackageService
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(
	scoringService *service.ScoringService,
	reportService *service.ReportService,
	notificationService *service.NotificationService,
	packageService *service.PackageService,
) *PackageHandler {
	return &PackageHandler{
		scoringService:      scoringService,
		reportService:       reportService,
		notificationService: notificationService,
		packageService:      packageService,
	}
}

// ListPackages handles GET /api/packages
func (h *PackageHandler) ListPackages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	packages, total, err := h.packageService.ListPackages(page, pageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]dto.PackageResponse, 0, len(packages))
	for i := range packages {
		out = append(out, dto.NewPackageResponse(&packages[i]))
	}
	c.JSON(http.StatusOK, gin.H{"packages": out, "total": total})
}

// ScorePackage handles POST /api/packages/:id/score
func (h *PackageHandler) ScorePackage(c *gin.Context) {
	packageID, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	result, err := h.scoringService.ScorePackage(c.Request.Context(), packageID)
	if err != nil {
		log.Printf("[PackageHandler] Scoring failed for package #%d: %v", packageID, err)
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package_id":      result.PackageID,
		"subtests_scored": len(result.Subtests),
		"users_ranked":    len(result.Leaderboard),
	})
}

// GetLeaderboard handles GET /api/packages/:id/leaderboard
func (h *PackageHandler) GetLeaderboard(c *gin.Context) {
	packageID, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.scoringService.GetLeaderboard(packageID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": dto.NewLeaderboardResponse(entries)})
}

// ExportLeaderboard handles GET /api/packages/:id/export
func (h *PackageHandler) ExportLeaderboard(c *gin.Context) {
	packageID, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	f, filename, err := h.reportService.BuildLeaderboardReport(packageID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[PackageHandler] Failed to stream leaderboard export: %v", err)
	}
}

// GetSubtestResults handles GET /api/subtests/:id/results
func (h *PackageHandler) GetSubtestResults(c *gin.Context) {
	subtestID, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	results, err := h.scoringService.GetSubtestResults(subtestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": dto.NewSubtestResultsResponse(results)})
}

// ExportSubtestReport handles GET /api/subtests/:id/report
func (h *PackageHandler) ExportSubtestReport(c *gin.Context) {
	subtestID, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	f, filename, err := h.reportService.BuildSubtestReport(subtestID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[PackageHandler] Failed to stream subtest report: %v", err)
	}
}

// NotifyScores handles POST /api/packages/:id/notify
func (h *PackageHandler) NotifyScores(c *gin.Context) {
	packageID, ok := h.uintParam(c, "id")
	if !ok {
		return
	}

	sent, skipped, err := h.notificationService.NotifyPackageScores(c.Request.Context(), packageID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent, "skipped": skipped})
}

func (h *PackageHandler) uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s parameter", name)})
		return 0, false
	}
	return uint(value), true
}

func (h *PackageHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperrors.ErrEmptyPackage):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "package has no questions to score"})
	case errors.Is(err, apperrors.ErrUnknownUser):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "answers reference an unknown user"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
