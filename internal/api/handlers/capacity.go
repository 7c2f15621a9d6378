package handlers

import (
	"net/http"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/pv"

	"github.com/gin-gonic/gin"
)

// CapacityHandler estimates installable capacity from buildable area.
type CapacityHandler struct{}

func NewCapacityHandler() *CapacityHandler { return &CapacityHandler{} }

// EstimateCapacity handles POST /api/v1/capacity
func (h *CapacityHandler) EstimateCapacity(c *gin.Context) {
	var req models.CapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	est, err := pv.EstimateCapacity(req.AreaSqm, pv.InstallType(req.InstallType))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.CapacityResponse{
		CapacityKW:  est.CapacityKW,
		DensityWM2:  est.DensityWM2,
		AreaSqm:     est.AreaSqm,
		InstallType: string(est.InstallType),
	})
}
