package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/brand"
	"github.com/aqmarzaini/diecast-admin-service/internal/brand/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/brand/usecase"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
)

type BrandHandler struct {
	uc     brand.UseCase
	logger logger.ZapLogger
}

func NewBrandHandler(uc brand.UseCase, log logger.ZapLogger) *BrandHandler {
	return &BrandHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *BrandHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/brands", h.ListBrands)
	rg.POST("/brands", h.CreateBrand)
	rg.PUT("/brands/:id", h.UpdateBrand)
}

func (h *BrandHandler) ListBrands(c *gin.Context) {
	onlyActive := c.Query("active") == "1"
	brands, err := h.uc.ListBrands(c.Request.Context(), onlyActive)
	if err != nil {
		h.logger.Error("failed to list brands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list brands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var input dto.CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.uc.CreateBrand(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create brand", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create brand"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"brand": b})
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand id"})
		return
	}

	var input dto.UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = id

	b, err := h.uc.UpdateBrand(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, usecase.ErrBrandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
			return
		}
		h.logger.Error("failed to update brand", zap.Int("brand_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update brand"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand": b})
}
