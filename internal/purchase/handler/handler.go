package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/purchase"
	"github.com/aqmarzaini/diecast-admin-service/internal/purchase/dto"
)

type PurchaseHandler struct {
	uc     purchase.UseCase
	logger logger.ZapLogger
}

func NewPurchaseHandler(uc purchase.UseCase, log logger.ZapLogger) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/purchases", h.CreatePurchase)
	rg.GET("/purchases", h.ListPurchases)
	rg.GET("/purchases/:id", h.GetPurchase)
	rg.PUT("/purchases/:id", h.UpdatePurchase)
}

func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var input dto.SavePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.uc.CreatePurchase(c.Request.Context(), &input)
	if err != nil {
		h.respondSaveError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	var input dto.UpdatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	result, err := h.uc.UpdatePurchase(c.Request.Context(), &input)
	if err != nil {
		h.respondSaveError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id := c.Param("id")
	p, err := h.uc.GetPurchase(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to fetch purchase", zap.String("purchase_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch purchase"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "purchase not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchase": p})
}

func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.uc.ListPurchases(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list purchases", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list purchases"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
}

func (h *PurchaseHandler) respondSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, purchase.ErrInvalidQuantity),
		errors.Is(err, purchase.ErrInvalidPrice),
		errors.Is(err, purchase.ErrCollectionNameRequired),
		errors.Is(err, purchase.ErrBrandRequired),
		errors.Is(err, purchase.ErrInvalidPaymentStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, purchase.ErrPurchaseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("failed to save purchase", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save purchase"})
	}
}
