package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/shop"
	"github.com/aqmarzaini/diecast-admin-service/internal/shop/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/shop/usecase"
)

type ShopHandler struct {
	uc     shop.UseCase
	logger logger.ZapLogger
}

func NewShopHandler(uc shop.UseCase, log logger.ZapLogger) *ShopHandler {
	return &ShopHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ShopHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shops", h.ListShops)
	rg.PUT("/shops/:id", h.UpdateShop)
	rg.DELETE("/shops/:id", h.DeleteShop)
}

func (h *ShopHandler) ListShops(c *gin.Context) {
	shops, err := h.uc.ListShops(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list shops", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shops"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

func (h *ShopHandler) UpdateShop(c *gin.Context) {
	var input dto.UpdateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	s, err := h.uc.UpdateShop(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, usecase.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
			return
		}
		h.logger.Error("failed to update shop", zap.String("shop_id", input.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update shop"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shop": s})
}

func (h *ShopHandler) DeleteShop(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.DeleteShop(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete shop", zap.String("shop_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete shop"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
