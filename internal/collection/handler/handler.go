package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/collection"
	"github.com/aqmarzaini/diecast-admin-service/internal/collection/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/collection/usecase"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
)

type CollectionHandler struct {
	uc     collection.UseCase
	logger logger.ZapLogger
}

func NewCollectionHandler(uc collection.UseCase, log logger.ZapLogger) *CollectionHandler {
	return &CollectionHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CollectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/collections", h.ListCollections)
	rg.GET("/collections/search", h.SearchCollections)
	rg.PUT("/collections/:id", h.UpdateCollection)
}

func (h *CollectionHandler) ListCollections(c *gin.Context) {
	collections, err := h.uc.ListCollections(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list collections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list collections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

func (h *CollectionHandler) SearchCollections(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	collections, err := h.uc.SearchCollections(c.Request.Context(), q, limit)
	if err != nil {
		h.logger.Error("failed to search collections", zap.String("query", q), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search collections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	var input dto.UpdateCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	col, err := h.uc.UpdateCollection(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, usecase.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
			return
		}
		h.logger.Error("failed to update collection", zap.String("collection_id", input.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update collection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": col})
}
