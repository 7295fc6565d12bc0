package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/workmatch/internal/matching"
	"github.com/yoockh/workmatch/internal/services"
)

type AdminHandler struct {
	weights services.WeightService
	catalog services.CatalogService
	metrics services.MetricsService
	inv     services.Invalidator
}

func NewAdminHandler(weights services.WeightService, catalog services.CatalogService, metrics services.MetricsService, inv services.Invalidator) *AdminHandler {
	return &AdminHandler{weights: weights, catalog: catalog, metrics: metrics, inv: inv}
}

func (h *AdminHandler) GetWeights(c *gin.Context) {
	v, err := h.weights.Get(c.Request.Context(), optionalQuery(c, "category_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type updateWeightsRequest struct {
	CategoryID *string `json:"category_id,omitempty"`
	matching.Weights
}

func (h *AdminHandler) UpdateWeights(c *gin.Context) {
	var req updateWeightsRequest
	if !bindJSON(c, "AdminHandler.UpdateWeights", &req) {
		return
	}

	v, err := h.weights.Update(c.Request.Context(), req.CategoryID, req.Weights)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) Metrics(c *gin.Context) {
	m, err := h.metrics.Matching(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type putSynonymsRequest struct {
	Skill    string   `json:"skill" binding:"required"`
	Synonyms []string `json:"synonyms"`
}

func (h *AdminHandler) PutSynonyms(c *gin.Context) {
	var req putSynonymsRequest
	if !bindJSON(c, "AdminHandler.PutSynonyms", &req) {
		return
	}

	row, err := h.catalog.PutSynonyms(c.Request.Context(), req.Skill, req.Synonyms)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

type putLocationRequest struct {
	Name   string  `json:"name" binding:"required"`
	Parent *string `json:"parent,omitempty"`
}

func (h *AdminHandler) PutLocation(c *gin.Context) {
	var req putLocationRequest
	if !bindJSON(c, "AdminHandler.PutLocation", &req) {
		return
	}

	loc, err := h.catalog.PutLocation(c.Request.Context(), req.Name, req.Parent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *AdminHandler) FlushMatches(c *gin.Context) {
	n, err := h.inv.FlushAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
