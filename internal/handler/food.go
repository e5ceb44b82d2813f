package handler

import (
	"net/http"
	"strconv"

	"macrolog/internal/model"
	"macrolog/internal/service"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	tracker *service.Tracker
}

func NewFoodHandler(tracker *service.Tracker) *FoodHandler {
	return &FoodHandler{tracker: tracker}
}

// GET /api/food-items
func (h *FoodHandler) List(c *gin.Context) {
	items, err := h.tracker.ListFoodItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []model.FoodItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/food-items/search?q=
func (h *FoodHandler) Search(c *gin.Context) {
	items, err := h.tracker.SearchFoodItems(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/food-items/:id
func (h *FoodHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	item, err := h.tracker.GetFoodItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /api/food-items
func (h *FoodHandler) Create(c *gin.Context) {
	var req model.CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.tracker.CreateFoodItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
