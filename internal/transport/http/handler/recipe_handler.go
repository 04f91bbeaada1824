package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-recipe-api/internal/core/cache"
	"go-recipe-api/internal/domain"
	resp "go-recipe-api/internal/transport/http/response"
	"go-recipe-api/pkg/utils"
)

type RecipeHandler struct {
	recipes  domain.RecipeRepository
	cache    cache.Store // optional; nil disables read-through
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewRecipeHandler(recipes domain.RecipeRepository, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, log: log}
}

// WithCache enables the recipe-by-id read-through cache.
func (h *RecipeHandler) WithCache(c cache.Store, ttl time.Duration) *RecipeHandler {
	h.cache = c
	h.cacheTTL = ttl
	return h
}

func (h *RecipeHandler) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/recipes")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.GET("/user/:userId", h.ByOwner)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// recipeReq carries every write-validated field; create and full update
// bind the same struct so the rules run identically for both.
type recipeReq struct {
	Title             string                  `json:"title" binding:"required"`
	Category          string                  `json:"category" binding:"required,oneof=Breakfast Lunch Dinner Snacks Dessert"`
	Difficulty        string                  `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	PrepTimeInMinutes int                     `json:"prepTimeInMinutes" binding:"required,min=1"`
	CookTimeInMinutes int                     `json:"cookTimeInMinutes" binding:"required,min=1"`
	Servings          int                     `json:"servings" binding:"required,min=1"`
	Cuisine           string                  `json:"cuisine"`
	Ingredients       []string                `json:"ingredients" binding:"required,min=1,dive,required"`
	Instructions      []string                `json:"instructions" binding:"required,min=1,dive,required"`
	Tags              []string                `json:"tags"`
	Notes             string                  `json:"notes"`
	NutritionalInfo   *domain.NutritionalInfo `json:"nutritionalInfo"`
	UserID            string                  `json:"userId" binding:"required"`
}

func (in *recipeReq) toDomain() domain.Recipe {
	return domain.Recipe{
		Title:             strings.TrimSpace(in.Title),
		Category:          in.Category,
		Difficulty:        in.Difficulty,
		PrepTimeInMinutes: in.PrepTimeInMinutes,
		CookTimeInMinutes: in.CookTimeInMinutes,
		Servings:          in.Servings,
		Cuisine:           in.Cuisine,
		Ingredients:       in.Ingredients,
		Instructions:      in.Instructions,
		Tags:              in.Tags,
		Notes:             in.Notes,
		NutritionalInfo:   in.NutritionalInfo,
		UserID:            in.UserID,
	}
}

func (h *RecipeHandler) Add(c *gin.Context) {
	var in recipeReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	rec := in.toDomain()
	rec.ID = utils.NewID()
	if err := h.recipes.Create(&rec); err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp.Msg(resp.RecipeAdded))
}

type listReq struct {
	SortOrder int `json:"sortOrder"`
}

// List accepts an optional body `{"sortOrder": 1|-1}`; anything else,
// including no body at all, means title ascending.
func (h *RecipeHandler) List(c *gin.Context) {
	var in listReq
	_ = c.ShouldBindJSON(&in)
	order := domain.SortTitleAsc
	if in.SortOrder == domain.SortTitleDesc {
		order = domain.SortTitleDesc
	}
	recipes, err := h.recipes.List(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.findOne(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, resp.Msg(resp.RecipeNotFound))
		return
	}
	c.JSON(http.StatusOK, rec)
}

type byOwnerReq struct {
	Category string `json:"category"`
}

func (h *RecipeHandler) ByOwner(c *gin.Context) {
	var in byOwnerReq
	_ = c.ShouldBindJSON(&in)
	recipes, err := h.recipes.FindByOwnerAndCategory(c.Param("userId"), in.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	var in recipeReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	id := c.Param("id")
	rec := in.toDomain()
	found, err := h.recipes.Replace(id, &rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, resp.Msg(resp.RecipeNotFound))
		return
	}
	h.invalidate(c, id)
	c.JSON(http.StatusOK, resp.Msg(resp.RecipeUpdated))
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	found, err := h.recipes.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, resp.Msg(resp.RecipeNotFound))
		return
	}
	h.invalidate(c, id)
	c.JSON(http.StatusOK, resp.Msg(resp.RecipeDeleted))
}

func recipeKey(id string) string { return "recipe:" + id }

func (h *RecipeHandler) findOne(c *gin.Context, id string) (*domain.Recipe, error) {
	if h.cache == nil {
		return h.recipes.FindByID(id)
	}
	return cache.GetOrLoadJSON[domain.Recipe](h.cache, c.Request.Context(), recipeKey(id), h.cacheTTL,
		func(context.Context) (*domain.Recipe, error) {
			return h.recipes.FindByID(id)
		})
}

func (h *RecipeHandler) invalidate(c *gin.Context, id string) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(c.Request.Context(), recipeKey(id)); err != nil {
		// Readers may see the stale entry until its TTL runs out.
		h.log.Warn("cache invalidate failed", zap.String("key", recipeKey(id)), zap.Error(err))
	}
}
