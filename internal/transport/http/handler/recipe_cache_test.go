package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecipeByID_ServedFromCache(t *testing.T) {
	recipes := newFakeRecipeRepo()
	seedRecipe(recipes, "r1", "Apple Pie", "Dessert", "u-1")
	fc := newFakeCache()
	r := newCachedRecipeEngine(recipes, fc)

	w := doJSON(r, http.MethodGet, "/api/recipes/r1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fc.entries, 1, "first read warms the cache")

	// Change the row underneath; the cached entry keeps serving.
	recipes.recipes["r1"].Title = "Changed Behind The Cache"

	w = doJSON(r, http.MethodGet, "/api/recipes/r1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Apple Pie", out["title"])
}

func TestUpdateRecipe_InvalidatesCache(t *testing.T) {
	recipes := newFakeRecipeRepo()
	seedRecipe(recipes, "r1", "Apple Pie", "Dessert", "u-1")
	fc := newFakeCache()
	r := newCachedRecipeEngine(recipes, fc)

	require.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/api/recipes/r1", "").Code)
	require.Len(t, fc.entries, 1)

	w := doJSON(r, http.MethodPut, "/api/recipes/r1", recipeBody(map[string]any{"title": "Better Apple Pie"}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, fc.entries, "update drops the cached entry")

	w = doJSON(r, http.MethodGet, "/api/recipes/r1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Better Apple Pie", out["title"])
}

func TestDeleteRecipe_InvalidatesCache(t *testing.T) {
	recipes := newFakeRecipeRepo()
	seedRecipe(recipes, "r1", "Apple Pie", "Dessert", "u-1")
	fc := newFakeCache()
	r := newCachedRecipeEngine(recipes, fc)

	require.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/api/recipes/r1", "").Code)
	require.Len(t, fc.entries, 1)

	w := doJSON(r, http.MethodDelete, "/api/recipes/r1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, fc.entries, "delete drops the cached entry")

	w = doJSON(r, http.MethodGet, "/api/recipes/r1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Recipe not found"}`, w.Body.String())
}

func TestUpdateRecipe_InvalidateFailureDoesNotFailWrite(t *testing.T) {
	recipes := newFakeRecipeRepo()
	seedRecipe(recipes, "r1", "Apple Pie", "Dessert", "u-1")
	fc := newFakeCache()
	fc.invalidateErr = errors.New("redis gone")
	r := newCachedRecipeEngine(recipes, fc)

	w := doJSON(r, http.MethodPut, "/api/recipes/r1", recipeBody(map[string]any{"title": "Better Apple Pie"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Better Apple Pie", recipes.recipes["r1"].Title, "the write itself sticks")
}
