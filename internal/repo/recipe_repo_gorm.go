package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-recipe-api/internal/domain"
)

type RecipeRepo struct{ db *gorm.DB }

func NewRecipeRepo(db *gorm.DB) *RecipeRepo { return &RecipeRepo{db: db} }

var _ domain.RecipeRepository = (*RecipeRepo)(nil)

func (r *RecipeRepo) Create(rec *domain.Recipe) error { return r.db.Create(rec).Error }

func (r *RecipeRepo) List(order int) ([]domain.Recipe, error) {
	dir := "title asc"
	if order == domain.SortTitleDesc {
		dir = "title desc"
	}
	var recipes []domain.Recipe
	if err := r.db.Order(dir).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepo) FindByID(id string) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := r.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecipeRepo) FindByOwnerAndCategory(userID, category string) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	err := r.db.Where("user_id = ? AND category = ?", userID, category).Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepo) Replace(id string, rec *domain.Recipe) (bool, error) {
	var cur domain.Recipe
	err := r.db.First(&cur, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	rec.ID = cur.ID
	rec.CreatedAt = cur.CreatedAt
	if err := r.db.Save(rec).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *RecipeRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Recipe{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
