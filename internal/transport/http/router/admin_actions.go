package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-recipe-api/internal/domain"
	"go-recipe-api/internal/repo"
	httpez "go-recipe-api/internal/transport/http/ez"
)

// MountAdminActions wires the user-administration surface with the
// one-line action helper.
func MountAdminActions(admin *gin.RouterGroup, db *gorm.DB) {
	ezAdmin := httpez.New(admin)

	type listQ struct {
		Offset      int    `form:"offset,default=0"`
		Limit       int    `form:"limit,default=20"`
		Q           string `form:"q"`            // email / name substring
		WithDeleted bool   `form:"with_deleted"` // include banned users
	}
	type row struct {
		ID           string    `json:"id"`
		Email        string    `json:"email"`
		FirstName    string    `json:"firstName"`
		LastName     string    `json:"lastName"`
		MobileNumber string    `json:"mobileNumber"`
		Role         string    `json:"role"`
		CreatedAt    time.Time `json:"createdAt"`
	}
	type listOut struct {
		Total int64 `json:"total"`
		Items []row `json:"items"`
	}

	httpez.RegisterAction[listQ, listOut](ezAdmin, db, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) (listOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			users, total, err := repo.NewUserRepo(tx).ListPage(in.Offset, in.Limit, in.Q, in.WithDeleted)
			if err != nil {
				return listOut{}, httpez.Internal("list users failed", err)
			}
			out := listOut{Total: total, Items: make([]row, 0, len(users))}
			for _, u := range users {
				out.Items = append(out.Items, row{
					ID:           u.ID,
					Email:        u.Email,
					FirstName:    u.FirstName,
					LastName:     u.LastName,
					MobileNumber: u.MobileNumber,
					Role:         u.Role,
					CreatedAt:    u.CreatedAt,
				})
			}
			return out, nil
		},
	})

	// Ban is a soft delete; banned users drop out of listings and login.
	httpez.RegisterAction[struct{}, gin.H](ezAdmin, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if id == "" {
				return nil, httpez.BadRequest("missing id")
			}
			ok, err := repo.NewUserRepo(tx).SoftDelete(id)
			if err != nil {
				return nil, httpez.Internal("ban user failed", err)
			}
			if !ok {
				return nil, httpez.NotFound("user not found")
			}
			return gin.H{"id": id}, nil
		},
	})
}
