package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-recipe-api/internal/core/auth"
	"go-recipe-api/internal/domain"
	mdw "go-recipe-api/internal/transport/http/middleware"
	resp "go-recipe-api/internal/transport/http/response"
	"go-recipe-api/pkg/utils"
)

var mobileRe = regexp.MustCompile(`^\d{10}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
			return mobileRe.MatchString(fl.Field().String())
		})
	}
}

type UserHandler struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserHandler(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, jwter: jwter, log: log}
}

// MountAPI wires the user routes under the api group.
func (h *UserHandler) MountAPI(api *gin.RouterGroup) {
	g := api.Group("/users")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.POST("", h.Login)
	g.GET("/me", mdw.AuthJWT(h.jwter, ""), h.Me)
}

type addUserReq struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required,mobile"`
	Email        string `json:"email" binding:"required,email"`
	Role         string `json:"role" binding:"omitempty,oneof=user admin"`
	Password     string `json:"password" binding:"required,min=6,max=255"`
}

func (h *UserHandler) Add(c *gin.Context) {
	var in addUserReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	u := domain.User{
		ID:           utils.NewID(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		MobileNumber: in.MobileNumber,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Role:         role,
		PasswordHash: hash,
	}
	if err := h.users.Create(&u); err != nil {
		h.log.Warn("user create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp.Msg(resp.UserCreated))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	domain.User
	Token string `json:"token"`
}

// Login answers 200 with a generic message on a credential miss; the
// shipped frontend branches on the body, not the status.
func (h *UserHandler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	u, err := h.users.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		c.JSON(http.StatusOK, resp.Msg(resp.InvalidCredentials))
		return
	}
	token, err := h.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	c.JSON(http.StatusOK, loginResp{User: *u, Token: token})
}

func (h *UserHandler) Me(c *gin.Context) {
	claims, ok := mdw.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, resp.Msg(resp.TokenNotValid))
		return
	}
	u, err := h.users.FindByID(claims.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp.Msg(err.Error()))
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, resp.Msg("User not found"))
		return
	}
	c.JSON(http.StatusOK, u)
}
