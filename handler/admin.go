package handler

import (
	"net/http"

	"Greenway/config"
	"Greenway/middleware"
	"Greenway/pkg/context"
	"Greenway/pkg/response"
	"Greenway/pkg/session"
	"Greenway/service"
	"Greenway/types"

	"github.com/gin-gonic/gin"
)

type Admin struct {
	Config       *config.Config
	Store        session.Store
	AuthService  service.IAuthService
	GoodsService service.IGoodsService
}

func (a *Admin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(a.Store, session.KindAdmin)
	admin := r.Group("/admin")

	admin.POST("/login", context.Wrap(a.Login))

	admin.GET("/goods/pending", authorize, context.Wrap(a.Pending))
	admin.POST("/goods/approve", authorize, context.Wrap(a.Approve))
	admin.POST("/goods/reject", authorize, context.Wrap(a.Reject))
}

func (a *Admin) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.AuthService.LoginAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (a *Admin) Pending(c *gin.Context) error {
	resp, err := a.GoodsService.ListPending(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (a *Admin) Approve(c *gin.Context) error {
	var req types.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.GoodsService.Approve(c.Request.Context(), req.RequestID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (a *Admin) Reject(c *gin.Context) error {
	var req types.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.GoodsService.Reject(c.Request.Context(), req.RequestID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
