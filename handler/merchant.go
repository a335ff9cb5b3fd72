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

type Merchant struct {
	Config       *config.Config
	Store        session.Store
	AuthService  service.IAuthService
	GoodsService service.IGoodsService
}

func (m *Merchant) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(m.Store, session.KindShop)
	merchant := r.Group("/merchant")

	merchant.POST("/register", context.Wrap(m.Register))
	merchant.POST("/login", context.Wrap(m.Login))

	merchant.POST("/submit", authorize, context.Wrap(m.Submit))
	merchant.POST("/offline", authorize, context.Wrap(m.Offline))
	merchant.GET("/goods", authorize, context.Wrap(m.ListGoods))
}

func (m *Merchant) Register(c *gin.Context) error {
	var req types.ShopRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := m.AuthService.RegisterShop(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (m *Merchant) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := m.AuthService.LoginShop(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Submit 上架申请，只建 pending 记录，目录不动
func (m *Merchant) Submit(c *gin.Context) error {
	sid, err := context.GetPrincipalID(c)
	if err != nil {
		return err
	}

	var req types.SubmitGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := m.GoodsService.SubmitAdd(c.Request.Context(), sid, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (m *Merchant) Offline(c *gin.Context) error {
	sid, err := context.GetPrincipalID(c)
	if err != nil {
		return err
	}

	var req types.OfflineGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := m.GoodsService.SubmitOffline(c.Request.Context(), sid, req.GID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (m *Merchant) ListGoods(c *gin.Context) error {
	sid, err := context.GetPrincipalID(c)
	if err != nil {
		return err
	}

	resp, err := m.GoodsService.ListShopGoods(c.Request.Context(), sid)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
