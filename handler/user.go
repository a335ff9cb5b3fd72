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

type User struct {
	Config       *config.Config
	Store        session.Store
	AuthService  service.IAuthService
	PointService service.IPointService
	GoodsService service.IGoodsService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(u.Store, session.KindUser)

	r.POST("/register", context.Wrap(u.Register))
	r.POST("/login", context.Wrap(u.Login))
	r.POST("/logout", context.Wrap(u.Logout))
	r.GET("/goods", context.Wrap(u.ListGoods)) // 兑换页目录，无需登录

	r.GET("/me", authorize, context.Wrap(u.Me))
	r.GET("/points", authorize, context.Wrap(u.Points))
	r.POST("/trips", authorize, context.Wrap(u.SubmitTrip))
	r.POST("/redeem", authorize, context.Wrap(u.Redeem))
}

func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := u.AuthService.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := u.AuthService.LoginUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Logout 幂等：token 不存在也返回成功
func (u *User) Logout(c *gin.Context) error {
	if token := middleware.BearerToken(c); token != "" {
		if err := u.AuthService.Logout(c.Request.Context(), token); err != nil {
			return err
		}
	}
	response.Success(c, types.LogoutResponse{Success: true})
	return nil
}

func (u *User) Me(c *gin.Context) error {
	uid, err := context.GetPrincipalID(c)
	if err != nil {
		return err
	}

	resp, err := u.AuthService.Me(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (u *User) Points(c *gin.Context) error {
	uid, err := context.GetPrincipalID(c)
	if err != nil {
		return err
	}

	resp, err := u.PointService.History(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (u *User) SubmitTrip(c *gin.Context) error {
	uid, err := context.GetPrincipalID(c)
	if err != nil {
		return err
	}

	var req types.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := u.PointService.SubmitTrip(c.Request.Context(), uid, req.Mode, req.Distance)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (u *User) Redeem(c *gin.Context) error {
	uid, err := context.GetPrincipalID(c)
	if err != nil {
		return err
	}

	var req types.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := u.PointService.Redeem(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (u *User) ListGoods(c *gin.Context) error {
	resp, err := u.GoodsService.ListCatalog(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
