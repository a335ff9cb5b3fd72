package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"Greenway/config"
	"Greenway/dao"
	"Greenway/models"
	"Greenway/pkg/response"
	"Greenway/pkg/session"
	"Greenway/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxUsernameLen = 10
	maxPasswordLen = 20
	maxPhoneLen    = 20
)

type AuthService struct {
	Config   *config.Config
	DB       *gorm.DB
	Sessions session.Store
	UserDAO  *dao.Users
	ShopDAO  *dao.Shops
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	RegisterUser(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error)
	LoginUser(ctx context.Context, username, password string) (*types.TokenResponse, error)
	Me(ctx context.Context, uid string) (*types.MeResponse, error)

	RegisterShop(ctx context.Context, req *types.ShopRegisterRequest) (*types.ShopTokenResponse, error)
	LoginShop(ctx context.Context, username, password string) (*types.ShopTokenResponse, error)

	LoginAdmin(ctx context.Context, username, password string) (*types.AdminTokenResponse, error)
	Logout(ctx context.Context, token string) error
}

func validateCredentials(username, password, phone string) error {
	if username == "" || password == "" {
		return response.NewError(http.StatusBadRequest, "用户名和密码为必填")
	}
	// 长度按字符数算，中文用户名占一个字符而不是三个字节
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return response.NewError(http.StatusBadRequest, "用户名长度不能超过10")
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		return response.NewError(http.StatusBadRequest, "密码长度不能超过20")
	}
	if utf8.RuneCountInString(phone) > maxPhoneLen {
		return response.NewError(http.StatusBadRequest, "手机号长度不能超过20")
	}
	return nil
}

func (a *AuthService) RegisterUser(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	phone := strings.TrimSpace(req.Phone)

	if err := validateCredentials(username, password, phone); err != nil {
		return nil, err
	}
	if a.UserDAO.IsUIDExist(ctx, username) {
		return nil, response.NewError(http.StatusBadRequest, "用户名已存在")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.Users{
		UID:         username,
		Password:    string(hash),
		Phone:       phone,
		TotalPoints: 0,
	}
	if err := a.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	// 注册即登录
	token, err := a.Sessions.Create(ctx, session.KindUser, username)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{
		Token: token,
		User:  types.UserInfo{Username: username, Points: 0},
	}, nil
}

func (a *AuthService) LoginUser(ctx context.Context, username, password string) (*types.TokenResponse, error) {
	username = strings.TrimSpace(username)
	user, err := a.UserDAO.FindByUID(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(strings.TrimSpace(password))) != nil {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}

	token, err := a.Sessions.Create(ctx, session.KindUser, user.UID)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{
		Token: token,
		User:  types.UserInfo{Username: user.UID, Points: user.TotalPoints},
	}, nil
}

func (a *AuthService) Me(ctx context.Context, uid string) (*types.MeResponse, error) {
	user, err := a.UserDAO.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "用户不存在")
		}
		return nil, err
	}
	return &types.MeResponse{
		User: types.UserInfo{Username: user.UID, Points: user.TotalPoints},
	}, nil
}

func (a *AuthService) RegisterShop(ctx context.Context, req *types.ShopRegisterRequest) (*types.ShopTokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	phone := strings.TrimSpace(req.Phone)
	name := strings.TrimSpace(req.Name)

	if err := validateCredentials(username, password, phone); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, response.NewError(http.StatusBadRequest, "店铺名称为必填")
	}
	if a.ShopDAO.IsSIDExist(ctx, username) {
		return nil, response.NewError(http.StatusBadRequest, "商家账号已存在")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	shop := &models.Shop{
		SID:      username,
		SName:    name,
		Password: string(hash),
		Phone:    phone,
	}
	if err := a.ShopDAO.Create(ctx, shop); err != nil {
		return nil, err
	}

	token, err := a.Sessions.Create(ctx, session.KindShop, username)
	if err != nil {
		return nil, err
	}
	return &types.ShopTokenResponse{
		Token: token,
		Shop:  types.ShopInfo{Username: username, Name: name},
	}, nil
}

func (a *AuthService) LoginShop(ctx context.Context, username, password string) (*types.ShopTokenResponse, error) {
	username = strings.TrimSpace(username)
	shop, err := a.ShopDAO.FindBySID(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(shop.Password), []byte(strings.TrimSpace(password))) != nil {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}

	token, err := a.Sessions.Create(ctx, session.KindShop, shop.SID)
	if err != nil {
		return nil, err
	}
	return &types.ShopTokenResponse{
		Token: token,
		Shop:  types.ShopInfo{Username: shop.SID, Name: shop.SName},
	}, nil
}

// LoginAdmin 校验配置里的管理员凭证对，不查用户表
func (a *AuthService) LoginAdmin(ctx context.Context, username, password string) (*types.AdminTokenResponse, error) {
	admin := a.Config.Admin
	if admin == nil || admin.Username == "" {
		return nil, errors.New("admin credentials not configured")
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) == 1
	if !userOK || !passOK {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}

	token, err := a.Sessions.Create(ctx, session.KindAdmin, admin.Username)
	if err != nil {
		return nil, err
	}
	return &types.AdminTokenResponse{Token: token}, nil
}

func (a *AuthService) Logout(ctx context.Context, token string) error {
	return a.Sessions.Destroy(ctx, token)
}
