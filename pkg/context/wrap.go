package context

import (
	"errors"
	"net/http"

	"Greenway/pkg/log"
	"Greenway/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxPrincipalID = "principal_id"
	CtxToken       = "session_token"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("handler failed",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, err.Error())
		}
	}
}

// GetPrincipalID returns the authenticated principal set by middleware.Auth.
func GetPrincipalID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxPrincipalID)
	if !ok {
		return "", errors.New("principal_id 不存在")
	}

	id, ok := v.(string)
	if !ok {
		return "", errors.New("principal_id 类型错误")
	}

	return id, nil
}
