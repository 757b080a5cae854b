package response

import (
	"community_api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Error   string `json:"error"`             // 提示信息
	Code    string `json:"code,omitempty"`    // 错误码
	Message string `json:"message,omitempty"` // 内部错误详情，仅调试模式返回
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, code string, msg string) {
	c.JSON(httpCode, ErrorBody{
		Error: msg,
		Code:  code,
	})
}

// Fail 将业务错误转换为 HTTP 响应
// debug 为 true 时附带内部错误详情
func Fail(c *gin.Context, err error, debug bool) {
	e := apperr.As(err)
	body := ErrorBody{
		Error: e.Message,
		Code:  e.Code,
	}
	if debug && e.Err != nil {
		body.Message = e.Err.Error()
	}
	c.JSON(apperr.HTTPStatus(err), body)
}
