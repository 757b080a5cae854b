package validate

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"community_api/pkg/apperr"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var once sync.Once

// Setup 为 gin 的校验引擎注册自定义规则
// Safe to call from every module Init.
func Setup() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		// 错误信息中使用 json 字段名
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// FromBindError 将 ShouldBind 的错误转换为 Validation 错误
func FromBindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return apperr.Validation("Missing required fields: " + strings.Join(fields, ", "))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return apperr.Validation("Malformed JSON body")
	case errors.As(err, &typeErr):
		return apperr.Validation("Invalid value for field: " + typeErr.Field)
	}
	return apperr.Validation("Invalid request body: " + err.Error())
}
