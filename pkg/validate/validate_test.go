package validate

import (
	"testing"

	"community_api/pkg/apperr"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postRequest struct {
	Type    string `json:"type" binding:"required,notblank"`
	Title   string `json:"title" binding:"required,notblank"`
	Content string `json:"content" binding:"required,notblank"`
}

func TestFromBindError(t *testing.T) {
	Setup()

	t.Run("lists missing fields by json name", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&postRequest{Type: "text", Title: "   "})
		require.Error(t, err)

		converted := FromBindError(err)
		assert.True(t, apperr.IsKind(converted, apperr.KindValidation))
		assert.Equal(t, "Missing required fields: title, content", converted.Error())
	})

	t.Run("complete request passes", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&postRequest{Type: "text", Title: "Hi", Content: "Hello"})
		assert.NoError(t, err)
	})
}
