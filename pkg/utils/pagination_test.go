package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPageOffset(t *testing.T) {
	tests := []struct {
		name       string
		in         Pagination
		wantOffset int
		wantLimit  int
	}{
		{"defaults", Pagination{}, 0, 10},
		{"first page", Pagination{Page: 1, Limit: 10}, 0, 10},
		{"third page", Pagination{Page: 3, Limit: 20}, 40, 20},
		{"negative page", Pagination{Page: -2, Limit: 5}, 0, 5},
		{"limit capped", Pagination{Page: 2, Limit: 1000}, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			offset, limit := p.GetPageOffset()
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestHasMore(t *testing.T) {
	p := Pagination{Page: 1, Limit: 10}
	p.GetPageOffset()

	assert.False(t, p.HasMore(3))
	assert.False(t, p.HasMore(0))
	// exactly limit rows left: reported as more even though nothing follows
	assert.True(t, p.HasMore(10))

	info := p.Info(10)
	assert.Equal(t, PageInfo{Page: 1, Limit: 10, Total: 10, HasMore: true}, info)
}
