package utils

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination 分页请求参数
type Pagination struct {
	Page  int    `json:"page" form:"page"`
	Limit int    `json:"limit" form:"limit"`
	Type  string `json:"type" form:"type"` // 可选的帖子类型过滤
}

// PageInfo 分页响应信息
// Total is the number of items on this page, not a count of the whole table.
type PageInfo struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// GetPageOffset 计算分页偏移量
func (p *Pagination) GetPageOffset() (int, int) {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return (p.Page - 1) * p.Limit, p.Limit
}

// HasMore 返回条数等于 limit 时认为可能还有下一页
// A final page holding exactly limit rows reports true as well.
func (p *Pagination) HasMore(returned int) bool {
	return returned == p.Limit
}

// Info 根据本页返回条数生成分页信息
func (p *Pagination) Info(returned int) PageInfo {
	return PageInfo{
		Page:    p.Page,
		Limit:   p.Limit,
		Total:   returned,
		HasMore: p.HasMore(returned),
	}
}
