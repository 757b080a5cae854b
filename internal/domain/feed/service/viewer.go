package service

import "context"

// PostFlags 与当前查看者相关的状态
type PostFlags struct {
	Liked      bool
	Bookmarked bool
}

// ViewerFlags 查询查看者对帖子的点赞/收藏状态
// No per-viewer like or bookmark tracking exists yet; NoViewerFlags is the
// default and every flag reads false.
type ViewerFlags interface {
	Flags(ctx context.Context, viewerID string, postIDs []int64) map[int64]PostFlags
}

// NoViewerFlags 默认实现，全部返回 false
type NoViewerFlags struct{}

func (NoViewerFlags) Flags(context.Context, string, []int64) map[int64]PostFlags {
	return map[int64]PostFlags{}
}
