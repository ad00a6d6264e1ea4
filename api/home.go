package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/yuesf/travel/client"
	"github.com/yuesf/travel/log"
	"github.com/yuesf/travel/storage"
)

// HomeService 首页和搜索接口，无需登录
type HomeService struct {
	client *client.Client
	typed  *storage.Typed
}

// Home 获取首页数据：轮播图和各类推荐
func (s *HomeService) Home(ctx context.Context) (*HomeData, error) {
	var data HomeData
	err := s.client.Do(ctx, client.RequestConfig{
		Path:     "/miniprogram/home",
		NeedAuth: client.Bool(false),
	}, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Search 搜索景点、酒店、商品。
// 非空关键词成功后记入本地搜索历史
func (s *HomeService) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	q := url.Values{}
	if params.Keyword != "" {
		q.Set("keyword", params.Keyword)
	}
	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(params.PageSize))
	}

	var result SearchResult
	err := s.client.Do(ctx, client.RequestConfig{
		Path:     "/miniprogram/home/search",
		Query:    q,
		NeedAuth: client.Bool(false),
	}, &result)
	if err != nil {
		return nil, err
	}

	if s.typed != nil && params.Keyword != "" {
		if err := s.typed.AddSearchHistory(params.Keyword); err != nil {
			log.G.Warn().Err(err).Msg("failed to record search history")
		}
	}
	return &result, nil
}

// SearchHistory 本地搜索历史，最新在前
func (s *HomeService) SearchHistory() []string {
	if s.typed == nil {
		return nil
	}
	return s.typed.SearchHistory()
}

// ClearSearchHistory 清空本地搜索历史
func (s *HomeService) ClearSearchHistory() error {
	if s.typed == nil {
		return nil
	}
	return s.typed.ClearSearchHistory()
}
