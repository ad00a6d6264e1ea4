package admin

import (
	"context"
	"fmt"

	"github.com/yuesf/travel/client"
)

// AttractionService 景点管理接口
type AttractionService struct {
	client *client.Client
}

// List 分页查询景点
func (s *AttractionService) List(ctx context.Context, q ListQuery) (*Page[Attraction], error) {
	var page Page[Attraction]
	if err := s.client.Get(ctx, "/admin/attractions", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get 查询单个景点
func (s *AttractionService) Get(ctx context.Context, id int64) (*Attraction, error) {
	var a Attraction
	if err := s.client.Get(ctx, fmt.Sprintf("/admin/attractions/%d", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create 新建景点
func (s *AttractionService) Create(ctx context.Context, a Attraction) (*Attraction, error) {
	var created Attraction
	if err := s.client.Post(ctx, "/admin/attractions", a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update 更新景点
func (s *AttractionService) Update(ctx context.Context, id int64, a Attraction) error {
	return s.client.Put(ctx, fmt.Sprintf("/admin/attractions/%d", id), a, nil)
}

// Delete 删除景点
func (s *AttractionService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/attractions/%d", id), nil)
}
