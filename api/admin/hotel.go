package admin

import (
	"context"
	"fmt"

	"github.com/yuesf/travel/client"
)

// HotelService 酒店和房型管理接口
type HotelService struct {
	client *client.Client
}

// List 分页查询酒店
func (s *HotelService) List(ctx context.Context, q ListQuery) (*Page[Hotel], error) {
	var page Page[Hotel]
	if err := s.client.Get(ctx, "/admin/hotels", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get 查询单个酒店
func (s *HotelService) Get(ctx context.Context, id int64) (*Hotel, error) {
	var h Hotel
	if err := s.client.Get(ctx, fmt.Sprintf("/admin/hotels/%d", id), nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Create 新建酒店
func (s *HotelService) Create(ctx context.Context, h Hotel) (*Hotel, error) {
	var created Hotel
	if err := s.client.Post(ctx, "/admin/hotels", h, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update 更新酒店
func (s *HotelService) Update(ctx context.Context, id int64, h Hotel) error {
	return s.client.Put(ctx, fmt.Sprintf("/admin/hotels/%d", id), h, nil)
}

// Delete 删除酒店
func (s *HotelService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/hotels/%d", id), nil)
}

// Rooms 查询酒店的房型列表
func (s *HotelService) Rooms(ctx context.Context, hotelID int64) ([]HotelRoom, error) {
	var rooms []HotelRoom
	if err := s.client.Get(ctx, fmt.Sprintf("/admin/hotels/%d/rooms", hotelID), nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom 新建房型
func (s *HotelService) CreateRoom(ctx context.Context, room HotelRoom) (*HotelRoom, error) {
	var created HotelRoom
	if err := s.client.Post(ctx, "/admin/hotels/rooms", room, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRoom 更新房型
func (s *HotelService) UpdateRoom(ctx context.Context, id int64, room HotelRoom) error {
	return s.client.Put(ctx, fmt.Sprintf("/admin/hotels/rooms/%d", id), room, nil)
}

// DeleteRoom 删除房型
func (s *HotelService) DeleteRoom(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/hotels/rooms/%d", id), nil)
}
