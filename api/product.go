package api

import (
	"context"
	"fmt"

	"github.com/yuesf/travel/client"
)

// ProductService 详情接口：景点、酒店、商品，无需登录
type ProductService struct {
	client *client.Client
}

// AttractionDetail 获取景点详情
func (s *ProductService) AttractionDetail(ctx context.Context, id int64) (*Attraction, error) {
	var a Attraction
	err := s.client.Do(ctx, client.RequestConfig{
		Path:     fmt.Sprintf("/miniprogram/attractions/%d", id),
		NeedAuth: client.Bool(false),
	}, &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// HotelDetail 获取酒店详情，包含房型列表
func (s *ProductService) HotelDetail(ctx context.Context, id int64) (*Hotel, error) {
	var h Hotel
	err := s.client.Do(ctx, client.RequestConfig{
		Path:     fmt.Sprintf("/miniprogram/hotels/%d", id),
		NeedAuth: client.Bool(false),
	}, &h)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ProductDetail 获取商品详情
func (s *ProductService) ProductDetail(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := s.client.Do(ctx, client.RequestConfig{
		Path:     fmt.Sprintf("/miniprogram/products/%d", id),
		NeedAuth: client.Bool(false),
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
