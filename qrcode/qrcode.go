// Package qrcode 核销码生成。
// 门票和酒店订单支付成功后生成二维码，线下扫码核销
package qrcode

import (
	"encoding/base64"
	"encoding/json"

	"github.com/skip2/go-qrcode"

	"github.com/yuesf/travel/errors"
)

// ErrorCorrectionLevel 二维码纠错级别
type ErrorCorrectionLevel = qrcode.RecoveryLevel

const (
	// Low 7% 的纠错能力
	Low ErrorCorrectionLevel = qrcode.Low
	// Medium 15% 的纠错能力（默认）
	Medium ErrorCorrectionLevel = qrcode.Medium
	// High 25% 的纠错能力，核销码默认使用，票面磨损也能扫出
	High ErrorCorrectionLevel = qrcode.High
	// Highest 30% 的纠错能力
	Highest ErrorCorrectionLevel = qrcode.Highest
)

// DefaultSize 默认边长（像素）
const DefaultSize = 256

// Ticket 核销凭证内容，JSON 序列化后编入二维码
type Ticket struct {
	OrderNo     string `json:"orderNo"`
	ProductType string `json:"productType"`
	ProductID   int64  `json:"productId"`
	UseDate     string `json:"useDate,omitempty"`
}

// ForTicket 生成核销二维码，返回 PNG 字节
func ForTicket(t Ticket, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	payload, err := json.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, "encode ticket payload")
	}
	return qrcode.Encode(string(payload), High, size)
}

// TicketDataURL 生成核销二维码并返回 data URL，
// 小程序 image 组件可直接作为 src 使用
func TicketDataURL(t Ticket, size int) (string, error) {
	png, err := ForTicket(t, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Generate 生成任意内容的二维码并返回 Base64 编码的字符串
func Generate(content string, size int) (string, error) {
	return GenerateWithLevel(content, size, Medium)
}

// GenerateWithLevel 生成指定纠错级别的二维码并返回 Base64 编码的字符串
func GenerateWithLevel(content string, size int, level ErrorCorrectionLevel) (string, error) {
	bytes, err := qrcode.Encode(content, level, size)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

// GenerateToFile 生成二维码并保存到文件
func GenerateToFile(content string, size int, filename string) error {
	return qrcode.WriteFile(content, Medium, size, filename)
}
