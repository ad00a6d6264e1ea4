package client

import "encoding/json"

// envelopeSuccess 后端信封的成功业务码
const envelopeSuccess = 200

// envelope 后端统一的响应信封。
// 信封在请求层拆掉，调用方只拿到 data 部分
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
