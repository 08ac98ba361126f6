package backend

import "errors"

var (
	// ErrConnectivity 没有网络，未发起请求
	ErrConnectivity = errors.New("network not connected")
	// ErrTransport 所有尝试都没有拿到响应
	ErrTransport = errors.New("backend unreachable")
	// ErrResponsePayload 收到了响应但无法解析，不重试
	ErrResponsePayload = errors.New("invalid backend response")
)

// 返回给用户的固定文本
const (
	TextNotConnected = "WiFi not connected"
	TextBackendError = "Backend error"
	TextParseError   = "JSON parse error"
)

// 屏幕上的错误提示
const (
	IndicatorWiFi    = "WiFi ERR"
	IndicatorBackend = "Backend ERR"
	IndicatorJSON    = "JSON ERR"
)
