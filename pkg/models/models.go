package models

// 动作类型
const (
	ActionLED   = "led"
	ActionOLED  = "oled"
	ActionDelay = "delay_ms"
)

// LED取值
const (
	LEDOn  = "on"
	LEDOff = "off"
)

// BackendRequest 发往指令解析服务的请求
type BackendRequest struct {
	Text     string                 `json:"text"`                // 用户输入的指令
	DeviceID string                 `json:"device_id,omitempty"` // 设备标识
	Context  map[string]interface{} `json:"context,omitempty"`   // 附加上下文
}

// BackendResponse 指令解析服务的响应
type BackendResponse struct {
	RequestID string       `json:"request_id"`          // 请求ID
	Timestamp string       `json:"ts,omitempty"`        // UTC时间（ISO 8601）
	DeviceID  string       `json:"device_id,omitempty"` // 设备标识
	Response  string       `json:"response"`            // 给用户看的文本
	Actions   []WireAction `json:"actions"`             // 动作列表
}

// WireAction 线上传输的动作，按type使用对应字段
type WireAction struct {
	Type  string `json:"type"`            // led, oled, delay_ms
	Text  string `json:"text,omitempty"`  // oled
	Value string `json:"value,omitempty"` // led: on/off
	MS    *int   `json:"ms,omitempty"`    // delay_ms
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"ts"`
	Version   string `json:"version"`
}

// DeviceStatus 设备当前状态
type DeviceStatus struct {
	DeviceID string `json:"device_id"`
	LED      bool   `json:"led"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
}
