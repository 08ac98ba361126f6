package models

// Command 通过MQTT下发给设备的指令
type Command struct {
	ID        string `json:"id"`        // 命令唯一ID
	Text      string `json:"text"`      // 自然语言指令
	Timestamp int64  `json:"timestamp"` // 时间戳
}

// Response 设备执行指令后的响应
type Response struct {
	ID        string `json:"id"`              // 对应的命令ID
	DeviceID  string `json:"device_id"`       // 设备标识
	Status    string `json:"status"`          // success, error
	Output    string `json:"output"`          // 返回给用户的文本
	Error     string `json:"error,omitempty"` // 错误信息（如果有）
	Duration  int64  `json:"duration"`        // 执行耗时(毫秒)
	Timestamp int64  `json:"timestamp"`       // 时间戳
}
