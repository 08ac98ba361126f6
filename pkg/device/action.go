package device

import (
	"encoding/json"
	"math"

	"ai_device/pkg/models"
)

// Action 后端下发的单个动作。只有本包内的类型实现该接口。
type Action interface {
	Kind() string
	isAction()
}

// LEDAction 设置LED，Value为"on"或"off"，其他值不生效
type LEDAction struct {
	Value string
}

// DisplayAction 在屏幕上显示文本（自动换行）
type DisplayAction struct {
	Text string
}

// DelayAction 阻塞等待MS毫秒
type DelayAction struct {
	MS int
}

// UnknownAction 无法识别的动作，仅记录日志
type UnknownAction struct {
	Type string
}

func (LEDAction) Kind() string       { return models.ActionLED }
func (DisplayAction) Kind() string   { return models.ActionOLED }
func (DelayAction) Kind() string     { return models.ActionDelay }
func (a UnknownAction) Kind() string { return a.Type }

func (LEDAction) isAction()     {}
func (DisplayAction) isAction() {}
func (DelayAction) isAction()   {}
func (UnknownAction) isAction() {}

// ParseActions 宽松解析actions字段：缺失或不是数组时返回空列表，
// 字段类型不对时取零值，非对象元素视为type为空的未知动作。
func ParseActions(raw json.RawMessage) []Action {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}

	actions := make([]Action, 0, len(items))
	for _, item := range items {
		actions = append(actions, parseAction(item))
	}
	return actions
}

func parseAction(raw json.RawMessage) Action {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return UnknownAction{}
	}

	kind := stringField(fields, "type")
	switch kind {
	case models.ActionLED:
		return LEDAction{Value: stringField(fields, "value")}
	case models.ActionOLED:
		return DisplayAction{Text: stringField(fields, "text")}
	case models.ActionDelay:
		return DelayAction{MS: intField(fields, "ms")}
	default:
		return UnknownAction{Type: kind}
	}
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return ""
}

func intField(fields map[string]json.RawMessage, key string) int {
	var f float64
	raw, ok := fields[key]
	if !ok || json.Unmarshal(raw, &f) != nil {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}
