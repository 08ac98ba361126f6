// Package intent 是参考用的指令解析服务：按关键词把自然语言指令
// 映射成回复文本和动作列表。
package intent

import (
	"fmt"
	"strings"

	"ai_device/pkg/models"
)

// MaxDelayMS delay_ms动作允许的最大值
const MaxDelayMS = 60000

var (
	greetings = []string{"hello", "hej", "cześć", "czesc"}

	ledOn  = phraseSet("led on", "ledon", "włącz led", "wlacz led", "zalacz led", "załącz led")
	ledOff = phraseSet("led off", "ledoff", "wyłącz led", "wylacz led", "zgas led", "zgaś led")
)

func phraseSet(phrases ...string) map[string]bool {
	set := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		set[p] = true
	}
	return set
}

// Reply 解析结果
type Reply struct {
	Response string
	Actions  []models.WireAction
}

// Interpret 解析指令。匹配顺序：问候、status、LED开、LED关，其余返回兜底提示。
func Interpret(text string) Reply {
	t := strings.ToLower(strings.TrimSpace(text))

	for _, g := range greetings {
		if strings.Contains(t, g) {
			return Reply{
				Response: "Cześć! Jestem gotowy 🤖",
				Actions:  []models.WireAction{OLED("Czesc! 🤖")},
			}
		}
	}

	if strings.Contains(t, "status") {
		return Reply{
			Response: "System działa poprawnie ✅",
			Actions:  []models.WireAction{OLED("Status: OK")},
		}
	}

	if ledOn[t] {
		return Reply{
			Response: "Włączam LED ✅",
			Actions:  []models.WireAction{LED(models.LEDOn), OLED("LED: ON")},
		}
	}

	if ledOff[t] {
		return Reply{
			Response: "Wyłączam LED ✅",
			Actions:  []models.WireAction{LED(models.LEDOff), OLED("LED: OFF")},
		}
	}

	return Reply{
		Response: "Nie rozumiem polecenia. Spróbuj: hello, status, led on, led off.",
		Actions:  []models.WireAction{OLED("Nie rozumiem :(")},
	}
}

// OLED 构造显示动作
func OLED(text string) models.WireAction {
	return models.WireAction{Type: models.ActionOLED, Text: text}
}

// LED 构造LED动作
func LED(value string) models.WireAction {
	return models.WireAction{Type: models.ActionLED, Value: value}
}

// Delay 构造延时动作
func Delay(ms int) models.WireAction {
	return models.WireAction{Type: models.ActionDelay, MS: &ms}
}

// Validate 检查动作是否合法
func Validate(a models.WireAction) error {
	switch a.Type {
	case models.ActionOLED:
		return nil
	case models.ActionLED:
		if a.Value != models.LEDOn && a.Value != models.LEDOff {
			return fmt.Errorf("led value must be on or off, got %q", a.Value)
		}
		return nil
	case models.ActionDelay:
		if a.MS == nil {
			return fmt.Errorf("delay_ms requires ms")
		}
		if *a.MS < 0 || *a.MS > MaxDelayMS {
			return fmt.Errorf("ms must be within 0..%d, got %d", MaxDelayMS, *a.MS)
		}
		return nil
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}
}
