package device

import (
	"ai_device/pkg/logger"
)

// ConsoleLED 把LED状态写到日志，没有真实硬件时使用
type ConsoleLED struct {
	Logger logger.Logger
}

func (c ConsoleLED) SetLED(on bool) error {
	state := "OFF"
	if on {
		state = "ON"
	}
	c.Logger.Info("💡 LED %s", state)
	return nil
}

// ConsoleDisplay 把屏幕内容写到日志
type ConsoleDisplay struct {
	Logger logger.Logger
}

func (c ConsoleDisplay) Render(line1, line2 string) error {
	c.Logger.Info("🖥  [%-16s] [%-16s]", line1, line2)
	return nil
}

// MultiLED 同时写多个LED输出
type MultiLED []LED

func (m MultiLED) SetLED(on bool) error {
	var firstErr error
	for _, l := range m {
		if err := l.SetLED(on); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// MultiDisplay 同时渲染到多个屏幕
type MultiDisplay []Display

func (m MultiDisplay) Render(line1, line2 string) error {
	var firstErr error
	for _, d := range m {
		if err := d.Render(line1, line2); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
