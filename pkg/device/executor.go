package device

import (
	"sync"
	"time"

	"ai_device/pkg/display"
	"ai_device/pkg/logger"
	"ai_device/pkg/metrics"
	"ai_device/pkg/models"
)

// Executor 把动作作用到外设上
type Executor struct {
	mu      sync.RWMutex
	state   *State
	led     LED
	display Display
	logger  logger.Logger
	sleep   func(time.Duration)
}

// NewExecutor 创建动作执行器
func NewExecutor(state *State, led LED, disp Display, log logger.Logger) *Executor {
	if state == nil {
		state = &State{}
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Executor{
		state:   state,
		led:     led,
		display: disp,
		logger:  log,
		sleep:   time.Sleep,
	}
}

// SetSleep 替换阻塞等待的实现（用于测试）
func (e *Executor) SetSleep(sleep func(time.Duration)) {
	e.sleep = sleep
}

// State 返回设备状态的快照，可以在其他goroutine中调用
func (e *Executor) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return *e.state
}

// Execute 执行单个动作，从不返回错误：无法识别或字段非法的动作只记录日志，
// 不影响后续动作。delay_ms会阻塞调用方。
func (e *Executor) Execute(action Action) {
	switch a := action.(type) {
	case LEDAction:
		if !e.executeLED(a) {
			return
		}
	case DisplayAction:
		e.ShowWrapped(a.Text)
	case DelayAction:
		if a.MS > 0 {
			e.sleep(time.Duration(a.MS) * time.Millisecond)
		}
	case UnknownAction:
		e.logger.Warn("[AI] Unknown action type: %s", a.Type)
		metrics.ActionsSkipped.WithLabelValues("unknown_type").Inc()
		return
	default:
		e.logger.Warn("[AI] Unhandled action %T", action)
		return
	}
	metrics.ActionsExecuted.WithLabelValues(action.Kind()).Inc()
}

func (e *Executor) executeLED(a LEDAction) bool {
	var on bool
	switch a.Value {
	case models.LEDOn:
		on = true
	case models.LEDOff:
		on = false
	default:
		e.logger.Debug("[AI] Ignoring led value %q", a.Value)
		metrics.ActionsSkipped.WithLabelValues("invalid_field").Inc()
		return false
	}

	if err := e.led.SetLED(on); err != nil {
		e.logger.Error("[LED] write failed: %v", err)
	}
	e.mu.Lock()
	e.state.LED = on
	e.mu.Unlock()
	if on {
		metrics.LEDState.Set(1)
	} else {
		metrics.LEDState.Set(0)
	}
	return true
}

// ShowWrapped 换行后显示文本
func (e *Executor) ShowWrapped(text string) {
	line1, line2 := display.Wrap(text)
	e.render(line1, line2)
}

// ShowMessage 单行显示状态信息（如"WiFi ERR"）
func (e *Executor) ShowMessage(msg string) {
	e.render(msg, "")
}

func (e *Executor) render(line1, line2 string) {
	if err := e.display.Render(line1, line2); err != nil {
		e.logger.Error("[OLED] render failed: %v", err)
	}
	e.mu.Lock()
	e.state.Frame = Frame{Line1: line1, Line2: line2}
	e.mu.Unlock()
}
