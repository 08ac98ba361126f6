package device

// Frame 屏幕上当前显示的两行文本
type Frame struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// State 设备状态：LED最后一次设置的值和屏幕当前帧。
// 只由Executor在执行指令的goroutine中修改。
type State struct {
	LED   bool
	Frame Frame
}

// LED LED输出接口
type LED interface {
	SetLED(on bool) error
}

// Display 两行文本屏幕接口，每次渲染整体替换当前帧
type Display interface {
	Render(line1, line2 string) error
}
