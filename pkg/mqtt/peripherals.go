package mqtt

import "time"

// LEDMessage LED状态消息
type LEDMessage struct {
	On        bool  `json:"on"`
	Timestamp int64 `json:"timestamp"`
}

// DisplayMessage 屏幕帧消息
type DisplayMessage struct {
	Line1     string `json:"line1"`
	Line2     string `json:"line2"`
	Timestamp int64  `json:"timestamp"`
}

// Mirror 把LED和屏幕的变化以retained消息发布出去，
// 实现device.LED和device.Display
type Mirror struct {
	client   *Client
	deviceID string
}

// NewMirror 创建外设镜像
func NewMirror(client *Client, deviceID string) *Mirror {
	return &Mirror{client: client, deviceID: deviceID}
}

func (m *Mirror) SetLED(on bool) error {
	return m.client.PublishJSON(LEDTopic(m.deviceID), true, LEDMessage{
		On:        on,
		Timestamp: time.Now().Unix(),
	})
}

func (m *Mirror) Render(line1, line2 string) error {
	return m.client.PublishJSON(DisplayTopic(m.deviceID), true, DisplayMessage{
		Line1:     line1,
		Line2:     line2,
		Timestamp: time.Now().Unix(),
	})
}
