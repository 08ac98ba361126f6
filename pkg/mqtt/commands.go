package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"ai_device/pkg/models"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// HandleFunc 执行一条指令，返回给用户看的文本
type HandleFunc func(text string) string

// ServeCommands 订阅设备的命令主题，执行后把结果发布到响应主题
func (c *Client) ServeCommands(deviceID string, handle HandleFunc) error {
	responseTopic := ResponseTopic(deviceID)

	return c.Subscribe(CommandTopic(deviceID), func(_ MQTT.Client, msg MQTT.Message) {
		var command models.Command
		if err := json.Unmarshal(msg.Payload(), &command); err != nil {
			c.logger.Warn("解析命令失败: %v", err)
			return
		}

		// 指令可能因delay_ms阻塞，不占用paho的回调goroutine
		go func() {
			c.logger.Info("收到命令: %s (ID: %s)", command.Text, command.ID)
			response := c.runCommand(deviceID, &command, handle)
			if err := c.PublishJSON(responseTopic, false, response); err != nil {
				c.logger.Error("发送响应失败: %v", err)
			}
		}()
	})
}

func (c *Client) runCommand(deviceID string, command *models.Command, handle HandleFunc) *models.Response {
	start := time.Now()
	response := &models.Response{
		ID:       command.ID,
		DeviceID: deviceID,
		Status:   "success",
	}

	if command.Text == "" {
		response.Status = "error"
		response.Error = "empty command text"
	} else {
		response.Output = handle(command.Text)
	}

	response.Duration = time.Since(start).Milliseconds()
	response.Timestamp = time.Now().Unix()
	return response
}

// Request 向指定设备发送指令并等待响应
func (c *Client) Request(deviceID, text string, timeout time.Duration) (*models.Response, error) {
	command := models.Command{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: time.Now().Unix(),
	}

	responseChan := make(chan *models.Response, 1)
	responseTopic := ResponseTopic(deviceID)

	err := c.Subscribe(responseTopic, func(_ MQTT.Client, msg MQTT.Message) {
		var resp models.Response
		if err := json.Unmarshal(msg.Payload(), &resp); err != nil || resp.ID != command.ID {
			return
		}
		select {
		case responseChan <- &resp:
		default:
		}
	})
	if err != nil {
		return nil, err
	}
	defer c.Unsubscribe(responseTopic)

	if err := c.PublishJSON(CommandTopic(deviceID), false, command); err != nil {
		return nil, err
	}

	select {
	case resp := <-responseChan:
		return resp, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("timeout waiting for response on %s", responseTopic)
	}
}
