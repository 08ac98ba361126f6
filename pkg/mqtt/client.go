package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"ai_device/pkg/config"
	"ai_device/pkg/logger"

	MQTT "github.com/eclipse/paho.mqtt.golang"
)

// Client MQTT客户端封装
type Client struct {
	client MQTT.Client
	logger logger.Logger
}

// NewClient 创建新的MQTT客户端
func NewClient(cfg *config.Config, clientID string, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop{}
	}

	opts := MQTT.NewClientOptions().AddBroker(cfg.MQTTAddress())
	opts.SetClientID(fmt.Sprintf("%s_%d", clientID, time.Now().Unix()))

	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}

	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(1 * time.Second)

	opts.SetDefaultPublishHandler(func(client MQTT.Client, msg MQTT.Message) {
		log.Debug("Received message: %s from topic: %s", msg.Payload(), msg.Topic())
	})

	return &Client{client: MQTT.NewClient(opts), logger: log}
}

// NewWithClient 使用已有的paho客户端
func NewWithClient(client MQTT.Client, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop{}
	}
	return &Client{client: client, logger: log}
}

// Connect 连接到MQTT服务器
func (c *Client) Connect() error {
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT connection failed: %w", token.Error())
	}
	c.logger.Info("Connected to MQTT broker")
	return nil
}

// PublishJSON 发布JSON消息
func (c *Client) PublishJSON(topic string, retained bool, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal payload for %s: %w", topic, err)
	}

	token := c.client.Publish(topic, 0, retained, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish to %s failed: %w", topic, token.Error())
	}
	return nil
}

// Subscribe 订阅主题
func (c *Client) Subscribe(topic string, handler MQTT.MessageHandler) error {
	if token := c.client.Subscribe(topic, 0, handler); token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s failed: %w", topic, token.Error())
	}
	c.logger.Info("Subscribed to topic: %s", topic)
	return nil
}

// Unsubscribe 取消订阅
func (c *Client) Unsubscribe(topic string) {
	c.client.Unsubscribe(topic).Wait()
}

// Disconnect 断开连接
func (c *Client) Disconnect() {
	c.client.Disconnect(250)
	c.logger.Info("Disconnected from MQTT broker")
}

// IsConnected 检查连接状态
func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}

// 主题
func CommandTopic(deviceID string) string  { return "device/" + deviceID + "/command" }
func ResponseTopic(deviceID string) string { return "device/" + deviceID + "/response" }
func LEDTopic(deviceID string) string      { return "device/" + deviceID + "/led" }
func DisplayTopic(deviceID string) string  { return "device/" + deviceID + "/display" }
