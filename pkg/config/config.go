package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 后端（远程指令解析服务）
	BackendURL       string `yaml:"ai_url"`
	HTTPTimeoutMS    int    `yaml:"http_timeout_ms"`
	HTTPRetries      int    `yaml:"http_retries"`
	HTTPBackoffMS    int    `yaml:"http_backoff_ms"`
	MaxResponseBytes int64  `yaml:"max_response_bytes"`

	// 设备标识
	DeviceTag    string `yaml:"device_tag"`
	DeviceMAC    string `yaml:"device_mac"`
	NetInterface string `yaml:"net_interface"`

	// 本地服务
	HTTPPort    string `yaml:"http_port"`
	BackendPort string `yaml:"backend_port"`

	// MQTT
	MQTTEnabled  bool   `yaml:"mqtt_enabled"`
	MQTTBroker   string `yaml:"mqtt_broker"`
	MQTTPort     string `yaml:"mqtt_port"`
	MQTTUsername string `yaml:"mqtt_username"`
	MQTTPassword string `yaml:"mqtt_password"`

	// 日志
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		BackendURL:       "http://localhost:8000/ai",
		HTTPTimeoutMS:    3500,
		HTTPRetries:      2,
		HTTPBackoffMS:    150,
		MaxResponseBytes: 16 * 1024,
		DeviceTag:        "ESP32-",
		HTTPPort:         "8080",
		BackendPort:      "8000",
		MQTTBroker:       "localhost",
		MQTTPort:         "1883",
		LogLevel:         "info",
	}
}

// LoadConfig 依次从默认值、YAML文件、.env文件和环境变量加载配置
func LoadConfig(path string) (*Config, error) {
	config := Default()

	if path != "" {
		if err := loadFromYAML(path, config); err != nil {
			return nil, err
		}
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// loadFromYAML 从YAML文件加载配置
func loadFromYAML(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv 用环境变量覆盖（如果存在）
func applyEnv(config *Config) {
	config.BackendURL = getEnv("AI_URL", config.BackendURL)
	config.HTTPTimeoutMS = getEnvAsInt("HTTP_TIMEOUT_MS", config.HTTPTimeoutMS)
	config.HTTPRetries = getEnvAsInt("HTTP_RETRIES", config.HTTPRetries)
	config.HTTPBackoffMS = getEnvAsInt("HTTP_BACKOFF_MS", config.HTTPBackoffMS)
	config.MaxResponseBytes = int64(getEnvAsInt("MAX_RESPONSE_BYTES", int(config.MaxResponseBytes)))

	config.DeviceTag = getEnv("DEVICE_TAG", config.DeviceTag)
	config.DeviceMAC = getEnv("DEVICE_MAC", config.DeviceMAC)
	config.NetInterface = getEnv("NET_INTERFACE", config.NetInterface)

	config.HTTPPort = getEnv("HTTP_PORT", config.HTTPPort)
	config.BackendPort = getEnv("BACKEND_PORT", config.BackendPort)

	config.MQTTEnabled = getEnvAsBool("MQTT_ENABLED", config.MQTTEnabled)
	config.MQTTBroker = getEnv("MQTT_BROKER", config.MQTTBroker)
	config.MQTTPort = getEnv("MQTT_PORT", config.MQTTPort)
	config.MQTTUsername = getEnv("MQTT_USERNAME", config.MQTTUsername)
	config.MQTTPassword = getEnv("MQTT_PASSWORD", config.MQTTPassword)

	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.LogFile = getEnv("LOG_FILE", config.LogFile)
}

// Validate 检查配置是否可用
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BackendURL) == "" {
		return fmt.Errorf("AI_URL is empty")
	}
	if c.HTTPTimeoutMS <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_MS must be positive, got %d", c.HTTPTimeoutMS)
	}
	if c.HTTPRetries < 0 {
		return fmt.Errorf("HTTP_RETRIES must not be negative, got %d", c.HTTPRetries)
	}
	if c.HTTPBackoffMS < 0 {
		return fmt.Errorf("HTTP_BACKOFF_MS must not be negative, got %d", c.HTTPBackoffMS)
	}
	if c.MaxResponseBytes <= 0 {
		return fmt.Errorf("MAX_RESPONSE_BYTES must be positive, got %d", c.MaxResponseBytes)
	}
	return nil
}

// HTTPTimeout 单次请求超时
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

// HTTPBackoff 重试退避基数
func (c *Config) HTTPBackoff() time.Duration {
	return time.Duration(c.HTTPBackoffMS) * time.Millisecond
}

// MQTTAddress 返回broker地址
func (c *Config) MQTTAddress() string {
	return fmt.Sprintf("tcp://%s:%s", c.MQTTBroker, c.MQTTPort)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return i
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
