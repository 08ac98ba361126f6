package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai_device/pkg/config"
	"ai_device/pkg/device"
	"ai_device/pkg/logger"
	"ai_device/pkg/metrics"
	"ai_device/pkg/models"
)

// Client 指令解析服务客户端：发送指令、有限次重试、执行返回的动作
type Client struct {
	url          string
	retries      int
	backoff      time.Duration
	maxBodyBytes int64

	httpClient *http.Client
	link       device.Link
	deviceID   func() string
	executor   *device.Executor
	logger     logger.Logger
	sleep      func(time.Duration)
}

// Option 客户端选项
type Option func(*Client)

// WithHTTPClient 替换HTTP客户端
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSleep 替换重试退避的等待实现
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Client) { c.sleep = sleep }
}

// NewClient 创建客户端
func NewClient(cfg *config.Config, link device.Link, deviceID func() string, executor *device.Executor, log logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop{}
	}
	c := &Client{
		url:          cfg.BackendURL,
		retries:      cfg.HTTPRetries,
		backoff:      cfg.HTTPBackoff(),
		maxBodyBytes: cfg.MaxResponseBytes,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout(),
		},
		link:     link,
		deviceID: deviceID,
		executor: executor,
		logger:   log,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ask 把指令发给后端并执行返回的动作。返回值总是给用户看的文本；
// error为nil表示成功，否则是ErrConnectivity、ErrTransport或ErrResponsePayload。
// 重试退避和delay_ms动作都会阻塞调用方。
func (c *Client) Ask(command string) (string, error) {
	if !c.link.Connected() {
		c.logger.Warn("[WiFi] Not connected")
		c.executor.ShowMessage(IndicatorWiFi)
		metrics.CommandsTotal.WithLabelValues("connectivity").Inc()
		return TextNotConnected, ErrConnectivity
	}

	payload, err := json.Marshal(models.BackendRequest{
		Text:     command,
		DeviceID: c.deviceID(),
	})
	if err != nil {
		// 只有字符串字段，不会失败
		return TextBackendError, fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		body, status, err := c.post(payload)
		c.logger.Info("[HTTP] attempt=%d status=%d", attempt, status)
		c.logger.Debug("[HTTP] payload: %s", payload)

		if err != nil {
			metrics.BackendAttempts.WithLabelValues("transport_error").Inc()
			c.logger.Warn("[HTTP] attempt=%d failed: %v", attempt, err)
			lastErr = err
			if attempt == c.retries {
				break
			}
			c.sleep(c.backoff * time.Duration(attempt+1))
			continue
		}
		metrics.BackendAttempts.WithLabelValues("response").Inc()
		c.logger.Debug("[HTTP] body: %s", body)

		return c.handleBody(body)
	}

	c.executor.ShowMessage(IndicatorBackend)
	metrics.CommandsTotal.WithLabelValues("transport").Inc()
	if lastErr == nil {
		return TextBackendError, ErrTransport
	}
	return TextBackendError, fmt.Errorf("%w: %v", ErrTransport, lastErr)
}

// post 发送一次请求。只有拿不到响应时才返回错误，HTTP状态码不影响结果。
func (c *Client) post(payload []byte) ([]byte, int, error) {
	start := time.Now()
	defer func() {
		metrics.BackendRequestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	// 多读一个字节用于判断是否超限
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// handleBody 解析响应并执行动作
func (c *Client) handleBody(body []byte) (string, error) {
	res, err := c.decode(body)
	if err != nil {
		c.logger.Error("[JSON] parse error: %v", err)
		c.executor.ShowMessage(IndicatorJSON)
		metrics.CommandsTotal.WithLabelValues("payload").Inc()
		return TextParseError, fmt.Errorf("%w: %v", ErrResponsePayload, err)
	}

	c.logger.Info("[AI] request_id=%s", res.requestID)
	c.logger.Info("[AI] response='%s'", res.response)

	hadDisplay := false
	for _, action := range res.actions {
		c.executor.Execute(action)
		if _, ok := action.(device.DisplayAction); ok {
			hadDisplay = true
		}
	}
	if !hadDisplay {
		c.executor.ShowWrapped(res.response)
	}

	metrics.CommandsTotal.WithLabelValues("ok").Inc()
	return res.response, nil
}

type decoded struct {
	requestID string
	response  string
	actions   []device.Action
}

// decode 响应必须是JSON对象；request_id、response类型不对时按空字符串处理
func (c *Client) decode(body []byte) (*decoded, error) {
	if int64(len(body)) > c.maxBodyBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", c.maxBodyBytes)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("body is not a JSON object")
	}

	return &decoded{
		requestID: stringField(fields, "request_id"),
		response:  stringField(fields, "response"),
		actions:   device.ParseActions(fields["actions"]),
	}, nil
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return ""
}
