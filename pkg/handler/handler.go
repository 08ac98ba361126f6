package handler

import (
	"sync"

	"ai_device/pkg/logger"
)

// Asker 把指令交给后端处理
type Asker interface {
	Ask(command string) (string, error)
}

// CommandHandler 入站传输层（HTTP、MQTT）调用的入口
type CommandHandler struct {
	asker  Asker
	logger logger.Logger
}

// NewCommandHandler 创建指令处理器
func NewCommandHandler(asker Asker, log logger.Logger) *CommandHandler {
	if log == nil {
		log = logger.Nop{}
	}
	return &CommandHandler{asker: asker, logger: log}
}

// Handle 执行指令并返回给用户看的文本
func (h *CommandHandler) Handle(rawText string) string {
	h.logger.Info("CMD: %s", rawText)
	text, err := h.asker.Ask(rawText)
	if err != nil {
		h.logger.Error("command failed: %v", err)
	}
	return text
}

// Serial 保证同一时间只有一条指令在执行，多个入站传输共用
type Serial struct {
	mu      sync.Mutex
	handler *CommandHandler
}

// NewSerial 包装处理器
func NewSerial(h *CommandHandler) *Serial {
	return &Serial{handler: h}
}

// Handle 排队执行指令
func (s *Serial) Handle(rawText string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handler.Handle(rawText)
}
