package intent

import (
	"net/http"
	"time"

	"ai_device/pkg/logger"
	"ai_device/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Version 服务版本
const Version = "0.2.0"

// Server 指令解析服务
type Server struct {
	router *gin.Engine
	logger logger.Logger
	now    func() time.Time
}

// NewServer 创建服务
func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop{}
	}
	s := &Server{
		router: gin.New(),
		logger: log,
		now:    time.Now,
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.POST("/ai", s.interpret)
}

// Handler 返回http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// healthCheck 健康检查
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: s.timestamp(),
		Version:   Version,
	})
}

// interpret 解析指令
func (s *Server) interpret(c *gin.Context) {
	var request models.BackendRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	reply := Interpret(request.Text)
	for _, a := range reply.Actions {
		if err := Validate(a); err != nil {
			s.logger.Error("invalid action generated: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	response := models.BackendResponse{
		RequestID: uuid.NewString(),
		Timestamp: s.timestamp(),
		DeviceID:  request.DeviceID,
		Response:  reply.Response,
		Actions:   reply.Actions,
	}
	if response.Actions == nil {
		response.Actions = []models.WireAction{}
	}

	s.logger.Info("device=%s text=%q -> %q", request.DeviceID, request.Text, reply.Response)
	c.JSON(http.StatusOK, response)
}
