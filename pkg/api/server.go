package api

import (
	"net/http"
	"time"

	"ai_device/pkg/device"
	"ai_device/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// CommandRunner 执行一条指令并返回文本
type CommandRunner interface {
	Handle(rawText string) string
}

// StateReader 读取设备状态
type StateReader interface {
	State() device.State
}

// Server 设备本地HTTP服务
type Server struct {
	router   *gin.Engine
	runner   CommandRunner
	state    StateReader
	link     device.Link
	deviceID func() string
}

// NewServer 创建服务端
func NewServer(runner CommandRunner, state StateReader, link device.Link, deviceID func() string) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &Server{
		router:   router,
		runner:   runner,
		state:    state,
		link:     link,
		deviceID: deviceID,
	}
	server.setupRoutes()
	return server
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.GET("/", s.webInterface)
	s.router.GET("/cmd", s.executeCommand)
	s.router.GET("/state", s.deviceState)
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler 返回带CORS的http.Handler
func (s *Server) Handler() http.Handler {
	return cors.Default().Handler(s.router)
}

// webInterface Web界面
func (s *Server) webInterface(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// executeCommand 执行指令，结果以纯文本返回
func (s *Server) executeCommand(c *gin.Context) {
	text, ok := c.GetQuery("text")
	if !ok {
		c.String(http.StatusBadRequest, "Missing ?text=")
		return
	}
	c.String(http.StatusOK, s.runner.Handle(text))
}

// deviceState 当前LED和屏幕内容
func (s *Server) deviceState(c *gin.Context) {
	st := s.state.State()
	c.JSON(http.StatusOK, models.DeviceStatus{
		DeviceID: s.deviceID(),
		LED:      st.LED,
		Line1:    st.Frame.Line1,
		Line2:    st.Frame.Line2,
	})
}

// healthCheck 健康检查
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"device_id": s.deviceID(),
		"connected": s.link.Connected(),
		"timestamp": time.Now(),
	})
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
