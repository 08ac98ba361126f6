package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"ai_device/pkg/api"
	"ai_device/pkg/backend"
	"ai_device/pkg/config"
	"ai_device/pkg/device"
	"ai_device/pkg/handler"
	"ai_device/pkg/logger"
	"ai_device/pkg/mqtt"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	port        string
	targetID    string
	sendTimeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "device",
		Short: "AI command device",
		Long:  "把自然语言指令发给后端解析，并在LED和双行屏幕上执行返回的动作",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML配置文件路径")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "启动设备（Web界面 + 可选MQTT指令通道）",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "HTTP服务器端口（默认取配置）")

	askCmd := &cobra.Command{
		Use:   "ask <text...>",
		Short: "执行一条指令并打印结果",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	sendCmd := &cobra.Command{
		Use:   "send <text...>",
		Short: "通过MQTT向远程设备发送指令",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSend,
	}
	sendCmd.Flags().StringVarP(&targetID, "device", "d", "", "目标设备ID")
	sendCmd.Flags().DurationVarP(&sendTimeout, "timeout", "t", 30*time.Second, "等待响应的超时时间")
	_ = sendCmd.MarkFlagRequired("device")

	rootCmd.AddCommand(serveCmd, askCmd, sendCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("命令执行失败: %v", err)
	}
}

// node 一台组装好的设备
type node struct {
	cfg      *config.Config
	logger   *logger.SlogLogger
	id       string
	link     device.Link
	executor *device.Executor
	serial   *handler.Serial
	mqtt     *mqtt.Client
}

func (n *node) close() {
	if n.mqtt != nil {
		n.mqtt.Disconnect()
	}
	_ = n.logger.Close()
}

// buildNode 加载配置并组装外设、执行器、后端客户端和指令处理器
func buildNode(withMQTT bool) (*node, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	l, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	n := &node{
		cfg:    cfg,
		logger: l,
		link:   device.NetLink{Interface: cfg.NetInterface},
	}
	identity := device.Identity{
		Tag:       cfg.DeviceTag,
		MAC:       cfg.DeviceMAC,
		Interface: cfg.NetInterface,
	}
	deviceID := identity.DeviceID()
	n.id = deviceID
	devLog := l.With("device_id", deviceID)

	leds := device.MultiLED{device.ConsoleLED{Logger: devLog}}
	displays := device.MultiDisplay{device.ConsoleDisplay{Logger: devLog}}

	if withMQTT && cfg.MQTTEnabled {
		client := mqtt.NewClient(cfg, deviceID, devLog.With("component", "mqtt"))
		if err := client.Connect(); err != nil {
			devLog.Warn("MQTT不可用，仅使用本地外设: %v", err)
		} else {
			n.mqtt = client
			mirror := mqtt.NewMirror(client, deviceID)
			leds = append(leds, mirror)
			displays = append(displays, mirror)
		}
	}

	n.executor = device.NewExecutor(&device.State{}, leds, displays, devLog)

	n.executor.ShowMessage("Boot...")
	if n.link.Connected() {
		n.executor.ShowMessage("WiFi OK")
	} else {
		n.executor.ShowMessage("WiFi FAIL")
	}

	currentID := func() string { return deviceID }
	client := backend.NewClient(cfg, n.link, currentID, n.executor, devLog.With("component", "backend"))
	n.serial = handler.NewSerial(handler.NewCommandHandler(client, devLog))
	return n, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	n, err := buildNode(true)
	if err != nil {
		return err
	}
	defer n.close()

	deviceID := n.id

	if n.mqtt != nil {
		if err := n.mqtt.ServeCommands(deviceID, n.serial.Handle); err != nil {
			return fmt.Errorf("订阅命令主题失败: %w", err)
		}
		n.logger.Info("📡 MQTT命令主题: %s", mqtt.CommandTopic(deviceID))
	}

	if port == "" {
		port = n.cfg.HTTPPort
	}
	server := api.NewServer(n.serial, n.executor, n.link, func() string { return deviceID })

	n.logger.Info("🤖 设备ID: %s", deviceID)
	n.logger.Info("🌐 HTTP服务器启动在端口 %s", port)
	n.logger.Info("🎨 Web界面: http://localhost:%s/", port)
	n.logger.Info("📝 指令接口: http://localhost:%s/cmd?text=", port)

	return server.Run(":" + port)
}

func runAsk(cmd *cobra.Command, args []string) error {
	n, err := buildNode(false)
	if err != nil {
		return err
	}
	defer n.close()

	fmt.Println(n.serial.Handle(strings.Join(args, " ")))

	st := n.executor.State()
	fmt.Printf("[%s]\n[%s]\n", st.Frame.Line1, st.Frame.Line2)
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer l.Close()

	client := mqtt.NewClient(cfg, "device_cli", l)
	if err := client.Connect(); err != nil {
		return err
	}
	defer client.Disconnect()

	resp, err := client.Request(targetID, strings.Join(args, " "), sendTimeout)
	if err != nil {
		return err
	}
	if resp.Status != "success" {
		fmt.Fprintf(os.Stderr, "❌ %s\n", resp.Error)
		return fmt.Errorf("command failed on %s", resp.DeviceID)
	}
	fmt.Println(resp.Output)
	fmt.Printf("耗时: %dms\n", resp.Duration)
	return nil
}
