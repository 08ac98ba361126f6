package main

import (
	"log"

	"ai_device/pkg/config"
	"ai_device/pkg/intent"
	"ai_device/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	port       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backend",
		Short: "Reference command interpretation service",
		Long:  "把文本指令解析成设备动作（LED、屏幕、延时）的参考后端",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML配置文件路径")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "HTTP服务器端口（默认取配置）")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("命令执行失败: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer l.Close()

	if port == "" {
		port = cfg.BackendPort
	}

	server := intent.NewServer(l.With("component", "intent"))
	l.Info("🌐 指令解析服务启动在端口 %s", port)
	l.Info("📋 健康检查: http://localhost:%s/health", port)
	return server.Run(":" + port)
}
