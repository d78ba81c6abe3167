// @title AI-900 自学备考 API
// @version 1.0
// @description Azure AI-900 认证自学平台的后端服务器。启动时解析学习文档，按会话跟踪学习进度。

// @host localhost:8080
// @BasePath /api

package main

import (
	"log"

	"ai900_study_backend/internal/app"
	"ai900_study_backend/internal/config"
	"ai900_study_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
