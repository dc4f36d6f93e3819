package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	middleware "github.com/ocidocs-dev/ocidocs-go/pkg/middlewares"
	route "github.com/ocidocs-dev/ocidocs-go/pkg/routes"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

func main() {
	// .env 파일 로드 (없으면 무시하고 환경 변수 사용)
	godotenv.Load()

	// 메트릭 초기화
	utils.InitMetrics()

	app := fiber.New(fiber.Config{
		AppName: configs.GetConfig().Server.AppName,
	})

	// 미들웨어 설정
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.Prometheus())

	// 라우트 설정
	route.SetupRoutes(app)

	// 서버 시작
	port := configs.GetConfig().Server.Port
	if err := app.Listen(":" + port); err != nil {
		utils.Fatal("server", "서버 시작 실패: %v", err)
	}
}
