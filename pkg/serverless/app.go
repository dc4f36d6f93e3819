package serverless

import (
	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	middleware "github.com/ocidocs-dev/ocidocs-go/pkg/middlewares"
	route "github.com/ocidocs-dev/ocidocs-go/pkg/routes"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// RuntimeConfig는 서버리스 런타임 환경 설정입니다
type RuntimeConfig struct {
	AppName string `env:"APP_NAME" envDefault:"ocidocs-go"`
	Port    string `env:"PORT" envDefault:"8080"`
	// 콜드 스타트 로그 출력 여부
	LogColdStart bool `env:"LOG_COLD_START" envDefault:"true"`
}

var app *fiber.App
var runtimeConfig RuntimeConfig

// 서버리스 환경에서는 전역 변수로 앱 인스턴스를 유지하여 콜드 스타트를 최소화합니다
func init() {
	if err := env.Parse(&runtimeConfig); err != nil {
		utils.Error("serverless", "런타임 환경 변수 파싱 실패: %v", err)
	}

	utils.InitMetrics()

	app = fiber.New(fiber.Config{
		AppName:               runtimeConfig.AppName,
		DisableStartupMessage: true, // 서버리스 환경에서는 시작 메시지 비활성화
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.Prometheus())

	route.SetupRoutes(app)
}

// GetApp 함수는 초기화된 애플리케이션 인스턴스를 반환합니다
// 이 함수는 AWS Lambda 핸들러 또는 GCP Cloud Run 핸들러에서 호출될 수 있습니다
func GetApp() *fiber.App {
	return app
}
