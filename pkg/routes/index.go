package routes

import (
	"github.com/gofiber/fiber/v2"
	service "github.com/ocidocs-dev/ocidocs-go/pkg/services"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App) {
	services := service.NewServiceContainer()

	// 도메인별 라우트 설정
	SetupDocsRoutes(app, services)
	SetupAppRoutes(app)
}
