package routes

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/ocidocs-dev/ocidocs-go/pkg/controllers"
	_interface "github.com/ocidocs-dev/ocidocs-go/pkg/interfaces"
	middleware "github.com/ocidocs-dev/ocidocs-go/pkg/middlewares"
)

// SetupDocsRoutes는 문서 검색/읽기 라우트를 설정합니다
func SetupDocsRoutes(app *fiber.App, services *_interface.ServiceContainer) {
	// 문서 API는 Bearer 토큰 인증 필요
	auth := middleware.BearerAuth()

	app.Post("/search_documentation", auth, controller.SearchDocumentation(services.SearchService))
	app.Post("/read_documentation", auth, controller.ReadDocumentation(services.ReaderService))
}
