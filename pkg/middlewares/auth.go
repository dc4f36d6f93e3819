package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// BearerAuth는 Bearer 토큰 인증 미들웨어입니다.
// 설정된 API 토큰이 없으면 인증을 건너뜁니다 (로컬 개발용).
func BearerAuth() fiber.Handler {
	tokens := configs.GetConfig().APITokenList()

	if len(tokens) == 0 {
		utils.Warn("auth", "API 토큰이 설정되지 않아 인증이 비활성화되었습니다")
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		// Authorization 헤더 확인
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "인증 토큰이 없습니다",
			})
		}

		// Bearer 형식 확인
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "잘못된 인증 형식입니다",
			})
		}

		// 토큰 추출 및 검증
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if !validToken(tokens, token) {
			utils.Warn("auth", "유효하지 않은 토큰으로 요청 거부: %s %s", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "유효하지 않은 인증 토큰입니다",
			})
		}

		return c.Next()
	}
}

// validToken은 제시된 토큰이 허용 목록에 있는지 확인합니다.
// 타이밍 공격을 피하기 위해 상수 시간 비교를 사용합니다.
func validToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1 {
			return true
		}
	}
	return false
}
