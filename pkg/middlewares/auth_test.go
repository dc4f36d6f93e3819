package middleware

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 설정 싱글톤이 테스트용 환경 변수를 읽도록 먼저 설정합니다
func TestMain(m *testing.M) {
	os.Setenv("PORT", "3000")
	os.Setenv("APP_NAME", "ocidocs-test")
	os.Setenv("API_TOKENS", "test-token-1, test-token-2")

	os.Exit(m.Run())
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/search_documentation", BearerAuth(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/search_documentation", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestBearerAuth_WrongScheme(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/search_documentation", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/search_documentation", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestBearerAuth_ValidToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/search_documentation", nil)
	req.Header.Set("Authorization", "Bearer test-token-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBearerAuth_SecondConfiguredToken(t *testing.T) {
	app := newTestApp()

	// 쉼표 구분 목록의 두 번째 토큰 (공백 포함 설정)도 허용
	req := httptest.NewRequest("POST", "/search_documentation", nil)
	req.Header.Set("Authorization", "Bearer test-token-2")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
