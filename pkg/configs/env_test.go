package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPITokenList(t *testing.T) {
	config := &EnvConfig{}

	// 토큰 미설정
	assert.Empty(t, config.APITokenList())

	// 단일 토큰
	config.Auth.APITokens = "secret"
	assert.Equal(t, []string{"secret"}, config.APITokenList())

	// 쉼표 구분 + 공백 정리
	config.Auth.APITokens = "token-a, token-b ,token-c"
	assert.Equal(t, []string{"token-a", "token-b", "token-c"}, config.APITokenList())

	// 빈 항목은 제외
	config.Auth.APITokens = "token-a,,  ,token-b"
	assert.Equal(t, []string{"token-a", "token-b"}, config.APITokenList())
}
