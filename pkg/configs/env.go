package configs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

type EnvConfig struct {
	Server struct {
		Port    string `mapstructure:"PORT"`
		AppName string `mapstructure:"APP_NAME"`
	}
	Auth struct {
		// 쉼표로 구분된 API 토큰 목록 (비어있으면 인증 비활성화)
		APITokens string `mapstructure:"API_TOKENS"`
	}
	Search struct {
		// DuckDuckGo HTML 검색 엔드포인트
		EngineURL string `mapstructure:"SEARCH_ENGINE_URL"`
		// 검색 결과를 제한할 문서 도메인
		DocsDomain string `mapstructure:"DOCS_DOMAIN"`
		UserAgent  string `mapstructure:"SEARCH_USER_AGENT"`
	}
	Cache struct {
		// 페이지 캐시 TTL (시간 단위)
		TTLHours int `mapstructure:"CACHE_TTL_HOURS"`
	}
	AWS struct {
		AccessKeyID      string `mapstructure:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey  string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
		Region           string `mapstructure:"AWS_REGION"`
		DynamoDBEndpoint string `mapstructure:"AWS_DYNAMODB_ENDPOINT"`
		Tables           struct {
			PageCache string `mapstructure:"AWS_DYNAMODB_TABLE_PAGE_CACHE"`
		}
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	// Makefile 또는 환경에서 설정된 VERSION 환경 변수 사용
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev" // 기본값 설정
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// loadConfig는 환경 변수를 로드하고 검증하는 내부 함수
func loadConfig() *EnvConfig {
	viper.SetConfigFile(".env")
	viper.ReadInConfig()
	viper.AutomaticEnv()

	// 필수 환경 변수 확인
	requiredEnvVars := []string{
		"PORT",
		"APP_NAME",
	}

	missingVars := []string{}
	for _, envVar := range requiredEnvVars {
		if !viper.IsSet(envVar) {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		log.Fatalf("필수 환경 변수가 설정되지 않았습니다: %s", strings.Join(missingVars, ", "))
	}

	// 기본값 설정
	viper.SetDefault("SEARCH_ENGINE_URL", "https://html.duckduckgo.com/html/")
	viper.SetDefault("DOCS_DOMAIN", "docs.oracle.com")
	viper.SetDefault("SEARCH_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	viper.SetDefault("CACHE_TTL_HOURS", 24)

	// 환경 변수 키-구조체 필드 매핑 정의
	config := &EnvConfig{}
	envMapping := map[string]*string{
		"PORT":     &config.Server.Port,
		"APP_NAME": &config.Server.AppName,

		"API_TOKENS": &config.Auth.APITokens,

		"SEARCH_ENGINE_URL": &config.Search.EngineURL,
		"DOCS_DOMAIN":       &config.Search.DocsDomain,
		"SEARCH_USER_AGENT": &config.Search.UserAgent,

		"AWS_ACCESS_KEY_ID":             &config.AWS.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY":         &config.AWS.SecretAccessKey,
		"AWS_REGION":                    &config.AWS.Region,
		"AWS_DYNAMODB_ENDPOINT":         &config.AWS.DynamoDBEndpoint,
		"AWS_DYNAMODB_TABLE_PAGE_CACHE": &config.AWS.Tables.PageCache,
	}

	// 필드에 환경 변수 값 매핑 - 문자열 필드
	for key, field := range envMapping {
		*field = viper.GetString(key)
	}

	// 숫자 필드 매핑
	config.Cache.TTLHours = viper.GetInt("CACHE_TTL_HOURS")

	return config
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		configInstance = loadConfig()
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s)\n", AppVersion)
	})
	return configInstance
}

// APITokenList는 설정된 API 토큰 목록을 반환합니다.
// 토큰이 설정되지 않은 경우 빈 슬라이스를 반환합니다.
func (c *EnvConfig) APITokenList() []string {
	if strings.TrimSpace(c.Auth.APITokens) == "" {
		return []string{}
	}

	tokens := []string{}
	for _, token := range strings.Split(c.Auth.APITokens, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
