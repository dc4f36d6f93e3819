package serverless

import (
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// CloudRunMain은 GCP Cloud Run 진입점 함수입니다
func CloudRunMain() {
	app := GetApp()
	if err := app.Listen(":" + runtimeConfig.Port); err != nil {
		utils.Fatal("serverless", "서버 시작 실패: %v", err)
	}
}
