package utils

import (
	"reflect"

	"github.com/gofiber/fiber/v2"
)

// ParseBodyAndValidate는 JSON 요청 본문을 DTO로 변환하고 검증합니다.
// c: fiber 컨텍스트
// dto: 변환될 DTO 구조체 포인터 (빈 구조체 전달)
// 반환값: 에러가 있으면 fiber.Error, 성공 시 nil 반환
func ParseBodyAndValidate(c *fiber.Ctx, dto interface{}) error {
	// 타입 검사 - dto는 포인터여야 함
	dtoValue := reflect.ValueOf(dto)
	if dtoValue.Kind() != reflect.Ptr || dtoValue.IsNil() {
		return fiber.NewError(fiber.StatusBadRequest, "DTO는 유효한 포인터 타입이어야 합니다")
	}

	// 본문 파싱
	if err := c.BodyParser(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "요청 본문 파싱 실패: "+err.Error())
	}

	// 채워진 DTO 검증
	validate := NewValidator()
	errors := validate.Validate(dto)
	if errors.HasErrors() {
		Debug("validator", "유효성 검증 실패: %s", errors.Error())
		return fiber.NewError(fiber.StatusBadRequest, errors.Error())
	}

	return nil
}
