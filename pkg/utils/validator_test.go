package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type searchBody struct {
	SearchPhrase string `json:"search_phrase" validate:"required,min=2,max=200"`
	Limit        int    `json:"limit,omitempty" validate:"min=0,max=10"`
}

func TestValidate_Required(t *testing.T) {
	v := NewValidator()

	errors := v.Validate(&searchBody{})
	assert.True(t, errors.HasErrors())
	assert.Contains(t, errors, "search_phrase")
}

func TestValidate_MinMax(t *testing.T) {
	v := NewValidator()

	// 너무 짧은 검색어
	errors := v.Validate(&searchBody{SearchPhrase: "a"})
	assert.Contains(t, errors, "search_phrase")

	// limit 초과
	errors = v.Validate(&searchBody{SearchPhrase: "compute", Limit: 11})
	assert.Contains(t, errors, "limit")

	// 정상 요청
	errors = v.Validate(&searchBody{SearchPhrase: "compute instance", Limit: 5})
	assert.False(t, errors.HasErrors())

	// limit 생략 (0)은 기본값 처리 대상이므로 허용
	errors = v.Validate(&searchBody{SearchPhrase: "compute instance"})
	assert.False(t, errors.HasErrors())
}

func TestValidate_MultibyteLength(t *testing.T) {
	v := NewValidator()

	// 한 글자 한글 검색어는 바이트 수(3)가 아닌 문자 수(1)로 판정되어야 함
	errors := v.Validate(&searchBody{SearchPhrase: "가"})
	assert.Contains(t, errors, "search_phrase")

	// 두 글자면 통과
	errors = v.Validate(&searchBody{SearchPhrase: "컴퓨트"})
	assert.False(t, errors.HasErrors())

	// 200자 한글 검색어 (600바이트)는 최대 길이 이내
	long := strings.Repeat("가", 200)
	errors = v.Validate(&searchBody{SearchPhrase: long})
	assert.False(t, errors.HasErrors())

	// 201자는 초과
	errors = v.Validate(&searchBody{SearchPhrase: long + "나"})
	assert.Contains(t, errors, "search_phrase")
}

func TestValidate_FieldNameFromJSONTag(t *testing.T) {
	v := NewValidator()

	errors := v.Validate(&searchBody{SearchPhrase: ""})
	_, usesJSONName := errors["search_phrase"]
	_, usesGoName := errors["SearchPhrase"]

	assert.True(t, usesJSONName)
	assert.False(t, usesGoName)
}

func TestValidate_NonStruct(t *testing.T) {
	v := NewValidator()

	errors := v.Validate("문자열")
	assert.True(t, errors.HasErrors())
}
