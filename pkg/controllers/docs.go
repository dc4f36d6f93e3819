package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_interface "github.com/ocidocs-dev/ocidocs-go/pkg/interfaces"
	request "github.com/ocidocs-dev/ocidocs-go/pkg/types/dtos/requests"
	response "github.com/ocidocs-dev/ocidocs-go/pkg/types/dtos/responses"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// SearchDocumentation은 문서 검색 요청을 처리하는 핸들러입니다
func SearchDocumentation(searchService _interface.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()

		var req request.SearchDocumentation
		if err := utils.ParseBodyAndValidate(c, &req); err != nil {
			utils.Debug("search", "[%s] 검증 오류: %v", requestID, err)
			return err
		}

		results, err := searchService.SearchDocumentation(req)
		if err != nil {
			utils.Error("search", "[%s] 검색 실패: %v", requestID, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "검색 중 오류 발생: " + err.Error(),
			})
		}

		utils.Info("search", "[%s] 검색 완료: %q (%d건)", requestID, req.SearchPhrase, len(results))

		resp := response.SearchDocumentation{
			SearchPhrase: req.SearchPhrase,
			TotalResults: len(results),
			Results:      results,
		}

		return c.JSON(resp)
	}
}

// ReadDocumentation은 문서 읽기 요청을 처리하는 핸들러입니다
func ReadDocumentation(readerService _interface.ReaderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()

		var req request.ReadDocumentation
		if err := utils.ParseBodyAndValidate(c, &req); err != nil {
			utils.Debug("reader", "[%s] 검증 오류: %v", requestID, err)
			return err
		}

		page, slice, err := readerService.ReadDocumentation(req)
		if err != nil {
			// URL 검증 오류는 400, 가져오기/변환 오류는 502로 구분
			if errors.Is(err, _interface.ErrInvalidRequest) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			utils.Error("reader", "[%s] 문서 읽기 실패: %v", requestID, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "문서 읽기 중 오류 발생: " + err.Error(),
			})
		}

		utils.Info("reader", "[%s] 문서 읽기 완료: %s (%d~%d/%d, 캐시=%v)",
			requestID, page.URL, slice.StartIndex, slice.EndIndex, slice.TotalLength, page.FromCache)

		resp := response.ReadDocumentation{
			URL:            page.URL,
			Content:        slice.Content,
			TotalLength:    slice.TotalLength,
			StartIndex:     slice.StartIndex,
			EndIndex:       slice.EndIndex,
			Truncated:      slice.Truncated,
			NextStartIndex: slice.NextStartIndex,
			FromCache:      page.FromCache,
		}

		return c.JSON(resp)
	}
}
