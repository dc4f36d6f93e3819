package service

import (
	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	"github.com/ocidocs-dev/ocidocs-go/pkg/db"
	_interface "github.com/ocidocs-dev/ocidocs-go/pkg/interfaces"
	repository "github.com/ocidocs-dev/ocidocs-go/pkg/repositories"
	"github.com/ocidocs-dev/ocidocs-go/pkg/services/api"
	"github.com/ocidocs-dev/ocidocs-go/pkg/services/internal/reader"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다
func NewServiceContainer() *_interface.ServiceContainer {
	config := configs.GetConfig()

	// 페이지 캐시 저장소 선택: DynamoDB 테이블이 설정된 경우 DynamoDB,
	// 아니면 인메모리 저장소 사용
	pageRepo := newPageRepository(config)

	searchService := api.NewSearchService()
	readerService := reader.NewReaderService(pageRepo)

	return &_interface.ServiceContainer{
		SearchService:  searchService,
		ReaderService:  readerService,
		PageRepository: pageRepo,
	}
}

// newPageRepository는 설정에 따라 페이지 캐시 저장소를 생성합니다
func newPageRepository(config *configs.EnvConfig) _interface.PageCacheRepository {
	if config.AWS.Tables.PageCache == "" || config.AWS.Region == "" {
		utils.Info("service", "인메모리 페이지 캐시 사용")
		return repository.NewPageRepository()
	}

	dynamoService, err := db.NewDynamoDBService(config)
	if err != nil {
		utils.Error("service", "DynamoDB 초기화 실패, 인메모리 캐시로 대체: %v", err)
		return repository.NewPageRepository()
	}

	if err := dynamoService.CreateTableIfNotExists(); err != nil {
		utils.Error("service", "페이지 캐시 테이블 준비 실패, 인메모리 캐시로 대체: %v", err)
		return repository.NewPageRepository()
	}

	utils.Info("service", "DynamoDB 페이지 캐시 사용 (테이블: %s)", config.AWS.Tables.PageCache)
	return dynamoService
}
