package repository

import (
	"fmt"
	"sync"
	"time"

	_interface "github.com/ocidocs-dev/ocidocs-go/pkg/interfaces"
	model "github.com/ocidocs-dev/ocidocs-go/pkg/types/models"
)

// InMemoryPageRepository는 인메모리 페이지 캐시 구현체입니다
type InMemoryPageRepository struct {
	// 페이지 캐시 맵 (URL -> 변환 결과)
	pageCache     map[string]*model.PageCache
	pageCacheLock sync.RWMutex
}

// NewPageRepository는 새 인메모리 페이지 캐시 저장소를 생성합니다
func NewPageRepository() _interface.PageCacheRepository {
	return &InMemoryPageRepository{
		pageCache: make(map[string]*model.PageCache),
	}
}

// GetPageCache는 페이지 URL에 대한 캐시를 가져옵니다
func (db *InMemoryPageRepository) GetPageCache(pageURL string) (*model.PageCache, error) {
	if pageURL == "" {
		return nil, fmt.Errorf("페이지 URL이 비어 있습니다")
	}

	// 읽기 잠금 획득
	db.pageCacheLock.RLock()
	cache, exists := db.pageCache[pageURL]
	db.pageCacheLock.RUnlock()

	if !exists {
		return nil, nil // 캐시 없음 (에러 아님)
	}

	// 캐시 만료 확인
	if time.Now().After(cache.ExpiresAt) {
		// 만료된 항목은 제거
		db.pageCacheLock.Lock()
		delete(db.pageCache, pageURL)
		db.pageCacheLock.Unlock()
		return nil, nil
	}

	return cache, nil
}

// SavePageCache는 변환된 페이지를 캐시에 저장합니다
func (db *InMemoryPageRepository) SavePageCache(cache *model.PageCache) error {
	if cache == nil || cache.PageURL == "" {
		return fmt.Errorf("페이지 URL이 비어 있습니다")
	}

	if cache.Markdown == "" {
		return fmt.Errorf("변환된 본문이 비어 있습니다")
	}

	// 쓰기 잠금 획득
	db.pageCacheLock.Lock()
	defer db.pageCacheLock.Unlock()

	db.pageCache[cache.PageURL] = cache

	return nil
}
