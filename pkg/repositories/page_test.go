package repository

import (
	"testing"
	"time"

	model "github.com/ocidocs-dev/ocidocs-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRepository_SaveAndGet(t *testing.T) {
	repo := NewPageRepository()

	cache := &model.PageCache{
		PageURL:     "https://docs.oracle.com/iaas/Content/home.htm",
		Markdown:    "# OCI Documentation",
		ContentType: "text/html",
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	require.NoError(t, repo.SavePageCache(cache))

	got, err := repo.GetPageCache(cache.PageURL)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "# OCI Documentation", got.Markdown)
}

func TestPageRepository_MissReturnsNil(t *testing.T) {
	repo := NewPageRepository()

	got, err := repo.GetPageCache("https://docs.oracle.com/unknown.htm")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPageRepository_ExpiredEntryEvicted(t *testing.T) {
	repo := NewPageRepository()

	cache := &model.PageCache{
		PageURL:   "https://docs.oracle.com/old.htm",
		Markdown:  "오래된 내용",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.SavePageCache(cache))

	got, err := repo.GetPageCache(cache.PageURL)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPageRepository_RejectsEmptyValues(t *testing.T) {
	repo := NewPageRepository()

	assert.Error(t, repo.SavePageCache(nil))
	assert.Error(t, repo.SavePageCache(&model.PageCache{PageURL: "", Markdown: "내용"}))
	assert.Error(t, repo.SavePageCache(&model.PageCache{PageURL: "https://docs.oracle.com/a.htm"}))

	_, err := repo.GetPageCache("")
	assert.Error(t, err)
}
