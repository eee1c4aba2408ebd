package service

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/Baktyiar1/Netflix144p/internal/api/config"
	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/testdb"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/util"
	"github.com/Baktyiar1/Netflix144p/internal/repository"

	"gorm.io/gorm"
)

const cdn = "https://cdn.test/"

// fakeMedia 内存对象存储
type fakeMedia struct {
	mu      sync.Mutex
	objects map[string]string
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{objects: make(map[string]string)}
}

func (m *fakeMedia) PublicURL(_ context.Context, objectName string) string {
	if objectName == "" {
		return ""
	}
	return cdn + objectName
}

func (m *fakeMedia) UploadFile(_ context.Context, objectName string, reader io.Reader, _ int64, contentType string) (string, error) {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectName] = contentType
	return objectName, nil
}

type testEnv struct {
	db       *gorm.DB
	catalog  CatalogService
	taxonomy TaxonomyService
	favorite FavoriteService
	rating   RatingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testdb.New(t)
	media := newFakeMedia()
	cfg := config.Default().Catalog

	contentRepo := repository.NewContentRepo(db)
	taxonomyRepo := repository.NewTaxonomyRepo(db)
	crewRepo := repository.NewCrewRepo(db)
	bannerRepo := repository.NewBannerRepo(db)

	return &testEnv{
		db:       db,
		catalog:  NewCatalogService(contentRepo, taxonomyRepo, crewRepo, bannerRepo, repository.NewEpisodeRepo(db), media, cfg),
		taxonomy: NewTaxonomyService(taxonomyRepo, crewRepo, bannerRepo, media, cfg),
		favorite: NewFavoriteService(repository.NewFavoriteRepo(db), contentRepo, media),
		rating:   NewRatingService(repository.NewRatingRepo(db), contentRepo),
	}
}

func (e *testEnv) mustTaxonomy(t *testing.T, kind TaxonomyKind, title string) uint64 {
	t.Helper()
	node, err := e.taxonomy.CreateTaxonomy(context.Background(), kind, &dto.TaxonomyCreateDTO{Title: title})
	if err != nil {
		t.Fatalf("create %s %s: %v", kind, title, err)
	}
	return node.ID
}

func (e *testEnv) mustContent(t *testing.T, req *dto.ContentCreateDTO) *dto.ContentDetailDTO {
	t.Helper()
	if req.Description == "" {
		req.Description = req.Title
	}
	if req.ReleaseDate == "" {
		req.ReleaseDate = "2021-03-04"
	}
	if req.Poster == "" {
		req.Poster = "poster/" + req.Title + ".jpg"
	}
	res, err := e.catalog.CreateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("create content %s: %v", req.Title, err)
	}
	return res.Item
}

func film(title string) *dto.ContentCreateDTO {
	return &dto.ContentCreateDTO{Title: title, IsFilm: util.Ptr(true)}
}

func series(title string) *dto.ContentCreateDTO {
	return &dto.ContentCreateDTO{Title: title, IsFilm: util.Ptr(false)}
}

func ids[T any](items []T, id func(T) uint64) []uint64 {
	res := make([]uint64, 0, len(items))
	for _, item := range items {
		res = append(res, id(item))
	}
	return res
}

func summaryID(s dto.ContentSummaryDTO) uint64 { return s.ID }

func taxonomyID(s dto.TaxonomyDTO) uint64 { return s.ID }

func equalIDs(got, want []uint64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

var _ MediaStore = (*fakeMedia)(nil)
