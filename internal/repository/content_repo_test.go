package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/testdb"

	"gorm.io/gorm"
)

type catalogFixture struct {
	db       *gorm.DB
	repo     ContentRepo
	drama    model.Category
	comedy   model.Category
	horror   model.Category
	action   model.Genre
	romance  model.Genre
	france   model.Country
	releases time.Time
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	db := testdb.New(t)
	f := &catalogFixture{
		db:       db,
		repo:     NewContentRepo(db),
		drama:    model.Category{Title: "Drama"},
		comedy:   model.Category{Title: "Comedy"},
		horror:   model.Category{Title: "Horror"},
		action:   model.Genre{Title: "Action"},
		romance:  model.Genre{Title: "Romance"},
		france:   model.Country{Title: "France"},
		releases: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, v := range []any{&f.drama, &f.comedy, &f.horror, &f.action, &f.romance, &f.france} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed taxonomy: %v", err)
		}
	}
	return f
}

// addItem 创建影片，movie/series 分别写入两个分类分区
func (f *catalogFixture) addItem(t *testing.T, title string, isFilm, active bool, movie, series []model.Category) *model.ContentItem {
	t.Helper()
	item := &model.ContentItem{
		Title:            title,
		Description:      title + " description",
		ReleaseDate:      f.releases,
		IsFilm:           isFilm,
		IsActive:         active,
		MovieCategories:  movie,
		SeriesCategories: series,
	}
	if err := f.repo.CreateContentItem(context.Background(), item); err != nil {
		t.Fatalf("create %s: %v", title, err)
	}
	return item
}

func titles(items []*model.ContentItem) []string {
	res := make([]string, 0, len(items))
	for _, item := range items {
		res = append(res, item.Title)
	}
	return res
}

func sameTitles(got []string, want ...string) bool {
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

func TestFindContentItem_NotFound(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.repo.FindContentItem(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindContentItem_PreloadsAssociations(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	item := &model.ContentItem{
		Title:           "Amelie",
		Description:     "-",
		ReleaseDate:     f.releases,
		IsFilm:          true,
		IsActive:        true,
		Genres:          []model.Genre{f.action, f.romance},
		Countries:       []model.Country{f.france},
		MovieCategories: []model.Category{f.comedy},
	}
	if err := f.repo.CreateContentItem(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := f.repo.FindContentItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got.Genres) != 2 || got.Genres[0].ID != f.action.ID || got.Genres[1].ID != f.romance.ID {
		t.Errorf("genres = %+v", got.Genres)
	}
	if len(got.Countries) != 1 || got.Countries[0].Title != "France" {
		t.Errorf("countries = %+v", got.Countries)
	}
	if len(got.MovieCategories) != 1 || len(got.SeriesCategories) != 0 {
		t.Errorf("categories movie=%d series=%d", len(got.MovieCategories), len(got.SeriesCategories))
	}
}

func TestListContentItems_CategoryPartitionFollowsDiscriminator(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	f.addItem(t, "Film A", true, true, []model.Category{f.drama}, nil)
	// 剧集误挂在影片分区上，不应出现在影片分类列表中
	f.addItem(t, "Series Misfiled", false, true, []model.Category{f.drama}, nil)
	f.addItem(t, "Series B", false, true, nil, []model.Category{f.drama})

	isFilm := true
	films, total, err := f.repo.ListContentItems(ctx, &ContentFilter{
		IsFilm:     &isFilm,
		CategoryID: &f.drama.ID,
		ActiveOnly: true,
	}, 10, 0)
	if err != nil {
		t.Fatalf("list films: %v", err)
	}
	if total != 1 || !sameTitles(titles(films), "Film A") {
		t.Errorf("films = %v (total %d)", titles(films), total)
	}

	isSeries := false
	series, _, err := f.repo.ListContentItems(ctx, &ContentFilter{
		IsFilm:     &isSeries,
		CategoryID: &f.drama.ID,
		ActiveOnly: true,
	}, 10, 0)
	if err != nil {
		t.Fatalf("list series: %v", err)
	}
	if !sameTitles(titles(series), "Series B") {
		t.Errorf("series = %v", titles(series))
	}

	both, _, err := f.repo.ListContentItems(ctx, &ContentFilter{CategoryID: &f.drama.ID}, 10, 0)
	if err != nil {
		t.Fatalf("list both: %v", err)
	}
	if !sameTitles(titles(both), "Series B", "Film A") {
		t.Errorf("both = %v", titles(both))
	}
}

func TestListContentItems_ActiveOnly(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	f.addItem(t, "Visible", true, true, nil, nil)
	f.addItem(t, "Hidden", true, false, nil, nil)

	items, total, err := f.repo.ListContentItems(ctx, &ContentFilter{ActiveOnly: true}, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || !sameTitles(titles(items), "Visible") {
		t.Errorf("items = %v (total %d)", titles(items), total)
	}
}

func TestListContentItems_Ordering(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	f.addItem(t, "Bravo", true, true, nil, nil)
	f.addItem(t, "Alpha", true, true, nil, nil)
	f.addItem(t, "Charlie", true, true, nil, nil)

	tests := []struct {
		name  string
		order OrderSpec
		want  []string
	}{
		{"default newest first", OrderSpec{}, []string{"Charlie", "Alpha", "Bravo"}},
		{"title asc", OrderSpec{Field: "title"}, []string{"Alpha", "Bravo", "Charlie"}},
		{"title desc", OrderSpec{Field: "title", Desc: true}, []string{"Charlie", "Bravo", "Alpha"}},
		{"unknown field ignored", OrderSpec{Field: "id; DROP TABLE content_items"}, []string{"Charlie", "Alpha", "Bravo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, _, err := f.repo.ListContentItems(ctx, &ContentFilter{Order: tt.order}, 0, 0)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if !sameTitles(titles(items), tt.want...) {
				t.Errorf("got %v, want %v", titles(items), tt.want)
			}
		})
	}
}

func TestListContentItems_TitleSearchEscapesWildcards(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	f.addItem(t, "100% Love", true, true, nil, nil)
	f.addItem(t, "1000 Loves", true, true, nil, nil)
	f.addItem(t, "The Matrix", true, true, nil, nil)

	tests := []struct {
		search string
		want   []string
	}{
		{"matrix", []string{"The Matrix"}},
		{"100%", []string{"100% Love"}},
		{"love", []string{"1000 Loves", "100% Love"}},
		{"_", nil},
	}
	for _, tt := range tests {
		items, _, err := f.repo.ListContentItems(ctx, &ContentFilter{TitleContains: tt.search}, 0, 0)
		if err != nil {
			t.Fatalf("search %q: %v", tt.search, err)
		}
		if !sameTitles(titles(items), tt.want...) {
			t.Errorf("search %q = %v, want %v", tt.search, titles(items), tt.want)
		}
	}
}

func TestListContentItems_Pagination(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three", "Four", "Five"} {
		f.addItem(t, title, true, true, nil, nil)
	}

	items, total, err := f.repo.ListContentItems(ctx, &ContentFilter{}, 2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if !sameTitles(titles(items), "Three", "Two") {
		t.Errorf("page = %v", titles(items))
	}
}

func TestListRecommendations_UnionOfPartitions(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	target := f.addItem(t, "Target", true, true, []model.Category{f.drama}, []model.Category{f.horror})
	f.addItem(t, "Same Drama", true, true, []model.Category{f.drama}, nil)
	f.addItem(t, "Inactive Drama", true, false, []model.Category{f.drama}, nil)
	f.addItem(t, "Only Comedy", true, true, []model.Category{f.comedy}, nil)
	// 通过目标的 series 分区命中
	f.addItem(t, "Series Horror", false, true, nil, []model.Category{f.horror})
	// 候选项经任一关联表命中即可，与其 is_film 无关
	f.addItem(t, "Series On Movie Table", false, true, []model.Category{f.drama}, nil)
	// 两个分区都命中时只出现一次
	f.addItem(t, "Both Tables", true, true, []model.Category{f.drama}, []model.Category{f.horror})

	item, err := f.repo.FindContentItem(ctx, target.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	recs, err := f.repo.ListRecommendations(ctx, item, 0)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if !sameTitles(titles(recs), "Both Tables", "Series On Movie Table", "Series Horror", "Same Drama") {
		t.Errorf("recommendations = %v", titles(recs))
	}
	for _, r := range recs {
		if r.ID == target.ID {
			t.Error("recommendations must not include the item itself")
		}
	}
}

func TestListRecommendations_Limit(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	target := f.addItem(t, "Target", true, true, []model.Category{f.drama}, nil)
	for _, title := range []string{"A", "B", "C"} {
		f.addItem(t, title, true, true, []model.Category{f.drama}, nil)
	}
	item, err := f.repo.FindContentItem(ctx, target.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	all, err := f.repo.ListRecommendations(ctx, item, 0)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("limit 0 returned %v", titles(all))
	}
	capped, err := f.repo.ListRecommendations(ctx, item, 2)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if !sameTitles(titles(capped), "C", "B") {
		t.Errorf("limit 2 returned %v", titles(capped))
	}
}

func TestListRecommendations_NoCategories(t *testing.T) {
	f := newCatalogFixture(t)
	item := f.addItem(t, "Lonely", true, true, nil, nil)
	f.addItem(t, "Other", true, true, []model.Category{f.drama}, nil)

	recs, err := f.repo.ListRecommendations(context.Background(), item, 10)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no recommendations, got %v", titles(recs))
	}
}

func TestAverageRating(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	item := f.addItem(t, "Rated", true, true, nil, nil)

	avg, err := f.repo.AverageRating(ctx, item.ID)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg != 0 {
		t.Errorf("average without ratings = %v, want 0", avg)
	}

	ratings := NewRatingRepo(f.db)
	for i, score := range []uint8{6, 8, 10} {
		if err = ratings.CreateRating(ctx, &model.Rating{UserID: uint64(i + 1), ContentID: item.ID, Score: score}); err != nil {
			t.Fatalf("rate: %v", err)
		}
	}
	avg, err = f.repo.AverageRating(ctx, item.ID)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg != 8 {
		t.Errorf("average = %v, want 8", avg)
	}
}

func TestUpdateContentItem_ReplacesAssociations(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	item := &model.ContentItem{
		Title:       "Before",
		Description: "-",
		ReleaseDate: f.releases,
		IsFilm:      true,
		IsActive:    true,
		Genres:      []model.Genre{f.action},
	}
	if err := f.repo.CreateContentItem(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	genres := []model.Genre{f.romance}
	countries := []model.Country{}
	err := f.repo.UpdateContentItem(ctx, item.ID, map[string]any{"title": "After"}, &ContentAssociations{
		Genres:    &genres,
		Countries: &countries,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := f.repo.FindContentItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Title != "After" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Genres) != 1 || got.Genres[0].ID != f.romance.ID {
		t.Errorf("genres = %+v", got.Genres)
	}

	if err = f.repo.UpdateContentItem(ctx, 999, map[string]any{"title": "x"}, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteContentItem_Cascades(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	item := f.addItem(t, "Doomed", false, true, nil, []model.Category{f.drama})
	if err := NewEpisodeRepo(f.db).CreateEpisode(ctx, &model.Episode{ContentID: item.ID, Number: 1, Video: "video/1.mp4"}); err != nil {
		t.Fatalf("episode: %v", err)
	}
	if _, err := NewFavoriteRepo(f.db).AddFavorite(ctx, 1, item.ID); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if err := NewRatingRepo(f.db).CreateRating(ctx, &model.Rating{UserID: 1, ContentID: item.ID, Score: 5}); err != nil {
		t.Fatalf("rating: %v", err)
	}

	if err := f.repo.DeleteContentItem(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	exists, err := f.repo.ExistsContentItem(ctx, item.ID)
	if err != nil || exists {
		t.Fatalf("exists after delete = %v, %v", exists, err)
	}
	for _, m := range []any{&model.Episode{}, &model.Favorite{}, &model.Rating{}} {
		var count int64
		f.db.Model(m).Where("content_id = ?", item.ID).Count(&count)
		if count != 0 {
			t.Errorf("%T rows left: %d", m, count)
		}
	}

	if err = f.repo.DeleteContentItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}
