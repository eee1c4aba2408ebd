package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/util"
)

func TestGetDetail_OnlyMatchingPartitionExposed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	drama := env.mustTaxonomy(t, TaxonomyCategory, "Drama")
	comedy := env.mustTaxonomy(t, TaxonomyCategory, "Comedy")

	tests := []struct {
		name      string
		req       *dto.ContentCreateDTO
		wantMovie []uint64
		wantShow  []uint64
		watchURL  string
	}{
		{"film", film("Heat"), []uint64{drama}, []uint64{}, "/content/1/watch/"},
		{"series", series("Lost"), []uint64{}, []uint64{comedy}, "/content/2/series/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.MovieCategoryIDs = []uint64{drama}
			tt.req.SeriesCategoryIDs = []uint64{comedy}
			created := env.mustContent(t, tt.req)

			res, err := env.catalog.GetDetail(ctx, created.ID)
			if err != nil {
				t.Fatalf("detail: %v", err)
			}
			if got := ids(res.Item.MovieCategories, taxonomyID); !equalIDs(got, tt.wantMovie) {
				t.Errorf("movie_categories = %v, want %v", got, tt.wantMovie)
			}
			if got := ids(res.Item.SeriesCategories, taxonomyID); !equalIDs(got, tt.wantShow) {
				t.Errorf("series_categories = %v, want %v", got, tt.wantShow)
			}
			if res.Item.WatchURL != tt.watchURL {
				t.Errorf("watch_url = %q, want %q", res.Item.WatchURL, tt.watchURL)
			}
		})
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.GetDetail(context.Background(), 42)
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestGetDetail_ResolvesMediaAndAverage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.mustContent(t, film("Alien"))

	if item.Poster != cdn+"poster/Alien.jpg" {
		t.Errorf("poster = %q", item.Poster)
	}
	if item.ReleaseDate != "2021-03-04" {
		t.Errorf("release_date = %q", item.ReleaseDate)
	}
	if item.AverageRating != 0 {
		t.Errorf("average_rating = %v, want 0", item.AverageRating)
	}

	for user, score := range []int{6, 8, 10} {
		if _, err := env.rating.AddRating(ctx, uint64(user+1), &dto.RatingCreateDTO{MovieID: item.ID, Score: score}); err != nil {
			t.Fatalf("rate: %v", err)
		}
	}
	res, err := env.catalog.GetDetail(ctx, item.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if res.Item.AverageRating != 8 {
		t.Errorf("average_rating = %v, want 8", res.Item.AverageRating)
	}
}

func TestGetDetail_Recommendations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	drama := env.mustTaxonomy(t, TaxonomyCategory, "Drama")
	horror := env.mustTaxonomy(t, TaxonomyCategory, "Horror")

	target := film("Target")
	target.MovieCategoryIDs = []uint64{drama}
	target.SeriesCategoryIDs = []uint64{horror}
	a := env.mustContent(t, target)

	related := film("Related")
	related.MovieCategoryIDs = []uint64{drama}
	b := env.mustContent(t, related)

	// 目标的 series 分区不对外展示，但仍参与推荐
	hidden := series("Hidden Link")
	hidden.SeriesCategoryIDs = []uint64{horror}
	c := env.mustContent(t, hidden)

	res, err := env.catalog.GetDetail(ctx, a.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got := ids(res.Recommendations, summaryID); !equalIDs(got, []uint64{c.ID, b.ID}) {
		t.Errorf("recommendations = %v, want [%d %d]", got, c.ID, b.ID)
	}
	if len(res.Item.SeriesCategories) != 0 {
		t.Errorf("series categories exposed on a film: %v", res.Item.SeriesCategories)
	}
}

func TestGetDetail_RecommendationsUncapped(t *testing.T) {
	env := newTestEnv(t)
	drama := env.mustTaxonomy(t, TaxonomyCategory, "Drama")

	target := film("Target")
	target.MovieCategoryIDs = []uint64{drama}
	a := env.mustContent(t, target)
	for i := range 25 {
		related := film(fmt.Sprintf("Related %02d", i))
		related.MovieCategoryIDs = []uint64{drama}
		env.mustContent(t, related)
	}

	res, err := env.catalog.GetDetail(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(res.Recommendations) != 25 {
		t.Errorf("recommendations = %d, want 25", len(res.Recommendations))
	}
}

func TestCreateContent_GenreRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	g1 := env.mustTaxonomy(t, TaxonomyGenre, "Action")
	g2 := env.mustTaxonomy(t, TaxonomyGenre, "Drama")

	req := film("Duo")
	req.GenreIDs = []uint64{g1, g2, g1}
	item := env.mustContent(t, req)

	if got := ids(item.Genres, taxonomyID); !equalIDs(got, []uint64{g1, g2}) {
		t.Errorf("genres = %v, want [%d %d]", got, g1, g2)
	}
	if !item.IsActive {
		t.Error("content should be active by default")
	}
}

func TestCreateContent_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.ContentCreateDTO
		want error
	}{
		{"missing discriminator", &dto.ContentCreateDTO{Title: "x", ReleaseDate: "2020-01-01"}, ErrParamInvalid},
		{"bad date", &dto.ContentCreateDTO{Title: "x", ReleaseDate: "01/01/2020", IsFilm: util.Ptr(true)}, ErrParamInvalid},
		{"unknown genre", &dto.ContentCreateDTO{Title: "x", ReleaseDate: "2020-01-01", IsFilm: util.Ptr(true), GenreIDs: []uint64{77}}, ErrTaxonomyNotFound},
		{"unknown crew", &dto.ContentCreateDTO{Title: "x", ReleaseDate: "2020-01-01", IsFilm: util.Ptr(true), CrewIDs: []uint64{5}}, ErrCrewNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := env.catalog.CreateContent(ctx, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateContent_Partial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	g1 := env.mustTaxonomy(t, TaxonomyGenre, "Action")
	g2 := env.mustTaxonomy(t, TaxonomyGenre, "Drama")

	req := film("Old")
	req.GenreIDs = []uint64{g1}
	item := env.mustContent(t, req)

	res, err := env.catalog.UpdateContent(ctx, item.ID, &dto.ContentUpdateDTO{
		Title:    util.Ptr("New"),
		GenreIDs: &[]uint64{g2},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Item.Title != "New" || res.Item.Description != "Old" {
		t.Errorf("item = %+v", res.Item)
	}
	if got := ids(res.Item.Genres, taxonomyID); !equalIDs(got, []uint64{g2}) {
		t.Errorf("genres = %v", got)
	}

	if _, err = env.catalog.UpdateContent(ctx, 999, &dto.ContentUpdateDTO{Title: util.Ptr("x")}); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("update missing: got %v", err)
	}
}

func TestDeleteContent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := env.mustContent(t, film("Gone"))

	if err := env.catalog.DeleteContent(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := env.catalog.DeleteContent(ctx, item.ID); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("second delete: got %v", err)
	}
}

func TestListByCategory_ForcesDiscriminator(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	drama := env.mustTaxonomy(t, TaxonomyCategory, "Drama")

	f := film("Film")
	f.MovieCategoryIDs = []uint64{drama}
	filmItem := env.mustContent(t, f)

	misfiled := series("Misfiled")
	misfiled.MovieCategoryIDs = []uint64{drama}
	env.mustContent(t, misfiled)

	// 显式传入 is_film=false 也不能改变影片分区的判别值
	page, err := env.catalog.ListByCategory(ctx, model.CategoryKindFilm, drama, &dto.ContentQuery{IsFilm: util.Ptr(false)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := ids(page.Items, summaryID); !equalIDs(got, []uint64{filmItem.ID}) {
		t.Errorf("items = %v, want [%d]", got, filmItem.ID)
	}

	page, err = env.catalog.ListByCategory(ctx, model.CategoryKindSeries, drama, nil)
	if err != nil {
		t.Fatalf("list series: %v", err)
	}
	if page.Total != 0 || len(page.Items) != 0 {
		t.Errorf("series page = %+v", page)
	}
}

func TestListByGenre_Paging(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	genre := env.mustTaxonomy(t, TaxonomyGenre, "Action")

	var created []uint64
	for _, title := range []string{"A", "B", "C"} {
		req := film(title)
		req.GenreIDs = []uint64{genre}
		created = append(created, env.mustContent(t, req).ID)
	}
	hidden := film("Inactive")
	hidden.GenreIDs = []uint64{genre}
	hidden.IsActive = util.Ptr(false)
	env.mustContent(t, hidden)

	page, err := env.catalog.ListByGenre(ctx, genre, &dto.ContentQuery{Order: "title", Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 3 || !page.HasMore || page.PageSize != 2 {
		t.Errorf("page meta = %+v", page)
	}
	if got := ids(page.Items, summaryID); !equalIDs(got, created[:2]) {
		t.Errorf("items = %v, want %v", got, created[:2])
	}

	page, err = env.catalog.ListByGenre(ctx, genre, &dto.ContentQuery{Order: "title", Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if page.HasMore || len(page.Items) != 1 {
		t.Errorf("page 2 = %+v", page)
	}

	page, err = env.catalog.ListByGenre(ctx, genre, &dto.ContentQuery{Page: math.MaxInt, PageSize: 2})
	if err != nil {
		t.Fatalf("list huge page: %v", err)
	}
	if page.Page != util.MaxPage || page.HasMore || len(page.Items) != 0 || page.Total != 3 {
		t.Errorf("huge page = %+v", page)
	}
}

func TestGetIndexFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustContent(t, film("The Matrix"))
	env.mustContent(t, film("Heat"))
	env.mustContent(t, series("Matrix Reloaded Show"))
	if _, err := env.taxonomy.CreateBanner(ctx, &dto.BannerCreateDTO{Title: "Promo", Image: "banner/p.jpg"}); err != nil {
		t.Fatalf("banner: %v", err)
	}

	feed, err := env.catalog.GetIndexFeed(ctx, "")
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed.Movies) != 2 || len(feed.Series) != 1 || len(feed.Banners) != 1 {
		t.Fatalf("feed sizes movies=%d series=%d banners=%d", len(feed.Movies), len(feed.Series), len(feed.Banners))
	}
	if feed.Movies[0].Title != "Heat" {
		t.Errorf("movies not newest first: %+v", feed.Movies)
	}
	if feed.Banners[0].Image != cdn+"banner/p.jpg" {
		t.Errorf("banner image = %q", feed.Banners[0].Image)
	}

	feed, err = env.catalog.GetIndexFeed(ctx, "MATRIX")
	if err != nil {
		t.Fatalf("search feed: %v", err)
	}
	if len(feed.Movies) != 1 || feed.Movies[0].Title != "The Matrix" || len(feed.Series) != 1 {
		t.Errorf("search feed = %+v", feed)
	}
}

func TestEpisodes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	show := env.mustContent(t, series("Show"))
	movie := env.mustContent(t, film("Movie"))

	if _, err := env.catalog.AddEpisode(ctx, movie.ID, &dto.EpisodeCreateDTO{Number: 1, Video: "video/1.mp4"}); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("episode on film: got %v", err)
	}
	if _, err := env.catalog.AddEpisode(ctx, 999, &dto.EpisodeCreateDTO{Number: 1, Video: "video/1.mp4"}); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("episode on missing content: got %v", err)
	}

	episode, err := env.catalog.AddEpisode(ctx, show.ID, &dto.EpisodeCreateDTO{Number: 1, Title: "Pilot", Video: "video/1.mp4"})
	if err != nil {
		t.Fatalf("add episode: %v", err)
	}
	if episode.Video != cdn+"video/1.mp4" {
		t.Errorf("episode video = %q", episode.Video)
	}
	if _, err = env.catalog.AddEpisode(ctx, show.ID, &dto.EpisodeCreateDTO{Number: 1, Video: "video/2.mp4"}); !errors.Is(err, ErrEpisodeExist) {
		t.Errorf("duplicate episode: got %v", err)
	}

	episodes, err := env.catalog.ListEpisodes(ctx, show.ID)
	if err != nil {
		t.Fatalf("list episodes: %v", err)
	}
	if len(episodes) != 1 || episodes[0].Title != "Pilot" {
		t.Errorf("episodes = %+v", episodes)
	}
	if _, err = env.catalog.ListEpisodes(ctx, 999); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("list missing: got %v", err)
	}
}
