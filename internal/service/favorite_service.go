package service

import (
	"context"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/repository"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID uint64, req *dto.FavoriteCreateDTO) (*dto.FavoriteDTO, error)
	RemoveFavorite(ctx context.Context, userID, contentID uint64) (bool, error)
	ListFavorites(ctx context.Context, userID uint64) ([]dto.FavoriteDTO, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo repository.FavoriteRepo
	contentRepo  repository.ContentRepo
	media        MediaResolver
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepo, contentRepo repository.ContentRepo, media MediaResolver) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		contentRepo:  contentRepo,
		media:        media,
	}
}

// AddFavorite 重复收藏不报错，返回已有记录
func (s *FavoriteServiceImpl) AddFavorite(ctx context.Context, userID uint64, req *dto.FavoriteCreateDTO) (*dto.FavoriteDTO, error) {
	exists, err := s.contentRepo.ExistsContentItem(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContentNotFound
	}

	fav, err := s.favoriteRepo.AddFavorite(ctx, userID, req.MovieID)
	if err != nil {
		return nil, err
	}
	res := s.toFavorite(ctx, fav)
	return &res, nil
}

// RemoveFavorite 返回 false 表示收藏本就不存在
func (s *FavoriteServiceImpl) RemoveFavorite(ctx context.Context, userID, contentID uint64) (bool, error) {
	return s.favoriteRepo.RemoveFavorite(ctx, userID, contentID)
}

func (s *FavoriteServiceImpl) ListFavorites(ctx context.Context, userID uint64) ([]dto.FavoriteDTO, error) {
	favorites, err := s.favoriteRepo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := make([]dto.FavoriteDTO, 0, len(favorites))
	for _, f := range favorites {
		res = append(res, s.toFavorite(ctx, f))
	}
	return res, nil
}

func (s *FavoriteServiceImpl) toFavorite(ctx context.Context, f *model.Favorite) dto.FavoriteDTO {
	return dto.FavoriteDTO{
		ID:        f.ID,
		MovieID:   f.ContentID,
		Movie:     toSummary(ctx, s.media, &f.Content),
		CreatedAt: f.CreatedAt,
	}
}
