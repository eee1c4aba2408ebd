package service

import (
	"bytes"
	"context"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/api/dto"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/consts"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/util"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var imageKinds = map[string]struct{}{
	consts.MediaKindPoster:   {},
	consts.MediaKindBanner:   {},
	consts.MediaKindCrew:     {},
	consts.MediaKindTaxonomy: {},
	consts.MediaKindAvatar:   {},
}

var imageFormats = map[imaging.Format]struct {
	ext  string
	mime string
}{
	imaging.JPEG: {".jpg", "image/jpeg"},
	imaging.PNG:  {".png", "image/png"},
	imaging.GIF:  {".gif", "image/gif"},
	imaging.BMP:  {".bmp", "image/bmp"},
	imaging.TIFF: {".tiff", "image/tiff"},
}

type MediaService interface {
	Upload(ctx context.Context, kind, filename string, src io.ReadSeeker, size int64) (*dto.MediaUploadDTO, error)
}

type MediaServiceImpl struct {
	store    MediaStore
	tracker  MediaTracker
	maxWidth int
}

// NewMediaService tracker 可为 nil，此时不登记上传记录
func NewMediaService(store MediaStore, tracker MediaTracker, maxWidth int) MediaService {
	return &MediaServiceImpl{store: store, tracker: tracker, maxWidth: maxWidth}
}

// Upload 图片按最大宽度等比缩放后重新编码，视频原样上传
func (s *MediaServiceImpl) Upload(ctx context.Context, kind, filename string, src io.ReadSeeker, size int64) (*dto.MediaUploadDTO, error) {
	_, isImageKind := imageKinds[kind]
	if !isImageKind && kind != consts.MediaKindVideo {
		return nil, ErrParamInvalid
	}

	contentType, err := util.GetSafeContentType(src)
	if err != nil {
		return nil, ErrFileNotSupported
	}

	var (
		reader io.Reader = src
		ext              = strings.ToLower(path.Ext(filename))
	)
	if isImageKind {
		if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
			return nil, ErrFileNotSupported
		}
		var buf *bytes.Buffer
		buf, ext, contentType, err = s.processImage(src, filename)
		if err != nil {
			return nil, err
		}
		reader, size = buf, int64(buf.Len())
	} else if !strings.HasPrefix(contentType, consts.MimePrefixVideo) {
		return nil, ErrFileNotSupported
	}

	objectName := kind + "/" + uuid.NewString() + ext
	key, err := s.store.UploadFile(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	if s.tracker != nil {
		meta := dto.MediaTempMetadata{ContentType: contentType, CreatedAt: time.Now().Unix()}
		if err = s.tracker.Track(ctx, key, meta); err != nil {
			log.WarnContext(ctx, "failed to track uploaded media", "object", key, "err", err)
		}
	}

	log.InfoContext(ctx, "media uploaded", "object", key, "type", contentType, "size", size)
	return &dto.MediaUploadDTO{
		Object:      key,
		URL:         s.store.PublicURL(ctx, key),
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *MediaServiceImpl) processImage(src io.Reader, filename string) (*bytes.Buffer, string, string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", "", ErrFileNotSupported
	}
	if s.maxWidth > 0 && img.Bounds().Dx() > s.maxWidth {
		img = imaging.Resize(img, s.maxWidth, 0, imaging.Lanczos)
	}

	format, err := imaging.FormatFromFilename(filename)
	if _, ok := imageFormats[format]; err != nil || !ok {
		format = imaging.JPEG
	}

	buf := &bytes.Buffer{}
	if err = imaging.Encode(buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, "", "", err
	}
	f := imageFormats[format]
	return buf, f.ext, f.mime, nil
}
