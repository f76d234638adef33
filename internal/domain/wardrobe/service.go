package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	apperrors "github.com/yanqian/outfitter/pkg/errors"
)

const defaultMaxUploadBytes = 10 << 20

// Service exposes inventory reads and tag mutations.
type Service interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int) (Item, error)
	Upload(ctx context.Context, req UploadRequest) (Item, error)
	Save(ctx context.Context, id int) (Item, error)
	Unsave(ctx context.Context, id int) (Item, error)
	Wear(ctx context.Context, id int) (Item, error)
	Unwear(ctx context.Context, id int) (Item, error)
	WearOutfit(ctx context.Context, ids []int) ([]Item, error)
	OpenImage(ctx context.Context, key string) (io.ReadCloser, error)
}

type service struct {
	cfg     Config
	repo    Repository
	storage ObjectStorage
	logger  *slog.Logger
	newKey  func(ext string) string
}

// NewService wires up the wardrobe domain.
func NewService(cfg Config, repo Repository, storage ObjectStorage, logger *slog.Logger) Service {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	return &service{
		cfg:     cfg,
		repo:    repo,
		storage: storage,
		logger:  logger.With("component", "wardrobe.service"),
		newKey: func(ext string) string {
			return "items/" + uuid.NewString() + ext
		},
	}
}

func (s *service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInventoryUnavailable, "failed to read inventory", err)
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id int) (Item, error) {
	item, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return Item{}, apperrors.Wrap(apperrors.CodeInventoryUnavailable, "failed to read inventory", err)
	}
	if !ok {
		return Item{}, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("item %d not found", id), nil)
	}
	return item, nil
}

func (s *service) Upload(ctx context.Context, req UploadRequest) (Item, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return Item{}, apperrors.Wrap(apperrors.CodeInvalidInput, "label cannot be empty", nil)
	}
	if len(req.Content) == 0 {
		return Item{}, apperrors.Wrap(apperrors.CodeInvalidInput, "image cannot be empty", nil)
	}
	if int64(len(req.Content)) > s.cfg.MaxUploadBytes {
		return Item{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("image exceeds %d bytes", s.cfg.MaxUploadBytes), nil)
	}
	mime := mimetype.Detect(req.Content)
	if !strings.HasPrefix(mime.String(), "image/") {
		return Item{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unsupported image type %q", mime.String()), nil)
	}

	key := s.newKey(mime.Extension())
	stored, err := s.storage.Put(ctx, key, req.Content, mime.String())
	if err != nil {
		return Item{}, apperrors.Wrap(apperrors.CodeStorageError, "failed to store image", err)
	}

	item, err := s.repo.Create(ctx, Item{
		Label: label,
		Tags:  NormalizeTags(req.Tags),
		Src:   s.publicURL(stored.Key),
		Image: stored.Key,
		Alt:   strings.TrimSpace(req.Alt),
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, stored.Key); delErr != nil {
			s.logger.Warn("orphaned image cleanup failed", "key", stored.Key, "error", delErr)
		}
		return Item{}, apperrors.Wrap(apperrors.CodeInventoryUnavailable, "failed to record item", err)
	}
	s.logger.Info("item uploaded", "id", item.ID, "label", item.Label, "key", stored.Key, "size", stored.Size)
	return item, nil
}

func (s *service) Save(ctx context.Context, id int) (Item, error) {
	return s.mutate(ctx, id, func(it *Item) { it.AddTag(TagSaved) })
}

func (s *service) Unsave(ctx context.Context, id int) (Item, error) {
	return s.mutate(ctx, id, func(it *Item) { it.RemoveTag(TagSaved) })
}

func (s *service) Wear(ctx context.Context, id int) (Item, error) {
	return s.mutate(ctx, id, func(it *Item) { it.AddTag(TagRecentlyWorn) })
}

func (s *service) Unwear(ctx context.Context, id int) (Item, error) {
	return s.mutate(ctx, id, func(it *Item) { it.RemoveTag(TagRecentlyWorn) })
}

// WearOutfit marks every item of an accepted suggestion as recently worn.
func (s *service) WearOutfit(ctx context.Context, ids []int) ([]Item, error) {
	if len(ids) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "ids cannot be empty", nil)
	}
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		item, err := s.Wear(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *service) OpenImage(ctx context.Context, key string) (io.ReadCloser, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "image key cannot be empty", nil)
	}
	rc, err := s.storage.Get(ctx, key)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "image not found", err)
	case err != nil:
		return nil, apperrors.Wrap(apperrors.CodeStorageError, "failed to read image", err)
	}
	return rc, nil
}

func (s *service) mutate(ctx context.Context, id int, fn func(*Item)) (Item, error) {
	item, ok, err := s.repo.Update(ctx, id, fn)
	if err != nil {
		return Item{}, apperrors.Wrap(apperrors.CodeInventoryUnavailable, "failed to update inventory", err)
	}
	if !ok {
		return Item{}, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("item %d not found", id), nil)
	}
	return item, nil
}

func (s *service) publicURL(key string) string {
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	if base == "" {
		return "/" + key
	}
	return base + "/" + key
}
