package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
	apperrors "github.com/yanqian/outfitter/pkg/errors"
)

// ListItems returns the whole inventory.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.wardrobeSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetItem returns a single item.
func (h *Handler) GetItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	item, err := h.wardrobeSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UploadItem accepts a multipart photo with label, tags and alt form fields.
func (h *Handler) UploadItem(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, errUploadTooLarge(err))
			return
		}
		abortWithError(c, badRequest("file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, badRequest("failed to read upload", err))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, fileHeader.Size))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "upload_failed", "failed to read file", err))
		return
	}

	item, err := h.wardrobeSvc.Upload(c.Request.Context(), wardrobe.UploadRequest{
		Label:    c.PostForm("label"),
		Tags:     formTags(c.PostFormArray("tags")),
		Alt:      c.PostForm("alt"),
		Filename: fileHeader.Filename,
		Content:  data,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) SaveItem(c *gin.Context)   { h.toggle(c, h.wardrobeSvc.Save) }
func (h *Handler) UnsaveItem(c *gin.Context) { h.toggle(c, h.wardrobeSvc.Unsave) }
func (h *Handler) WearItem(c *gin.Context)   { h.toggle(c, h.wardrobeSvc.Wear) }
func (h *Handler) UnwearItem(c *gin.Context) { h.toggle(c, h.wardrobeSvc.Unwear) }

func (h *Handler) toggle(c *gin.Context, op func(ctx context.Context, id int) (wardrobe.Item, error)) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	item, err := op(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ServeImage streams a stored garment photo.
func (h *Handler) ServeImage(c *gin.Context) {
	rc, err := h.wardrobeSvc.OpenImage(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadGateway, apperrors.CodeStorageError, "failed to read image", err))
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortWithError(c, badRequest("invalid item id", err))
		return 0, false
	}
	return id, true
}

// formTags accepts both repeated tags fields and comma separated values.
func formTags(raw []string) []string {
	var out []string
	for _, value := range raw {
		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				out = append(out, tag)
			}
		}
	}
	return out
}
