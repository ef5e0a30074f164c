package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starcode/library-api/internal/api/metrics"
	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
)

const fileBasePath = "/api/v1/file"

// FileHandler handles upload and download of files.
type FileHandler struct {
	storage ports.FileStorage
}

func NewFileHandler(storage ports.FileStorage) *FileHandler {
	return &FileHandler{storage: storage}
}

type uploadFileResponse struct {
	FileName    string `json:"fileName" xml:"fileName" yaml:"fileName"`
	DownloadURI string `json:"downloadUri" xml:"downloadUri" yaml:"downloadUri"`
	ContentType string `json:"contentType" xml:"contentType" yaml:"contentType"`
	Size        int64  `json:"size" xml:"size" yaml:"size"`
}

// Upload handles POST /api/v1/file/upload with a multipart "file" part.
//
// @Summary      Upload a file
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File to store"
// @Success      200   {object}  uploadFileResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/file/upload [post]
func (h *FileHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file part")
	}

	resp, err := h.store(fh)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// UploadMultiple handles POST /api/v1/file/upload-multiple with a
// multipart "files" part repeated per file.
//
// @Summary      Upload several files
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files  formData  file  true  "Files to store"
// @Success      200    {array}   uploadFileResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/file/upload-multiple [post]
func (h *FileHandler) UploadMultiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	parts := form.File["files"]
	if len(parts) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "missing files part")
	}

	out := make([]uploadFileResponse, 0, len(parts))
	for _, fh := range parts {
		resp, err := h.store(fh)
		if err != nil {
			return err
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, out)
}

// Download handles GET /api/v1/file/download/:name, streaming the file
// as an attachment.
//
// @Summary      Download a file
// @Tags         files
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        name  path  string  true  "Stored file name"
// @Success      200   {file}    file
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/file/download/{name} [get]
func (h *FileHandler) Download(c echo.Context) error {
	file, err := h.storage.Load(c.Param("name"))
	if err != nil {
		return err
	}
	defer file.Reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, file.Name))
	return c.Stream(http.StatusOK, file.ContentType, file.Reader)
}

func (h *FileHandler) store(fh *multipart.FileHeader) (uploadFileResponse, error) {
	src, err := fh.Open()
	if err != nil {
		return uploadFileResponse{}, fmt.Errorf("%w: %v", domain.ErrFileStorage, err)
	}
	defer src.Close()

	contentType := fh.Header.Get(echo.HeaderContentType)
	size, err := h.storage.Store(fh.Filename, contentType, src)
	if err != nil {
		return uploadFileResponse{}, err
	}

	metrics.FilesUploadedTotal.Inc()
	return uploadFileResponse{
		FileName:    fh.Filename,
		DownloadURI: fileBasePath + "/download/" + fh.Filename,
		ContentType: contentType,
		Size:        size,
	}, nil
}
