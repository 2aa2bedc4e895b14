package http

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/upload"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// UploadHandler sube imágenes de producto al bucket y devuelve sus URLs
// públicas (protegido). Cada petición crea su propio coordinador; el estado de
// la tanda no sobrevive a la petición.
type UploadHandler struct {
	storage upload.ObjectStorage
	opts    upload.Options
	log     *logger.Logger
}

// NewUploadHandler construye el handler.
func NewUploadHandler(storage upload.ObjectStorage, opts upload.Options, log *logger.Logger) *UploadHandler {
	return &UploadHandler{storage: storage, opts: opts, log: log}
}

// Upload godoc
// @Summary      Subir imágenes de producto
// @Description  Acepta hasta el máximo configurado de archivos bajo la clave
// @Description  "files". Los fallos se reportan por archivo; una tanda con
// @Description  fallos parciales devuelve is_success=false con los éxitos incluidos.
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Imágenes (repetible)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se enviaron archivos"})
	}

	refs := make([]*upload.FileRef, 0, len(headers))
	for _, fh := range headers {
		data, err := readHeader(fh)
		if err != nil {
			h.log.Error().Err(err).Str("file", fh.Filename).Msg("lectura de archivo multipart falló")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo " + fh.Filename})
		}
		refs = append(refs, &upload.FileRef{
			OriginalName: fh.Filename,
			ContentType:  fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			Data:         data,
		})
	}

	coord := upload.NewCoordinator(h.storage, nil, h.opts)
	defer coord.Close()
	coord.Add(refs)
	coord.Upload(c.Context())

	out := dto.UploadResponse{
		URLs:      coord.PublicURLs(),
		Paths:     coord.Successes(),
		IsSuccess: coord.IsSuccess(),
	}
	// Errores locales (tipo/tamaño) y de subida, siempre por nombre original.
	for _, ref := range refs {
		for _, msg := range ref.Errors {
			out.Errors = append(out.Errors, dto.UploadError{Name: ref.OriginalName, Message: msg})
		}
	}
	for _, e := range coord.Errors() {
		out.Errors = append(out.Errors, dto.UploadError{Name: e.Name, Message: e.Message})
	}
	return c.JSON(out)
}

func readHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
