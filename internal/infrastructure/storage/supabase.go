package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/vitrina-api/internal/application/upload"
	"github.com/jhoicas/vitrina-api/pkg/config"
)

var _ upload.ObjectStorage = (*SupabaseStorage)(nil)

// SupabaseStorage implementa upload.ObjectStorage contra la API REST de
// Supabase Storage. Usa net/http de la stdlib; no requiere SDK.
type SupabaseStorage struct {
	baseURL    string // https://<project>.supabase.co
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// NewSupabaseStorage construye el cliente de storage con un timeout de 30 s
// (las subidas de imágenes pueden tardar según el tamaño del archivo).
func NewSupabaseStorage(cfg config.StorageConfig) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:    cfg.URL,
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sube un objeto a POST /storage/v1/object/{bucket}/{path}.
// cacheControl va en el header Cache-Control (max-age) y upsert en x-upsert.
func (s *SupabaseStorage) Upload(path string, data []byte, opts upload.UploadOptions) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, escapePath(path))
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	}
	req.Header.Set("Cache-Control", "max-age="+strconv.Itoa(opts.CacheControl))
	req.Header.Set("x-upsert", strconv.FormatBool(opts.Upsert))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("upload %s: %s", path, storageErrorMessage(resp))
	}
	return nil
}

// PublicURL devuelve la URL pública del objeto (bucket público).
func (s *SupabaseStorage) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, escapePath(path))
}

// storageErrorMessage extrae el mensaje de error del cuerpo JSON de Supabase
// ({"message": "..."}), o cae al status si el cuerpo no se puede parsear.
func storageErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return resp.Status
	}
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return resp.Status
}

// escapePath escapa cada segmento del path conservando los separadores.
func escapePath(p string) string {
	u := url.URL{Path: p}
	return u.EscapedPath()
}
