package upload

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// FileRef referencia transitoria a un archivo seleccionado: nombre original,
// preview local revocable y errores de validación. Solo se promueve a una URL
// persistida tras una subida exitosa.
type FileRef struct {
	OriginalName string
	ContentType  string
	Size         int64
	Data         []byte

	Preview      string
	Errors       []string
	UploadedPath string

	revoked bool
}

// UploadError error de subida asociado al nombre original del archivo, nunca al
// nombre interno generado para el storage.
type UploadError struct {
	Name    string
	Message string
}

// Options configuración del coordinador de subidas.
type Options struct {
	Folder       string   // prefijo opcional dentro del bucket
	AllowedMIMEs []string // exactos o con comodín ("image/*"); vacío = todos
	MaxFileSize  int64    // bytes; 0 = sin límite
	MaxFiles     int      // 0 = sin límite
	CacheControl int
	Upsert       bool
}

// Coordinator administra un conjunto acotado de archivos pendientes, los valida
// localmente, los sube en paralelo y acumula resultados por archivo.
type Coordinator struct {
	storage  ObjectStorage
	previews PreviewAllocator
	opts     Options

	mu        sync.Mutex
	files     []*FileRef
	successes []string
	errors    []UploadError
}

// NewCoordinator construye un coordinador. previews puede ser nil si el llamador
// no necesita previsualizaciones locales.
func NewCoordinator(storage ObjectStorage, previews PreviewAllocator, opts Options) *Coordinator {
	if previews == nil {
		previews = noopPreviews{}
	}
	return &Coordinator{storage: storage, previews: previews, opts: opts}
}

// Add valida e incorpora archivos a la selección. Si la selección supera
// MaxFiles se descartan los más nuevos, nunca los ya presentes. Devuelve cuántos
// archivos quedaron efectivamente agregados.
func (c *Coordinator) Add(files []*FileRef) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0
	for _, f := range files {
		if c.opts.MaxFiles > 0 && len(c.files) >= c.opts.MaxFiles {
			break
		}
		c.validate(f)
		f.Preview = c.previews.Allocate(f.OriginalName)
		c.files = append(c.files, f)
		added++
	}
	return added
}

// Replace descarta la selección anterior (revocando cada preview exactamente una
// vez) y agrega la nueva.
func (c *Coordinator) Replace(files []*FileRef) int {
	c.mu.Lock()
	c.revokeAllLocked()
	c.files = nil
	c.successes = nil
	c.errors = nil
	c.mu.Unlock()
	return c.Add(files)
}

// Upload sube en paralelo todos los archivos sin errores locales. Los fallos se
// acumulan individualmente; el fallo de un archivo no aborta el resto.
func (c *Coordinator) Upload(ctx context.Context) {
	c.mu.Lock()
	pending := make([]*FileRef, 0, len(c.files))
	for _, f := range c.files {
		if len(f.Errors) == 0 && f.UploadedPath == "" {
			pending = append(pending, f)
		}
	}
	c.mu.Unlock()

	g, _ := errgroup.WithContext(ctx)
	for _, f := range pending {
		f := f
		g.Go(func() error {
			objectPath := c.objectPath(f.OriginalName)
			err := c.storage.Upload(objectPath, f.Data, UploadOptions{
				ContentType:  f.ContentType,
				CacheControl: c.opts.CacheControl,
				Upsert:       c.opts.Upsert,
			})

			c.mu.Lock()
			defer c.mu.Unlock()
			if err != nil {
				c.errors = append(c.errors, UploadError{Name: f.OriginalName, Message: err.Error()})
				return nil
			}
			f.UploadedPath = objectPath
			c.successes = append(c.successes, objectPath)
			return nil
		})
	}
	_ = g.Wait()
}

// Successes paths subidos con éxito.
func (c *Coordinator) Successes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.successes...)
}

// Errors fallos de subida, identificados por el nombre original del archivo.
func (c *Coordinator) Errors() []UploadError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]UploadError(nil), c.errors...)
}

// PublicURLs URLs públicas de los paths subidos, en orden de éxito.
func (c *Coordinator) PublicURLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	urls := make([]string, 0, len(c.successes))
	for _, p := range c.successes {
		urls = append(urls, c.storage.PublicURL(p))
	}
	return urls
}

// IsSuccess la ronda fue exitosa: ninguna referencia con errores locales, sin
// errores de subida, y tantos éxitos como archivos válidos había.
func (c *Coordinator) IsSuccess() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	valid := 0
	for _, f := range c.files {
		if len(f.Errors) > 0 {
			return false
		}
		valid++
	}
	return len(c.errors) == 0 && valid > 0 && len(c.successes) == valid
}

// Close libera todos los previews pendientes. Es idempotente: cada handle se
// revoca exactamente una vez aunque Close se llame varias veces.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revokeAllLocked()
}

func (c *Coordinator) revokeAllLocked() {
	for _, f := range c.files {
		if f.Preview != "" && !f.revoked {
			c.previews.Revoke(f.Preview)
			f.revoked = true
		}
	}
}

func (c *Coordinator) validate(f *FileRef) {
	if c.opts.MaxFileSize > 0 && f.Size > c.opts.MaxFileSize {
		f.Errors = append(f.Errors, fmt.Sprintf("El archivo supera el tamaño máximo de %d bytes", c.opts.MaxFileSize))
	}
	if len(c.opts.AllowedMIMEs) > 0 && !mimeAllowed(f.ContentType, c.opts.AllowedMIMEs) {
		f.Errors = append(f.Errors, fmt.Sprintf("Tipo de archivo no permitido: %s", f.ContentType))
	}
}

// objectPath genera un path resistente a colisiones: prefijo temporal en
// milisegundos más el nombre original saneado.
func (c *Coordinator) objectPath(name string) string {
	p := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(name))
	if c.opts.Folder != "" {
		p = path.Join(c.opts.Folder, p)
	}
	return p
}

// mimeAllowed soporta entradas exactas ("image/png") y con comodín ("image/*").
func mimeAllowed(contentType string, allowed []string) bool {
	for _, a := range allowed {
		if a == contentType {
			return true
		}
		if prefix, ok := strings.CutSuffix(a, "/*"); ok && strings.HasPrefix(contentType, prefix+"/") {
			return true
		}
	}
	return false
}

// sanitizeName conserva letras, dígitos, punto, guión y guión bajo; el resto se
// reemplaza por guión bajo para producir un path de storage seguro.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "archivo"
	}
	return b.String()
}
