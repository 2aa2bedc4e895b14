package upload

// UploadOptions opciones que se pasan al storage por cada objeto.
type UploadOptions struct {
	ContentType  string
	CacheControl int // segundos para Cache-Control: max-age
	Upsert       bool
}

// ObjectStorage puerto hacia el almacenamiento de objetos. El adaptador concreto
// vive en internal/infrastructure/storage.
type ObjectStorage interface {
	Upload(path string, data []byte, opts UploadOptions) error
	PublicURL(path string) string
}

// PreviewAllocator reserva y libera handles de previsualización local para un
// archivo aún no subido. Cada handle reservado debe liberarse exactamente una vez.
type PreviewAllocator interface {
	Allocate(name string) string
	Revoke(handle string)
}

// noopPreviews se usa cuando el llamador no necesita previsualizaciones.
type noopPreviews struct{}

func (noopPreviews) Allocate(string) string { return "" }
func (noopPreviews) Revoke(string)          {}
