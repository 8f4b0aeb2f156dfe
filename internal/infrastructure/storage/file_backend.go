package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend guarda todas las colecciones en un único documento JSON en
// disco, el análogo de localStorage: un mapa llave → valor serializado.
// Las escrituras reemplazan el archivo completo vía archivo temporal +
// rename, de modo que nunca queda un estado parcial visible.
type FileBackend struct {
	path string

	mu  sync.Mutex
	doc map[string]json.RawMessage
}

// NewFileBackend abre (o inicializa) el documento en path. Un archivo ausente
// arranca con documento vacío; un archivo corrupto es un error de arranque;
// mejor fallar temprano que pisar datos.
func NewFileBackend(path string) (*FileBackend, error) {
	b := &FileBackend{path: path, doc: map[string]json.RawMessage{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", path, err)
	}
	if len(data) == 0 {
		return b, nil
	}
	if err := json.Unmarshal(data, &b.doc); err != nil {
		return nil, fmt.Errorf("storage: %s no es un documento válido: %w", path, err)
	}
	return b, nil
}

func (b *FileBackend) Read(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	raw, ok := b.doc[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (b *FileBackend) Write(_ context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev, had := b.doc[key]
	b.doc[key] = json.RawMessage(data)
	if err := b.flush(); err != nil {
		// Restaurar el estado en memoria: el caller no debe observar un
		// cambio que no llegó a disco.
		if had {
			b.doc[key] = prev
		} else {
			delete(b.doc, key)
		}
		return err
	}
	return nil
}

func (b *FileBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev, had := b.doc[key]
	if !had {
		return nil
	}
	delete(b.doc, key)
	if err := b.flush(); err != nil {
		b.doc[key] = prev
		return err
	}
	return nil
}

// flush escribe el documento completo de forma atómica (tmp + rename).
// Requiere b.mu tomado.
func (b *FileBackend) flush() error {
	data, err := json.MarshalIndent(b.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: serializar documento: %w", err)
	}
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("storage: archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: escribir %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cerrar %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: reemplazar %s: %w", b.path, err)
	}
	return nil
}
