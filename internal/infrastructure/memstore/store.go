// Package memstore retiene en memoria los exports POS cargados. No hay capa
// de persistencia: los uploads viven lo que vive el proceso.
package memstore

import (
	"sync"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/application/receipts"
	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain"
)

// UploadStore implementa receipts.UploadStore con un mapa protegido por
// RWMutex. La tabla de filas de cada upload es de solo lectura una vez
// almacenada, así que las lecturas concurrentes no necesitan copia.
type UploadStore struct {
	mu      sync.RWMutex
	uploads map[string]*receipts.Upload
}

// NewUploadStore construye el almacén vacío.
func NewUploadStore() *UploadStore {
	return &UploadStore{uploads: make(map[string]*receipts.Upload)}
}

// Put registra (o reemplaza) un upload.
func (s *UploadStore) Put(u *receipts.Upload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[u.ID] = u
}

// Get devuelve el upload o domain.ErrNotFound.
func (s *UploadStore) Get(id string) (*receipts.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.uploads[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

// Delete descarta el upload; domain.ErrNotFound si no existe.
func (s *UploadStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.uploads[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.uploads, id)
	return nil
}

// Len cantidad de uploads activos.
func (s *UploadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.uploads)
}
