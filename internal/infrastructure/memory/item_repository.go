// Package memory implementa el puerto ItemRepository en memoria. Es el
// almacén canónico del motor: la persistencia durable es una preocupación
// aparte (ver el adaptador postgres) y puede rezagarse; el snapshot en memoria
// sobre el que razona el motor siempre está al día.
package memory

import (
	"sync"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepository)(nil)

// ItemRepository almacén en memoria protegido por RWMutex. Entrega y recibe
// clones: mutar un ítem devuelto nunca afecta el almacén (aislamiento de
// snapshot para las pasadas de solo lectura).
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Item
}

// NewItemRepository construye el repositorio vacío.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]*entity.Item)}
}

// Create guarda un ítem nuevo.
func (r *ItemRepository) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item.Clone()
	return nil
}

// GetByID devuelve un clon del ítem, o (nil, nil) si no existe.
func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return item.Clone(), nil
}

// List devuelve clones de todos los ítems (orden no garantizado; los casos de
// uso ordenan según su contrato).
func (r *ItemRepository) List() ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		list = append(list, item.Clone())
	}
	return list, nil
}

// Update reemplaza el registro completo (last-write-wins a granularidad de ítem).
func (r *ItemRepository) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item.Clone()
	return nil
}

// Delete elimina el ítem; id desconocido es no-op.
func (r *ItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
