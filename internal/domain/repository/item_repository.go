package repository

import "github.com/jhoicas/despensa-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP). El motor es
// agnóstico del almacenamiento: los adaptadores (memoria, PostgreSQL) viven en
// internal/infrastructure. GetByID devuelve (nil, nil) si el ítem no existe;
// Delete sobre un id desconocido es no-op.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
}
