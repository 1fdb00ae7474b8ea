package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, category, supplier, location, unit, container_type,
	quantity, cost_per_unit, weight_per_container, minimum_stock,
	total_value, total_weight, beginning_inventory, gap_percentage, last_reset,
	is_dry_good, density_lbs_per_cup, expiration_date, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable
// con pool o tx). Los derivados se persisten tal como los dejó el caso de uso;
// este adaptador no recalcula nada.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem nuevo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, string(item.Category), item.Supplier, item.Location, item.Unit, item.ContainerType,
		item.Quantity, item.CostPerUnit, item.WeightPerContainer, item.MinimumStock,
		item.TotalValue, item.TotalWeight, item.BeginningInventory, item.GapPercentage, item.LastReset,
		item.IsDryGood, item.DensityLbsPerCup, item.ExpirationDate, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List devuelve todos los ítems.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Update reemplaza el registro completo (last-write-wins a granularidad de ítem).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET
			name = $2, category = $3, supplier = $4, location = $5, unit = $6, container_type = $7,
			quantity = $8, cost_per_unit = $9, weight_per_container = $10, minimum_stock = $11,
			total_value = $12, total_weight = $13, beginning_inventory = $14, gap_percentage = $15,
			last_reset = $16, is_dry_good = $17, density_lbs_per_cup = $18, expiration_date = $19,
			updated_at = $20
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, string(item.Category), item.Supplier, item.Location, item.Unit, item.ContainerType,
		item.Quantity, item.CostPerUnit, item.WeightPerContainer, item.MinimumStock,
		item.TotalValue, item.TotalWeight, item.BeginningInventory, item.GapPercentage,
		item.LastReset, item.IsDryGood, item.DensityLbsPerCup, item.ExpirationDate,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el ítem; id desconocido es no-op.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var category string
	err := row.Scan(
		&it.ID, &it.Name, &category, &it.Supplier, &it.Location, &it.Unit, &it.ContainerType,
		&it.Quantity, &it.CostPerUnit, &it.WeightPerContainer, &it.MinimumStock,
		&it.TotalValue, &it.TotalWeight, &it.BeginningInventory, &it.GapPercentage, &it.LastReset,
		&it.IsDryGood, &it.DensityLbsPerCup, &it.ExpirationDate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.Category = entity.ParseCategory(category)
	return &it, nil
}
