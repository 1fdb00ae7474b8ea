package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	dominv "github.com/jhoicas/despensa-api/internal/domain/inventory"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ItemUseCase casos de uso CRUD + reset de línea base para ítems de stock.
// Toda mutación exitosa deja los derivados (valor, peso, brecha) consistentes
// antes de retornar; ningún estado intermedio es observable. Escritor único,
// síncrono, sin I/O propio (la persistencia es cosa del adaptador inyectado).
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un ítem. La cantidad inicial se convierte en su propia línea
// base (beginning_inventory = quantity, brecha 0 si la base es > 0).
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	begin := in.Quantity
	item := &entity.Item{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Category:           entity.ParseCategory(in.Category),
		Supplier:           in.Supplier,
		Location:           in.Location,
		Unit:               in.Unit,
		ContainerType:      in.ContainerType,
		Quantity:           in.Quantity,
		CostPerUnit:        in.CostPerUnit,
		WeightPerContainer: in.WeightPerContainer,
		MinimumStock:       in.MinimumStock,
		BeginningInventory: &begin,
		LastReset:          &now,
		IsDryGood:          in.IsDryGood,
		DensityLbsPerCup:   in.DensityLbsPerCup,
		ExpirationDate:     in.ExpirationDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	dominv.Recalculate(item)
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update fusiona los campos no nulos sobre el registro existente y recalcula
// los derivados incondicionalmente. Una cantidad que quedaría negativa se
// recorta a 0 (las deducciones nunca fallan por ir bajo cero). Un id
// desconocido es ErrNotFound: aquí el contrato es explícito, no un no-op
// silencioso.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = entity.ParseCategory(*in.Category)
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.ContainerType != nil {
		item.ContainerType = *in.ContainerType
	}
	if in.Quantity != nil {
		q := *in.Quantity
		if q.IsNegative() {
			q = decimal.Zero
		}
		item.Quantity = q
	}
	if in.CostPerUnit != nil {
		if in.CostPerUnit.IsNegative() {
			return nil, fmt.Errorf("%w: cost_per_unit negativo", domain.ErrInvalidInput)
		}
		item.CostPerUnit = *in.CostPerUnit
	}
	if in.WeightPerContainer != nil {
		if in.WeightPerContainer.IsNegative() {
			return nil, fmt.Errorf("%w: weight_per_container negativo", domain.ErrInvalidInput)
		}
		item.WeightPerContainer = *in.WeightPerContainer
	}
	if in.MinimumStock != nil {
		if in.MinimumStock.IsNegative() {
			return nil, fmt.Errorf("%w: minimum_stock negativo", domain.ErrInvalidInput)
		}
		item.MinimumStock = *in.MinimumStock
	}
	if in.IsDryGood != nil {
		item.IsDryGood = *in.IsDryGood
	}
	if in.DensityLbsPerCup != nil {
		item.DensityLbsPerCup = in.DensityLbsPerCup
	}
	if in.ExpirationDate != nil {
		item.ExpirationDate = in.ExpirationDate
	}

	item.UpdatedAt = time.Now().UTC()
	dominv.Recalculate(item)
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem; un id desconocido es no-op (idempotente).
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ResetBaseline fija la línea base del ítem en su cantidad actual y lleva la
// brecha a 0. Un ítem que nunca tuvo base simplemente la estrena aquí.
func (uc *ItemUseCase) ResetBaseline(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.resetItem(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ResetAllBaselines aplica ResetBaseline a todos los ítems. Devuelve cuántos
// se resetearon; ante un error a mitad de flota, el conteo refleja los resets
// que sí quedaron aplicados.
func (uc *ItemUseCase) ResetAllBaselines() (int, error) {
	items, err := uc.repo.List()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		if err := uc.resetItem(item); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (uc *ItemUseCase) resetItem(item *entity.Item) error {
	now := time.Now().UTC()
	begin := item.Quantity
	item.BeginningInventory = &begin
	item.LastReset = &now
	item.UpdatedAt = now
	dominv.Recalculate(item)
	return uc.repo.Update(item)
}

// BulkImport aplica semántica de Create a cada spec. Las filas malformadas se
// omiten individualmente con su razón; el resto del lote sigue adelante y los
// registros ya importados nunca se corrompen.
func (uc *ItemUseCase) BulkImport(in dto.BulkImportRequest) (*dto.BulkImportResult, error) {
	result := &dto.BulkImportResult{Items: make([]dto.ItemResponse, 0, len(in.Items))}
	for i, spec := range in.Items {
		created, err := uc.Create(spec)
		if err != nil {
			result.Skipped = append(result.Skipped, dto.SkippedRow{Index: i, Reason: err.Error()})
			continue
		}
		result.Imported++
		result.Items = append(result.Items, *created)
	}
	return result, nil
}

// List lista los ítems con derivados y totales de flota, opcionalmente
// filtrado por categoría. Orden estable por nombre.
func (uc *ItemUseCase) List(category string) (*dto.ItemListResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	resp := &dto.ItemListResponse{
		Items:       make([]dto.ItemResponse, 0, len(items)),
		TotalValue:  decimal.Zero,
		TotalWeight: decimal.Zero,
	}
	for _, item := range items {
		if category != "" && string(item.Category) != category {
			continue
		}
		resp.Items = append(resp.Items, *toItemResponse(item))
		resp.TotalValue = resp.TotalValue.Add(item.TotalValue)
		resp.TotalWeight = resp.TotalWeight.Add(item.TotalWeight)
	}
	sort.Slice(resp.Items, func(i, j int) bool { return resp.Items[i].Name < resp.Items[j].Name })
	resp.Total = len(resp.Items)
	return resp, nil
}

func validateCreate(in dto.CreateItemRequest) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	if in.Quantity.IsNegative() {
		return fmt.Errorf("%w: quantity negativa", domain.ErrInvalidInput)
	}
	if in.CostPerUnit.IsNegative() {
		return fmt.Errorf("%w: cost_per_unit negativo", domain.ErrInvalidInput)
	}
	if in.WeightPerContainer.IsNegative() {
		return fmt.Errorf("%w: weight_per_container negativo", domain.ErrInvalidInput)
	}
	if in.MinimumStock.IsNegative() {
		return fmt.Errorf("%w: minimum_stock negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:                 i.ID,
		Name:               i.Name,
		Category:           string(i.Category),
		Supplier:           i.Supplier,
		Location:           i.Location,
		Unit:               i.Unit,
		ContainerType:      i.ContainerType,
		Quantity:           i.Quantity,
		CostPerUnit:        i.CostPerUnit,
		WeightPerContainer: i.WeightPerContainer,
		MinimumStock:       i.MinimumStock,
		TotalValue:         i.TotalValue,
		TotalWeight:        i.TotalWeight,
		BeginningInventory: i.BeginningInventory,
		GapPercentage:      i.GapPercentage,
		LastReset:          i.LastReset,
		IsDryGood:          i.IsDryGood,
		DensityLbsPerCup:   i.DensityLbsPerCup,
		ExpirationDate:     i.ExpirationDate,
		StockStatus:        string(dominv.Status(i)),
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
	}
}
