package usecase

import (
	"sort"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	dominv "github.com/jhoicas/despensa-api/internal/domain/inventory"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// GapUseCase pasada de solo lectura sobre el snapshot de ítems que deriva las
// estadísticas de brecha de consumo de toda la flota. No guarda estado entre
// llamadas; cada invocación es idempotente.
type GapUseCase struct {
	repo repository.ItemRepository
}

// NewGapUseCase construye el caso de uso.
func NewGapUseCase(repo repository.ItemRepository) *GapUseCase {
	return &GapUseCase{repo: repo}
}

var (
	highGapThreshold     = decimal.NewFromInt(50)
	criticalGapThreshold = decimal.NewFromInt(75)
)

// Summary calcula las estadísticas de brecha: promedio sobre los ítems con
// brecha definida (conjunto vacío => 0), conteo de brechas > 50 y la lista de
// brechas >= 75 ordenada descendente para las vistas de atención urgente.
func (uc *GapUseCase) Summary() (*dto.GapSummaryDTO, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.GapSummaryDTO{
		AverageGap:       decimal.Zero,
		CriticalGapItems: []dto.GapItemDTO{},
		TotalValueLoss:   decimal.Zero,
	}

	sum := decimal.Zero
	for _, item := range items {
		if item.GapPercentage == nil {
			continue
		}
		gap := *item.GapPercentage
		summary.TrackedItems++
		sum = sum.Add(gap)

		loss := dominv.ValueLoss(item)
		summary.TotalValueLoss = summary.TotalValueLoss.Add(loss)

		if gap.GreaterThan(highGapThreshold) {
			summary.HighGapItems++
		}
		if !gap.LessThan(criticalGapThreshold) {
			summary.CriticalGapItems = append(summary.CriticalGapItems, toGapItem(item, gap, loss))
		}
	}

	if summary.TrackedItems > 0 {
		summary.AverageGap = sum.Div(decimal.NewFromInt(int64(summary.TrackedItems))).Round(2)
	}

	sort.Slice(summary.CriticalGapItems, func(i, j int) bool {
		return summary.CriticalGapItems[i].GapPercentage.GreaterThan(summary.CriticalGapItems[j].GapPercentage)
	})

	return summary, nil
}

func toGapItem(item *entity.Item, gap, loss decimal.Decimal) dto.GapItemDTO {
	return dto.GapItemDTO{
		ItemID:             item.ID,
		Name:               item.Name,
		Category:           string(item.Category),
		Quantity:           item.Quantity,
		BeginningInventory: *item.BeginningInventory,
		GapPercentage:      gap,
		ValueLoss:          loss,
	}
}
