package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ItemUseCase casos de uso CRUD para artículos de inventario. La cantidad
// solo cambia por movimientos o por edición explícita; el estado nunca se
// recalcula desde la cantidad.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo nuevo. SKU duplicado devuelve ErrDuplicate.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	status := entity.ItemStatus(in.Status)
	if in.Status == "" {
		status = entity.StatusInStock
	}
	if !entity.ValidItemStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Department:  in.Department,
		Quantity:    in.Quantity,
		UnitValue:   in.UnitValue,
		Status:      status,
		LastUpdated: now,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// GetBySKU obtiene un artículo por su SKU.
func (uc *ItemUseCase) GetBySKU(sku string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update edita un artículo. Cambiar la cantidad por aquí es una corrección
// directa del formulario, no pasa por el log de movimientos.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Department != nil {
		item.Department = *in.Department
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.UnitValue != nil {
		item.UnitValue = *in.UnitValue
	}
	if in.Status != nil {
		status := entity.ItemStatus(*in.Status)
		if !entity.ValidItemStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		item.Status = status
	}
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo del catálogo.
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	return uc.repo.Delete(id)
}

// List lista artículos con filtros. El término de búsqueda se compara
// normalizado (minúsculas, sin acentos) contra SKU y nombre; el resto de
// filtros los resuelve el repositorio.
func (uc *ItemUseCase) List(filter repository.ItemFilter, limit, offset int) (*dto.ItemListResponse, error) {
	search := filter.Search
	filter.Search = "" // la búsqueda es predicado local, no SQL
	items, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	if search != "" {
		needle := normalizeSearch(search)
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(normalizeSearch(it.SKU), needle) || strings.Contains(normalizeSearch(it.Name), needle) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// normalizeSearch pasa a minúsculas y remueve marcas diacríticas
// ("Audífonos" y "audifonos" deben coincidir).
func normalizeSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          it.ID,
		SKU:         it.SKU,
		Name:        it.Name,
		Department:  it.Department,
		Quantity:    it.Quantity,
		UnitValue:   it.UnitValue,
		Status:      string(it.Status),
		LastUpdated: it.LastUpdated,
		CreatedAt:   it.CreatedAt,
	}
}
