package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, sku, name, department, quantity, unit_value, status, last_updated, created_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo. SKU duplicado devuelve ErrDuplicate.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, item.Department,
		item.Quantity, item.UnitValue, item.Status, item.LastUpdated, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil, nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un artículo por SKU. Devuelve nil, nil si no existe.
func (r *ItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// GetBySKUForUpdate bloquea la fila del artículo (SELECT FOR UPDATE). Solo
// tiene efecto dentro de una transacción; dos reconciliaciones concurrentes
// sobre el mismo SKU se serializan aquí.
func (r *ItemRepo) GetBySKUForUpdate(sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE sku = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// Update actualiza los campos editables del artículo. La cantidad se modifica
// solo vía UpdateQuantity dentro de la reconciliación.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, department = $3, unit_value = $4, status = $5, last_updated = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Department, item.UnitValue, item.Status, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// UpdateQuantity escribe cantidad y last_updated. Se llama dentro de la misma
// tx que crea el movimiento, con la fila ya bloqueada por GetBySKUForUpdate.
func (r *ItemRepo) UpdateQuantity(itemID string, quantity int, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET quantity = $2, last_updated = $3 WHERE id = $1`,
		itemID, quantity, at,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// UpsertBySKU inserta o reemplaza por SKU (importación de artículos). El CSV
// de artículos no trae valor unitario, así que las filas existentes lo conservan.
func (r *ItemRepo) UpsertBySKU(item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (sku) DO UPDATE SET
			name = EXCLUDED.name,
			department = EXCLUDED.department,
			quantity = EXCLUDED.quantity,
			status = EXCLUDED.status,
			last_updated = EXCLUDED.last_updated`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, item.Department,
		item.Quantity, item.UnitValue, item.Status, item.LastUpdated, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// List lista artículos con filtros opcionales y paginación, ordenados por SKU.
// El filtro Search se aplica en la capa de aplicación (normalización de acentos).
func (r *ItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE 1=1`
	var args []any
	pos := 1
	if filter.Department != "" {
		query += fmt.Sprintf(" AND department = $%d", pos)
		args = append(args, filter.Department)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY sku LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListAll devuelve el catálogo completo ordenado por SKU (exportación CSV).
func (r *ItemRepo) ListAll() ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+itemColumns+` FROM inventory_items ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("list all items: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListSKUs devuelve los SKUs del catálogo para validación referencial de importaciones.
func (r *ItemRepo) ListSKUs() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT sku FROM inventory_items ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	var skus []string
	for rows.Next() {
		var sku string
		if err := rows.Scan(&sku); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		skus = append(skus, sku)
	}
	return skus, rows.Err()
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Count cuenta artículos bajo los mismos filtros de List.
func (r *ItemRepo) Count(filter repository.ItemFilter) (int, error) {
	query := `SELECT COUNT(*) FROM inventory_items WHERE 1=1`
	var args []any
	pos := 1
	if filter.Department != "" {
		query += fmt.Sprintf(" AND department = $%d", pos)
		args = append(args, filter.Department)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
	}
	var count int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.SKU, &it.Name, &it.Department,
		&it.Quantity, &it.UnitValue, &it.Status, &it.LastUpdated, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

func (r *ItemRepo) scanRows(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.SKU, &it.Name, &it.Department,
			&it.Quantity, &it.UnitValue, &it.Status, &it.LastUpdated, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
