package store

import (
	"context"

	"levelup-api/internal/apperr"
	"levelup-api/internal/models"
)

// BoletaLine is one requested line of a new boleta.
type BoletaLine struct {
	ProductoID int64
	Cantidad   int
}

const boletaJoinSelect = `
	SELECT b.*, u.nombre AS usuario_nombre, u.email AS usuario_email
	FROM boletas b
	LEFT JOIN usuarios u ON u.id = b.usuario_id`

// CreateBoleta creates a boleta, its lines, and the stock decrements inside a
// single transaction. Row locks on the products serialize concurrent orders,
// and the conditional decrement guarantees stock never goes negative; any
// failing line rolls back the whole order.
func (s *Store) CreateBoleta(ctx context.Context, usuarioID int64, lines []BoletaLine) (*models.Boleta, []models.DetalleBoleta, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	type priced struct {
		Precio int64 `db:"precio"`
		Stock  int   `db:"stock"`
	}

	var total int64
	precios := make(map[int64]int64, len(lines))

	for _, line := range lines {
		var p priced
		err := tx.GetContext(ctx, &p,
			"SELECT precio, stock FROM productos WHERE id = $1 FOR UPDATE", line.ProductoID)
		if isNoRows(err) {
			return nil, nil, apperr.Newf(apperr.KindNotFound,
				"Producto %d no encontrado", line.ProductoID)
		}
		if err != nil {
			return nil, nil, err
		}
		if p.Stock < line.Cantidad {
			return nil, nil, apperr.Newf(apperr.KindConflict,
				"Stock insuficiente para producto %d", line.ProductoID)
		}

		precios[line.ProductoID] = p.Precio
		total += p.Precio * int64(line.Cantidad)
	}

	boleta := &models.Boleta{
		UsuarioID: usuarioID,
		Total:     total,
		Estado:    models.BoletaEstadoPendiente,
	}
	err = tx.GetContext(ctx, boleta, `
		INSERT INTO boletas (usuario_id, fecha, total, estado)
		VALUES ($1, NOW(), $2, $3)
		RETURNING id, fecha, created_at`,
		boleta.UsuarioID, boleta.Total, boleta.Estado)
	if err != nil {
		return nil, nil, err
	}

	detalles := make([]models.DetalleBoleta, 0, len(lines))
	for _, line := range lines {
		precio := precios[line.ProductoID]
		detalle := models.DetalleBoleta{
			BoletaID:       boleta.ID,
			ProductoID:     line.ProductoID,
			Cantidad:       line.Cantidad,
			PrecioUnitario: precio,
			Subtotal:       precio * int64(line.Cantidad),
		}
		err := tx.GetContext(ctx, &detalle.ID, `
			INSERT INTO detalle_boletas (boleta_id, producto_id, cantidad, precio_unitario, subtotal)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			detalle.BoletaID, detalle.ProductoID, detalle.Cantidad,
			detalle.PrecioUnitario, detalle.Subtotal)
		if err != nil {
			return nil, nil, err
		}
		detalles = append(detalles, detalle)
	}

	for _, line := range lines {
		res, err := tx.ExecContext(ctx, `
			UPDATE productos
			SET stock = stock - $1, updated_at = NOW()
			WHERE id = $2 AND stock >= $1`,
			line.Cantidad, line.ProductoID)
		if err != nil {
			return nil, nil, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, nil, apperr.Newf(apperr.KindConflict,
				"Stock insuficiente para producto %d", line.ProductoID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return boleta, detalles, nil
}

// GetBoletaByID retrieves a boleta header with its owner snippet.
func (s *Store) GetBoletaByID(ctx context.Context, id int64) (*models.Boleta, error) {
	var b models.Boleta
	err := s.db.GetContext(ctx, &b, boletaJoinSelect+" WHERE b.id = $1", id)
	if isNoRows(err) {
		return nil, apperr.New(apperr.KindNotFound, "Boleta no encontrada")
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBoletas retrieves boleta headers newest first. When usuarioID is set
// only that user's boletas are returned.
func (s *Store) GetBoletas(ctx context.Context, usuarioID *int64) ([]models.Boleta, error) {
	boletas := []models.Boleta{}
	if usuarioID != nil {
		err := s.db.SelectContext(ctx, &boletas,
			boletaJoinSelect+" WHERE b.usuario_id = $1 ORDER BY b.created_at DESC", *usuarioID)
		return boletas, err
	}
	err := s.db.SelectContext(ctx, &boletas,
		boletaJoinSelect+" ORDER BY b.created_at DESC")
	return boletas, err
}

// GetDetallesByBoletaID retrieves the lines of a boleta with their product
// snippets.
func (s *Store) GetDetallesByBoletaID(ctx context.Context, boletaID int64) ([]models.DetalleBoleta, error) {
	detalles := []models.DetalleBoleta{}
	err := s.db.SelectContext(ctx, &detalles, `
		SELECT d.*, p.nombre AS producto_nombre, p.imagen_url AS producto_imagen_url
		FROM detalle_boletas d
		LEFT JOIN productos p ON p.id = d.producto_id
		WHERE d.boleta_id = $1
		ORDER BY d.id`, boletaID)
	return detalles, err
}

// UpdateBoletaEstado transitions a boleta under the Pendiente→{Completada,
// Cancelada} state machine. Terminal boletas reject any further change.
func (s *Store) UpdateBoletaEstado(ctx context.Context, id int64, estado string) (*models.Boleta, string, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	defer tx.Rollback()

	var current string
	err = tx.GetContext(ctx, &current,
		"SELECT estado FROM boletas WHERE id = $1 FOR UPDATE", id)
	if isNoRows(err) {
		return nil, "", apperr.New(apperr.KindNotFound, "Boleta no encontrada")
	}
	if err != nil {
		return nil, "", err
	}

	if current != models.BoletaEstadoPendiente {
		return nil, "", apperr.Newf(apperr.KindConflict,
			"La boleta ya está en estado terminal %s", current)
	}
	if estado == models.BoletaEstadoPendiente {
		return nil, "", apperr.New(apperr.KindConflict, "Transición de estado no permitida")
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE boletas SET estado = $1 WHERE id = $2", estado, id); err != nil {
		return nil, "", err
	}
	if err := tx.Commit(); err != nil {
		return nil, "", err
	}

	b, err := s.GetBoletaByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return b, current, nil
}

// DeleteBoleta removes a boleta and its lines in one transaction. Stock is
// not restored. Deleting an absent boleta is not an error.
func (s *Store) DeleteBoleta(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM detalle_boletas WHERE boleta_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM boletas WHERE id = $1", id); err != nil {
		return err
	}
	return tx.Commit()
}
