package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"levelup-api/internal/apperr"
	"levelup-api/internal/auth"
	"levelup-api/internal/broker"
	"levelup-api/internal/models"
	"levelup-api/internal/redisclient"
	"levelup-api/internal/store"
	"levelup-api/internal/util"
)

// productCacheInvalidator drops cached catalog entries for a product.
type productCacheInvalidator interface {
	InvalidateProducto(ctx context.Context, id int64) error
}

// BoletaService handles the order workflow.
type BoletaService struct {
	store          *store.Store
	cache          productCacheInvalidator
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewBoletaService creates a new boleta service. cache and eventPublisher may
// be nil; cache invalidation and event publication are then skipped.
func NewBoletaService(store *store.Store, cache *redisclient.Client, eventPublisher *broker.EventPublisher) *BoletaService {
	s := &BoletaService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
	if cache != nil {
		s.cache = cache
	}
	return s
}

// DetalleRequest is one requested line of a new boleta.
type DetalleRequest struct {
	ProductoID int64 `json:"producto_id"`
	Cantidad   int   `json:"cantidad"`
}

// CreateBoletaRequest is the payload for boleta creation.
type CreateBoletaRequest struct {
	Detalles []DetalleRequest `json:"detalles"`
}

func validateDetalles(detalles []DetalleRequest) error {
	if len(detalles) == 0 {
		return apperr.Validation("Datos de boleta inválidos",
			"detalles no puede estar vacío")
	}
	var violations []string
	for i, d := range detalles {
		if d.ProductoID <= 0 {
			violations = append(violations,
				fmt.Sprintf("detalles[%d].producto_id inválido", i))
		}
		if d.Cantidad <= 0 {
			violations = append(violations,
				fmt.Sprintf("detalles[%d].cantidad debe ser mayor a 0", i))
		}
	}
	if len(violations) > 0 {
		return apperr.Validation("Datos de boleta inválidos", violations...)
	}
	return nil
}

// Create creates a boleta for the caller. Stock checks, price snapshots and
// decrements all run inside one database transaction, so a failing line
// leaves nothing behind and concurrent orders cannot oversell.
func (s *BoletaService) Create(ctx context.Context, claims *auth.Claims, req *CreateBoletaRequest) (*models.BoletaResponse, error) {
	ctx, span := util.StartSpan(ctx, "BoletaService.Create")
	defer span.End()

	if err := validateDetalles(req.Detalles); err != nil {
		util.BoletasFailedTotal.WithLabelValues("invalid_detalles").Inc()
		return nil, err
	}

	lines := make([]store.BoletaLine, len(req.Detalles))
	for i, d := range req.Detalles {
		lines[i] = store.BoletaLine{ProductoID: d.ProductoID, Cantidad: d.Cantidad}
	}

	start := time.Now()
	boleta, detalles, err := s.store.CreateBoleta(ctx, claims.UserID, lines)
	util.BoletaCreateLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case apperr.IsKind(err, apperr.KindNotFound):
			util.BoletasFailedTotal.WithLabelValues("producto_not_found").Inc()
		case apperr.IsKind(err, apperr.KindConflict):
			util.BoletasFailedTotal.WithLabelValues("insufficient_stock").Inc()
		default:
			util.BoletasFailedTotal.WithLabelValues("db_error").Inc()
		}
		return nil, err
	}

	util.BoletasCreatedTotal.Inc()
	for _, d := range detalles {
		util.StockDecrementedTotal.Add(float64(d.Cantidad))
	}
	s.logger.Info("Boleta creada",
		zap.Int64("boleta_id", boleta.ID),
		zap.Int64("usuario_id", claims.UserID),
		zap.Int64("total", boleta.Total))

	s.invalidateStock(ctx, detalles)
	s.publishCreated(ctx, boleta, detalles)
	return boleta.Response(), nil
}

// invalidateStock drops the cached entries of every product whose stock the
// committed boleta decremented, so catalog reads do not serve stale stock for
// the cache TTL.
func (s *BoletaService) invalidateStock(ctx context.Context, detalles []models.DetalleBoleta) {
	if s.cache == nil {
		return
	}
	for _, d := range detalles {
		if err := s.cache.InvalidateProducto(ctx, d.ProductoID); err != nil {
			s.logger.Warn("Catalog cache invalidation failed",
				zap.Int64("producto_id", d.ProductoID), zap.Error(err))
		}
	}
}

func (s *BoletaService) publishCreated(ctx context.Context, boleta *models.Boleta, detalles []models.DetalleBoleta) {
	if s.eventPublisher == nil {
		return
	}

	eventLines := make([]models.BoletaLineData, 0, len(detalles))
	for _, d := range detalles {
		eventLines = append(eventLines, models.BoletaLineData{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}

	event := &models.BoletaCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeBoletaCreated,
			Timestamp: time.Now(),
		},
		BoletaID:  boleta.ID,
		UsuarioID: boleta.UsuarioID,
		Total:     boleta.Total,
		Lines:     eventLines,
	}
	if err := s.eventPublisher.PublishBoletaCreated(ctx, event); err != nil {
		s.logger.Error("Failed to publish BoletaCreated event", zap.Error(err))
	}
}

// List returns every boleta for Vendedor/Administrador callers and only the
// caller's own boletas otherwise.
func (s *BoletaService) List(ctx context.Context, claims *auth.Claims) ([]*models.BoletaResponse, error) {
	var owner *int64
	if claims.Rol == models.RolCliente {
		owner = &claims.UserID
	}

	boletas, err := s.store.GetBoletas(ctx, owner)
	if err != nil {
		return nil, err
	}

	resp := make([]*models.BoletaResponse, 0, len(boletas))
	for i := range boletas {
		resp = append(resp, boletas[i].Response())
	}
	return resp, nil
}

// BoletaDetailResponse is a boleta header with its lines.
type BoletaDetailResponse struct {
	*models.BoletaResponse
	Detalles []*models.DetalleResponse `json:"detalles"`
}

// Get returns one boleta with its lines. Cliente callers may only read their
// own boletas.
func (s *BoletaService) Get(ctx context.Context, claims *auth.Claims, id int64) (*BoletaDetailResponse, error) {
	boleta, err := s.store.GetBoletaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if claims.Rol == models.RolCliente && boleta.UsuarioID != claims.UserID {
		return nil, apperr.New(apperr.KindForbidden, "No autorizado")
	}

	detalles, err := s.store.GetDetallesByBoletaID(ctx, id)
	if err != nil {
		return nil, err
	}

	detResp := make([]*models.DetalleResponse, 0, len(detalles))
	for i := range detalles {
		detResp = append(detResp, detalles[i].Response())
	}

	return &BoletaDetailResponse{
		BoletaResponse: boleta.Response(),
		Detalles:       detResp,
	}, nil
}

// UpdateEstado transitions a boleta. Only Pendiente boletas may move, and
// only to Completada or Cancelada.
func (s *BoletaService) UpdateEstado(ctx context.Context, id int64, estado string) (*models.BoletaResponse, error) {
	if !models.ValidEstado(estado) {
		return nil, apperr.Validation("Datos de boleta inválidos", "estado inválido")
	}

	boleta, oldEstado, err := s.store.UpdateBoletaEstado(ctx, id, estado)
	if err != nil {
		return nil, err
	}

	util.BoletasStatusChangesTotal.WithLabelValues(estado).Inc()
	s.logger.Info("Estado de boleta actualizado",
		zap.Int64("boleta_id", id),
		zap.String("old_estado", oldEstado),
		zap.String("new_estado", estado))

	if s.eventPublisher != nil {
		event := &models.BoletaStatusChangedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeBoletaStatusChanged,
				Timestamp: time.Now(),
			},
			BoletaID:  id,
			OldEstado: oldEstado,
			NewEstado: estado,
		}
		if err := s.eventPublisher.PublishBoletaStatusChanged(ctx, event); err != nil {
			s.logger.Error("Failed to publish BoletaStatusChanged event", zap.Error(err))
		}
	}
	return boleta.Response(), nil
}

// Delete removes a boleta and its lines. Stock is not restored. Idempotent.
func (s *BoletaService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteBoleta(ctx, id); err != nil {
		return err
	}

	util.BoletasDeletedTotal.Inc()
	if s.eventPublisher != nil {
		event := &models.BoletaDeletedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeBoletaDeleted,
				Timestamp: time.Now(),
			},
			BoletaID: id,
		}
		if err := s.eventPublisher.PublishBoletaDeleted(ctx, event); err != nil {
			s.logger.Error("Failed to publish BoletaDeleted event", zap.Error(err))
		}
	}
	return nil
}
