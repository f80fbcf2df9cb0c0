package service

import (
	"context"
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"levelup-api/internal/apperr"
	"levelup-api/internal/models"
	"levelup-api/internal/redisclient"
	"levelup-api/internal/store"
	"levelup-api/internal/util"
)

// CatalogService handles categories and products. Product reads go through
// the Redis cache; catalog mutations invalidate it.
type CatalogService struct {
	store  *store.Store
	cache  *redisclient.Client
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service. cache may be nil, in
// which case reads always hit the database.
func NewCatalogService(store *store.Store, cache *redisclient.Client) *CatalogService {
	return &CatalogService{store: store, cache: cache, logger: util.GetLogger()}
}

// --- Categorias ---

// CategoriaRequest is the payload for category create/update.
type CategoriaRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// ListCategorias returns every category ordered by name.
func (s *CatalogService) ListCategorias(ctx context.Context) ([]models.Categoria, error) {
	return s.store.GetCategorias(ctx)
}

// GetCategoria returns one category.
func (s *CatalogService) GetCategoria(ctx context.Context, id int64) (*models.Categoria, error) {
	return s.store.GetCategoriaByID(ctx, id)
}

// CreateCategoria validates and persists a category.
func (s *CatalogService) CreateCategoria(ctx context.Context, req *CategoriaRequest) (*models.Categoria, error) {
	if req.Nombre == nil || strings.TrimSpace(*req.Nombre) == "" {
		return nil, apperr.Validation("Datos de categoría inválidos", "nombre es requerido")
	}

	c := &models.Categoria{Nombre: *req.Nombre}
	if req.Descripcion != nil {
		c.Descripcion = *req.Descripcion
	}
	if err := s.store.CreateCategoria(ctx, c); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return c, nil
}

// UpdateCategoria applies a partial update. Unsupplied fields are untouched.
func (s *CatalogService) UpdateCategoria(ctx context.Context, id int64, req *CategoriaRequest) (*models.Categoria, error) {
	columns := map[string]interface{}{}
	if req.Nombre != nil {
		if strings.TrimSpace(*req.Nombre) == "" {
			return nil, apperr.Validation("Datos de categoría inválidos", "nombre no puede estar vacío")
		}
		columns["nombre"] = *req.Nombre
	}
	if req.Descripcion != nil {
		columns["descripcion"] = *req.Descripcion
	}

	c, err := s.store.UpdateCategoria(ctx, id, columns)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return c, nil
}

// DeleteCategoria removes a category. Idempotent.
func (s *CatalogService) DeleteCategoria(ctx context.Context, id int64) error {
	if err := s.store.DeleteCategoria(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// --- Productos ---

// ProductoRequest is the payload for product create/update.
type ProductoRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      *int64  `json:"precio"`
	Stock       *int    `json:"stock"`
	CategoriaID *int64  `json:"categoria_id"`
	ImagenURL   *string `json:"imagen_url"`
}

// ListProductos returns products newest first, optionally filtered by
// category, served through the cache.
func (s *CatalogService) ListProductos(ctx context.Context, categoriaID *int64) ([]*models.ProductoResponse, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.ListProductos")
	defer span.End()

	key := redisclient.ProductoListKey(categoriaID)
	if s.cache != nil {
		var cached []*models.ProductoResponse
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("Catalog cache read failed", zap.Error(err))
		} else if hit {
			util.CatalogCacheHitsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		util.CatalogCacheHitsTotal.WithLabelValues("miss").Inc()
	}

	productos, err := s.store.GetProductos(ctx, categoriaID)
	if err != nil {
		return nil, err
	}

	resp := make([]*models.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, productos[i].Response())
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, resp); err != nil {
			s.logger.Warn("Catalog cache write failed", zap.Error(err))
		}
	}
	return resp, nil
}

// GetProducto returns one product, served through the cache.
func (s *CatalogService) GetProducto(ctx context.Context, id int64) (*models.ProductoResponse, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetProducto")
	defer span.End()

	key := redisclient.ProductoKey(id)
	if s.cache != nil {
		var cached models.ProductoResponse
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("Catalog cache read failed", zap.Error(err))
		} else if hit {
			util.CatalogCacheHitsTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		util.CatalogCacheHitsTotal.WithLabelValues("miss").Inc()
	}

	producto, err := s.store.GetProductoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := producto.Response()
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, resp); err != nil {
			s.logger.Warn("Catalog cache write failed", zap.Error(err))
		}
	}
	return resp, nil
}

func validateProducto(req *ProductoRequest, create bool) ([]string, map[string]interface{}) {
	var violations []string
	columns := map[string]interface{}{}

	if req.Nombre != nil {
		if strings.TrimSpace(*req.Nombre) == "" {
			violations = append(violations, "nombre no puede estar vacío")
		} else {
			columns["nombre"] = *req.Nombre
		}
	} else if create {
		violations = append(violations, "nombre es requerido")
	}

	if req.Precio != nil {
		if *req.Precio < 0 {
			violations = append(violations, "precio debe ser mayor o igual a 0")
		} else {
			columns["precio"] = *req.Precio
		}
	} else if create {
		violations = append(violations, "precio es requerido")
	}

	if req.Stock != nil {
		if *req.Stock < 0 {
			violations = append(violations, "stock debe ser mayor o igual a 0")
		} else {
			columns["stock"] = *req.Stock
		}
	} else if create {
		violations = append(violations, "stock es requerido")
	}

	if req.Descripcion != nil {
		columns["descripcion"] = *req.Descripcion
	}
	if req.CategoriaID != nil {
		columns["categoria_id"] = *req.CategoriaID
	}
	if req.ImagenURL != nil {
		columns["imagen_url"] = *req.ImagenURL
	}

	return violations, columns
}

// CreateProducto validates and persists a product.
func (s *CatalogService) CreateProducto(ctx context.Context, req *ProductoRequest) (*models.ProductoResponse, error) {
	violations, _ := validateProducto(req, true)
	if len(violations) > 0 {
		return nil, apperr.Validation("Datos de producto inválidos", violations...)
	}

	p := &models.Producto{
		Nombre: *req.Nombre,
		Precio: *req.Precio,
		Stock:  *req.Stock,
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.CategoriaID != nil {
		p.CategoriaID = sql.NullInt64{Int64: *req.CategoriaID, Valid: true}
	}
	if req.ImagenURL != nil {
		p.ImagenURL = *req.ImagenURL
	}

	if err := s.store.CreateProducto(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateProducto(ctx, p.ID)
	s.logger.Info("Producto creado", zap.Int64("producto_id", p.ID))

	// Re-read so the embedded category comes back when the join is available.
	created, err := s.store.GetProductoByID(ctx, p.ID)
	if err != nil {
		return p.Response(), nil
	}
	return created.Response(), nil
}

// UpdateProducto applies a partial update.
func (s *CatalogService) UpdateProducto(ctx context.Context, id int64, req *ProductoRequest) (*models.ProductoResponse, error) {
	violations, columns := validateProducto(req, false)
	if len(violations) > 0 {
		return nil, apperr.Validation("Datos de producto inválidos", violations...)
	}

	p, err := s.store.UpdateProducto(ctx, id, columns)
	if err != nil {
		return nil, err
	}

	s.invalidateProducto(ctx, id)
	return p.Response(), nil
}

// DeleteProducto removes a product. Idempotent.
func (s *CatalogService) DeleteProducto(ctx context.Context, id int64) error {
	if err := s.store.DeleteProducto(ctx, id); err != nil {
		return err
	}
	s.invalidateProducto(ctx, id)
	return nil
}

func (s *CatalogService) invalidateProducto(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProducto(ctx, id); err != nil {
		s.logger.Warn("Catalog cache invalidation failed",
			zap.Int64("producto_id", id), zap.Error(err))
	}
}

func (s *CatalogService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateListings(ctx); err != nil {
		s.logger.Warn("Catalog cache invalidation failed", zap.Error(err))
	}
}
