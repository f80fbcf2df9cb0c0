package models

import (
	"database/sql"
	"time"
)

// User roles
const (
	RolCliente       = "Cliente"
	RolVendedor      = "Vendedor"
	RolAdministrador = "Administrador"
)

// ValidRol reports whether s is one of the known roles.
func ValidRol(s string) bool {
	return s == RolCliente || s == RolVendedor || s == RolAdministrador
}

// Boleta states
const (
	BoletaEstadoPendiente  = "Pendiente"
	BoletaEstadoCompletada = "Completada"
	BoletaEstadoCancelada  = "Cancelada"
)

// ValidEstado reports whether s is one of the known boleta states.
func ValidEstado(s string) bool {
	return s == BoletaEstadoPendiente || s == BoletaEstadoCompletada || s == BoletaEstadoCancelada
}

// Usuario represents an account row. Password carries the bcrypt hash and is
// never serialized.
type Usuario struct {
	ID        int64     `db:"id" json:"id"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Rol       string    `db:"rol" json:"rol"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Public returns the fields safe to expose to API clients.
func (u *Usuario) Public() *UsuarioPublico {
	return &UsuarioPublico{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
		CreatedAt: u.CreatedAt,
	}
}

// UsuarioPublico is the public projection of a user.
type UsuarioPublico struct {
	ID        int64     `db:"id" json:"id"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Email     string    `db:"email" json:"email"`
	Rol       string    `db:"rol" json:"rol"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Categoria represents a product category.
type Categoria struct {
	ID          int64     `db:"id" json:"id"`
	Nombre      string    `db:"nombre" json:"nombre"`
	Descripcion string    `db:"descripcion" json:"descripcion"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Producto represents a catalog product. Precio is stored in integer cents.
type Producto struct {
	ID          int64         `db:"id" json:"id"`
	Nombre      string        `db:"nombre" json:"nombre"`
	Descripcion string        `db:"descripcion" json:"descripcion"`
	Precio      int64         `db:"precio" json:"precio"`
	Stock       int           `db:"stock" json:"stock"`
	CategoriaID sql.NullInt64 `db:"categoria_id" json:"-"`
	ImagenURL   string        `db:"imagen_url" json:"imagen_url"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`

	// Populated by the joined read when the schema supports the relation.
	CategoriaNombre sql.NullString `db:"categoria_nombre" json:"-"`
}

// CategoriaRef is the category snippet embedded in product responses.
type CategoriaRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductoResponse is the API shape of a product, optionally embedding its
// category when the join is available.
type ProductoResponse struct {
	ID          int64         `json:"id"`
	Nombre      string        `json:"nombre"`
	Descripcion string        `json:"descripcion"`
	Precio      int64         `json:"precio"`
	Stock       int           `json:"stock"`
	CategoriaID *int64        `json:"categoria_id"`
	ImagenURL   string        `json:"imagen_url"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Categoria   *CategoriaRef `json:"categorias,omitempty"`
}

// Response builds the API projection of p.
func (p *Producto) Response() *ProductoResponse {
	resp := &ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
		ImagenURL:   p.ImagenURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.CategoriaID.Valid {
		id := p.CategoriaID.Int64
		resp.CategoriaID = &id
		if p.CategoriaNombre.Valid {
			resp.Categoria = &CategoriaRef{ID: id, Nombre: p.CategoriaNombre.String}
		}
	}
	return resp
}

// Boleta represents a purchase receipt header.
type Boleta struct {
	ID        int64     `db:"id" json:"id"`
	UsuarioID int64     `db:"usuario_id" json:"usuario_id"`
	Fecha     time.Time `db:"fecha" json:"fecha"`
	Total     int64     `db:"total" json:"total"`
	Estado    string    `db:"estado" json:"estado"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Owner snippet, populated by joined reads. Null when the owner was
	// deleted.
	UsuarioNombre sql.NullString `db:"usuario_nombre" json:"-"`
	UsuarioEmail  sql.NullString `db:"usuario_email" json:"-"`
}

// UsuarioRef is the owner snippet embedded in boleta responses.
type UsuarioRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// BoletaResponse is the API shape of a boleta header.
type BoletaResponse struct {
	ID        int64       `json:"id"`
	UsuarioID int64       `json:"usuario_id"`
	Fecha     time.Time   `json:"fecha"`
	Total     int64       `json:"total"`
	Estado    string      `json:"estado"`
	CreatedAt time.Time   `json:"created_at"`
	Usuario   *UsuarioRef `json:"usuarios,omitempty"`
}

// Response builds the API projection of b.
func (b *Boleta) Response() *BoletaResponse {
	resp := &BoletaResponse{
		ID:        b.ID,
		UsuarioID: b.UsuarioID,
		Fecha:     b.Fecha,
		Total:     b.Total,
		Estado:    b.Estado,
		CreatedAt: b.CreatedAt,
	}
	if b.UsuarioNombre.Valid || b.UsuarioEmail.Valid {
		resp.Usuario = &UsuarioRef{ID: b.UsuarioID, Nombre: b.UsuarioNombre.String, Email: b.UsuarioEmail.String}
	}
	return resp
}

// DetalleBoleta represents one immutable line of a boleta. PrecioUnitario is
// the product price snapshot taken when the boleta was created.
type DetalleBoleta struct {
	ID             int64 `db:"id" json:"id"`
	BoletaID       int64 `db:"boleta_id" json:"boleta_id"`
	ProductoID     int64 `db:"producto_id" json:"producto_id"`
	Cantidad       int   `db:"cantidad" json:"cantidad"`
	PrecioUnitario int64 `db:"precio_unitario" json:"precio_unitario"`
	Subtotal       int64 `db:"subtotal" json:"subtotal"`

	// Product snippet, populated by joined reads.
	ProductoNombre    sql.NullString `db:"producto_nombre" json:"-"`
	ProductoImagenURL sql.NullString `db:"producto_imagen_url" json:"-"`
}

// ProductoRef is the product snippet embedded in detalle responses.
type ProductoRef struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	ImagenURL string `json:"imagen_url"`
}

// DetalleResponse is the API shape of a boleta line.
type DetalleResponse struct {
	ID             int64        `json:"id"`
	BoletaID       int64        `json:"boleta_id"`
	ProductoID     int64        `json:"producto_id"`
	Cantidad       int          `json:"cantidad"`
	PrecioUnitario int64        `json:"precio_unitario"`
	Subtotal       int64        `json:"subtotal"`
	Producto       *ProductoRef `json:"productos,omitempty"`
}

// Response builds the API projection of d.
func (d *DetalleBoleta) Response() *DetalleResponse {
	resp := &DetalleResponse{
		ID:             d.ID,
		BoletaID:       d.BoletaID,
		ProductoID:     d.ProductoID,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		Subtotal:       d.Subtotal,
	}
	if d.ProductoNombre.Valid {
		resp.Producto = &ProductoRef{
			ID:        d.ProductoID,
			Nombre:    d.ProductoNombre.String,
			ImagenURL: d.ProductoImagenURL.String,
		}
	}
	return resp
}

// ProcessedEvent for worker idempotency.
type ProcessedEvent struct {
	EventID     string    `db:"event_id"`
	EventType   string    `db:"event_type"`
	ProcessedAt time.Time `db:"processed_at"`
}
