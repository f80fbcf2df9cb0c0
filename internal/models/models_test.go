package models

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductoResponseEmbedsCategoria(t *testing.T) {
	p := &Producto{
		ID:              1,
		Nombre:          "Teclado",
		Precio:          19990,
		Stock:           5,
		CategoriaID:     sql.NullInt64{Int64: 3, Valid: true},
		CategoriaNombre: sql.NullString{String: "Periféricos", Valid: true},
	}

	resp := p.Response()
	require.NotNil(t, resp.Categoria)
	assert.Equal(t, int64(3), resp.Categoria.ID)
	assert.Equal(t, "Periféricos", resp.Categoria.Nombre)
	require.NotNil(t, resp.CategoriaID)
	assert.Equal(t, int64(3), *resp.CategoriaID)
}

func TestProductoResponseWithoutJoin(t *testing.T) {
	p := &Producto{
		ID:          1,
		Nombre:      "Teclado",
		CategoriaID: sql.NullInt64{Int64: 3, Valid: true},
	}

	resp := p.Response()
	assert.Nil(t, resp.Categoria)
	require.NotNil(t, resp.CategoriaID)
}

func TestBoletaResponseEmbedsUsuario(t *testing.T) {
	b := &Boleta{
		ID:            7,
		UsuarioID:     42,
		Total:         3000,
		Estado:        BoletaEstadoPendiente,
		UsuarioNombre: sql.NullString{String: "Ana", Valid: true},
		UsuarioEmail:  sql.NullString{String: "ana@example.com", Valid: true},
	}

	resp := b.Response()
	require.NotNil(t, resp.Usuario)
	assert.Equal(t, int64(42), resp.Usuario.ID)
	assert.Equal(t, "Ana", resp.Usuario.Nombre)
}

func TestBoletaResponseWithDeletedOwner(t *testing.T) {
	b := &Boleta{
		ID:        7,
		UsuarioID: 42,
		Total:     3000,
		Estado:    BoletaEstadoPendiente,
	}

	resp := b.Response()
	assert.Nil(t, resp.Usuario)
	assert.Equal(t, int64(42), resp.UsuarioID)
}

func TestValidRol(t *testing.T) {
	assert.True(t, ValidRol(RolCliente))
	assert.True(t, ValidRol(RolVendedor))
	assert.True(t, ValidRol(RolAdministrador))
	assert.False(t, ValidRol("Jefe"))
	assert.False(t, ValidRol(""))
}

func TestValidEstado(t *testing.T) {
	assert.True(t, ValidEstado(BoletaEstadoPendiente))
	assert.True(t, ValidEstado(BoletaEstadoCompletada))
	assert.True(t, ValidEstado(BoletaEstadoCancelada))
	assert.False(t, ValidEstado("Enviada"))
}
