package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }
func intPtr(v int) *int       { return &v }

func TestValidateProductoCreate(t *testing.T) {
	violations, columns := validateProducto(&ProductoRequest{
		Nombre: strPtr("Teclado"),
		Precio: i64Ptr(19990),
		Stock:  intPtr(10),
	}, true)

	assert.Empty(t, violations)
	assert.Equal(t, "Teclado", columns["nombre"])
	assert.Equal(t, int64(19990), columns["precio"])
	assert.Equal(t, 10, columns["stock"])
}

func TestValidateProductoCreateMissingFields(t *testing.T) {
	violations, _ := validateProducto(&ProductoRequest{}, true)

	assert.Len(t, violations, 3)
}

func TestValidateProductoNegativeValues(t *testing.T) {
	violations, columns := validateProducto(&ProductoRequest{
		Nombre: strPtr("Teclado"),
		Precio: i64Ptr(-1),
		Stock:  intPtr(-5),
	}, true)

	assert.Len(t, violations, 2)
	assert.NotContains(t, columns, "precio")
	assert.NotContains(t, columns, "stock")
}

func TestValidateProductoPartialUpdate(t *testing.T) {
	// Only descripcion supplied: nothing else is touched.
	violations, columns := validateProducto(&ProductoRequest{
		Descripcion: strPtr("Edición limitada"),
	}, false)

	assert.Empty(t, violations)
	assert.Equal(t, map[string]interface{}{"descripcion": "Edición limitada"}, columns)
}
