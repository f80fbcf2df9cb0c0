package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"levelup-api/internal/models"
)

func TestAllows(t *testing.T) {
	cases := []struct {
		name     string
		rol      string
		action   Action
		resource Resource
		want     bool
	}{
		{"admin lists users", models.RolAdministrador, ActionList, ResourceUsuarios, true},
		{"admin deletes products", models.RolAdministrador, ActionDelete, ResourceProductos, true},
		{"admin deletes boletas", models.RolAdministrador, ActionDelete, ResourceBoletas, true},
		{"vendedor creates products", models.RolVendedor, ActionCreate, ResourceProductos, true},
		{"vendedor creates categories", models.RolVendedor, ActionCreate, ResourceCategoria, true},
		{"vendedor updates boletas", models.RolVendedor, ActionUpdate, ResourceBoletas, true},
		{"vendedor cannot delete products", models.RolVendedor, ActionDelete, ResourceProductos, false},
		{"vendedor cannot delete categories", models.RolVendedor, ActionDelete, ResourceCategoria, false},
		{"vendedor cannot delete boletas", models.RolVendedor, ActionDelete, ResourceBoletas, false},
		{"vendedor cannot list users", models.RolVendedor, ActionList, ResourceUsuarios, false},
		{"cliente creates boletas", models.RolCliente, ActionCreate, ResourceBoletas, true},
		{"cliente reads boletas", models.RolCliente, ActionRead, ResourceBoletas, true},
		{"cliente updates own profile", models.RolCliente, ActionUpdate, ResourceUsuarios, true},
		{"cliente cannot update boletas", models.RolCliente, ActionUpdate, ResourceBoletas, false},
		{"cliente cannot create products", models.RolCliente, ActionCreate, ResourceProductos, false},
		{"cliente cannot list users", models.RolCliente, ActionList, ResourceUsuarios, false},
		{"unknown role denied", "Superusuario", ActionRead, ResourceBoletas, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allows(tc.rol, tc.action, tc.resource))
		})
	}
}
