package authz

import "levelup-api/internal/models"

// Action enumerates the operations the policy distinguishes.
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource enumerates the protected resource types.
type Resource string

const (
	ResourceUsuarios  Resource = "usuarios"
	ResourceCategoria Resource = "categorias"
	ResourceProductos Resource = "productos"
	ResourceBoletas   Resource = "boletas"
)

type rule struct {
	action   Action
	resource Resource
}

// policy maps each role to the rules it is granted beyond the public surface.
// Ownership refinements (a Cliente reading its own boleta, a user editing its
// own profile) are checked by the services, not here.
var policy = map[string]map[rule]bool{
	models.RolAdministrador: {
		{ActionList, ResourceUsuarios}:    true,
		{ActionRead, ResourceUsuarios}:    true,
		{ActionUpdate, ResourceUsuarios}:  true,
		{ActionDelete, ResourceUsuarios}:  true,
		{ActionCreate, ResourceCategoria}: true,
		{ActionUpdate, ResourceCategoria}: true,
		{ActionDelete, ResourceCategoria}: true,
		{ActionCreate, ResourceProductos}: true,
		{ActionUpdate, ResourceProductos}: true,
		{ActionDelete, ResourceProductos}: true,
		{ActionList, ResourceBoletas}:     true,
		{ActionRead, ResourceBoletas}:     true,
		{ActionCreate, ResourceBoletas}:   true,
		{ActionUpdate, ResourceBoletas}:   true,
		{ActionDelete, ResourceBoletas}:   true,
	},
	models.RolVendedor: {
		{ActionRead, ResourceUsuarios}:    true,
		{ActionUpdate, ResourceUsuarios}:  true,
		{ActionCreate, ResourceCategoria}: true,
		{ActionUpdate, ResourceCategoria}: true,
		{ActionCreate, ResourceProductos}: true,
		{ActionUpdate, ResourceProductos}: true,
		{ActionList, ResourceBoletas}:     true,
		{ActionRead, ResourceBoletas}:     true,
		{ActionCreate, ResourceBoletas}:   true,
		{ActionUpdate, ResourceBoletas}:   true,
	},
	models.RolCliente: {
		{ActionList, ResourceBoletas}:    true,
		{ActionRead, ResourceBoletas}:    true,
		{ActionCreate, ResourceBoletas}:  true,
		{ActionRead, ResourceUsuarios}:   true,
		{ActionUpdate, ResourceUsuarios}: true,
	},
}

// Allows reports whether a role may perform action on resource.
func Allows(rol string, action Action, resource Resource) bool {
	rules, ok := policy[rol]
	if !ok {
		return false
	}
	return rules[rule{action, resource}]
}
