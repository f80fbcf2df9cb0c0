package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"levelup-api/internal/apperr"
	"levelup-api/internal/models"
)

func TestValidateDetallesEmpty(t *testing.T) {
	err := validateDetalles(nil)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestValidateDetallesBadLines(t *testing.T) {
	err := validateDetalles([]DetalleRequest{
		{ProductoID: 1, Cantidad: 0},
		{ProductoID: 0, Cantidad: 2},
		{ProductoID: 3, Cantidad: -1},
	})

	require.Error(t, err)
	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind())
	assert.Len(t, appErr.Violations(), 3)
}

func TestValidateDetallesOK(t *testing.T) {
	err := validateDetalles([]DetalleRequest{
		{ProductoID: 1, Cantidad: 3},
		{ProductoID: 2, Cantidad: 1},
	})

	assert.NoError(t, err)
}

type recordingInvalidator struct {
	productos []int64
}

func (r *recordingInvalidator) InvalidateProducto(_ context.Context, id int64) error {
	r.productos = append(r.productos, id)
	return nil
}

func TestInvalidateStockDropsEveryDecrementedProduct(t *testing.T) {
	fake := &recordingInvalidator{}
	s := &BoletaService{cache: fake, logger: zap.NewNop()}

	s.invalidateStock(context.Background(), []models.DetalleBoleta{
		{ProductoID: 1, Cantidad: 2},
		{ProductoID: 5, Cantidad: 1},
	})

	assert.Equal(t, []int64{1, 5}, fake.productos)
}

func TestInvalidateStockWithoutCache(t *testing.T) {
	s := &BoletaService{logger: zap.NewNop()}

	assert.NotPanics(t, func() {
		s.invalidateStock(context.Background(), []models.DetalleBoleta{{ProductoID: 1, Cantidad: 1}})
	})
}
