package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api_clientes/src/logger"
	"api_clientes/src/models"
)

type fakeSeedStore struct {
	existentes int64
	countErr   error
	insertErr  error
	lotes      [][]models.Cliente
}

func (s *fakeSeedStore) Count(context.Context) (int64, error) {
	return s.existentes, s.countErr
}

func (s *fakeSeedStore) InsertMany(_ context.Context, clientes []models.Cliente) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.lotes = append(s.lotes, append([]models.Cliente(nil), clientes...))
	return nil
}

func TestSeedClientes_Lotes(t *testing.T) {
	store := &fakeSeedStore{}

	n, err := SeedClientes(context.Background(), store, NewUUIDGenerator(), 2500, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, 2500, n)
	require.Len(t, store.lotes, 3)
	assert.Len(t, store.lotes[0], 1000)
	assert.Len(t, store.lotes[1], 1000)
	assert.Len(t, store.lotes[2], 500)

	ids := map[string]struct{}{}
	for _, lote := range store.lotes {
		for _, c := range lote {
			require.NotEmpty(t, c.ID)
			ids[c.ID] = struct{}{}
		}
	}
	assert.Len(t, ids, 2500)
}

func TestSeedClientes_ColeccionConDatos(t *testing.T) {
	store := &fakeSeedStore{existentes: 3}

	n, err := SeedClientes(context.Background(), store, NewUUIDGenerator(), 10, logger.Nop())

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, store.lotes)
}

func TestSeedClientes_TotalCero(t *testing.T) {
	store := &fakeSeedStore{countErr: errors.New("no debería llamarse")}

	n, err := SeedClientes(context.Background(), store, NewUUIDGenerator(), 0, logger.Nop())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedClientes_Errores(t *testing.T) {
	_, err := SeedClientes(context.Background(), &fakeSeedStore{countErr: errors.New("sin conexión")}, NewUUIDGenerator(), 5, logger.Nop())
	assert.ErrorContains(t, err, "sin conexión")

	_, err = SeedClientes(context.Background(), &fakeSeedStore{insertErr: errors.New("disco lleno")}, NewUUIDGenerator(), 5, logger.Nop())
	assert.ErrorContains(t, err, "disco lleno")
}

func TestFakeCliente_CamposCompletos(t *testing.T) {
	c := FakeCliente(faker.New(), "abc")

	assert.Equal(t, "abc", c.ID)
	assert.NotEmpty(t, c.Nombre)
	assert.NotEmpty(t, c.Apellido)
	assert.NotEmpty(t, c.Email)
	assert.NotEmpty(t, c.Telefono)
	assert.NotEmpty(t, c.Empresa)
	assert.NotEmpty(t, c.Puesto)
	assert.Contains(t, []int{0, 1}, c.Estado)
}
