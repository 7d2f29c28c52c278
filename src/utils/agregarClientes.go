// utils/agregarClientes.go
package utils

import (
	"context"
	"fmt"

	"github.com/jaswdr/faker"

	"api_clientes/src/logger"
	"api_clientes/src/models"
)

const tamanoLote = 1000

// ClienteSeedStore es lo que el sembrado necesita de la base de datos.
type ClienteSeedStore interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, clientes []models.Cliente) error
}

// FakeCliente arma un cliente con datos de prueba.
func FakeCliente(f faker.Faker, id string) models.Cliente {
	return models.Cliente{
		ID:       id,
		Nombre:   f.Person().FirstName(),
		Apellido: f.Person().LastName(),
		Email:    f.Internet().Email(),
		Telefono: f.Phone().Number(),
		Empresa:  f.Company().Name(),
		Puesto:   f.Company().JobTitle(),
		Estado:   f.IntBetween(0, 1),
	}
}

// SeedClientes inserta total clientes falsos en lotes de 1000, solo si la colección
// está vacía. Devuelve cuántos insertó.
func SeedClientes(ctx context.Context, store ClienteSeedStore, ids IDGenerator, total int, log *logger.Logger) (int, error) {
	if total <= 0 {
		return 0, nil
	}

	count, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al contar clientes: %w", err)
	}
	if count > 0 {
		log.Info().Int64("existentes", count).Msg("ya existen clientes, se omite el sembrado")
		return 0, nil
	}

	f := faker.New()
	lote := make([]models.Cliente, 0, min(total, tamanoLote))
	insertados := 0

	for i := 1; i <= total; i++ {
		lote = append(lote, FakeCliente(f, ids.Generate()))

		if len(lote) == tamanoLote || i == total {
			if err := store.InsertMany(ctx, lote); err != nil {
				return insertados, fmt.Errorf("error al insertar clientes: %w", err)
			}
			insertados += len(lote)
			lote = lote[:0]
			log.Debug().Int("insertados", insertados).Msg("sembrando clientes")
		}
	}

	log.Info().Int("insertados", insertados).Msg("sembrado de clientes terminado")
	return insertados, nil
}
