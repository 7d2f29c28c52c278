package utils

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"

	"api_clientes/src/models"
)

var validate = validator.New()

// reglaPagina acota ?page en el listado.
const reglaPagina = "min=1,max=10000"

// ValidatePagina devuelve error si page está fuera de 1..10000.
func ValidatePagina(page int) error {
	return validate.Var(page, reglaPagina)
}

// ValidatePatch revisa un PATCH contra el esquema de Cliente: solo campos conocidos,
// nunca el id, tipo exacto por campo y sin null. El contenido de los valores no se
// revisa. Devuelve el primer error en orden alfabético de campo para que la
// respuesta sea estable.
func ValidatePatch(patch models.ClientePatch) error {
	if len(patch) == 0 {
		return models.ErrPatchVacio
	}

	for _, campo := range slices.Sorted(maps.Keys(patch)) {
		if err := validateCampo(campo, patch[campo]); err != nil {
			return err
		}
	}
	return nil
}

func validateCampo(campo string, valor models.PatchValue) error {
	if campo == models.CampoID {
		return fmt.Errorf("%w: %s", models.ErrCampoInmutable, campo)
	}

	tipo, ok := models.CamposCliente[campo]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrCampoDesconocido, campo)
	}

	if valor.Kind != tipo {
		return fmt.Errorf("%w: %s debe ser %s, se recibió %s", models.ErrTipoInvalido, campo, tipo, valor.Kind)
	}
	return nil
}
