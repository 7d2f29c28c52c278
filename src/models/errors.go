package models

import "errors"

var (
	// ErrClienteNotFound indica que ningún documento coincide con el id.
	ErrClienteNotFound = errors.New("cliente no encontrado")

	// ErrIDDuplicado lo devuelve el store cuando el índice único de id rechaza la inserción.
	ErrIDDuplicado = errors.New("id de cliente duplicado")
)

// Errores de validación de PATCH.
var (
	ErrPatchVacio       = errors.New("el cuerpo no contiene campos a actualizar")
	ErrCampoDesconocido = errors.New("campo desconocido")
	ErrCampoInmutable   = errors.New("campo inmutable")
	ErrTipoInvalido     = errors.New("tipo de dato no válido")
	ErrValorNoSoportado = errors.New("valor no soportado")
)
