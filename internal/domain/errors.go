package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// DuplicatePOError indica que una orden de compra (PO) ya está usada por una
// línea de otra factura. Lleva el PO ofensor para que el mensaje lo nombre.
type DuplicatePOError struct {
	PO string
}

func (e *DuplicatePOError) Error() string {
	return fmt.Sprintf("la orden de compra %q ya está asignada a otra factura", e.PO)
}

// IsDuplicatePO extrae un *DuplicatePOError de la cadena de errores, si existe.
func IsDuplicatePO(err error) (*DuplicatePOError, bool) {
	var dup *DuplicatePOError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}
