package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidState   = errors.New("operación inválida para el estado del lote")
	ErrDataIntegrity  = errors.New("referencia a un registro inexistente")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrCorralOccupied = errors.New("el corral ya está asignado a otro lote en ese período")
)
