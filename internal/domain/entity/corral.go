package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Corral es un encierro físico con área fija, asignable a un solo lote a la vez.
type Corral struct {
	ID        string
	Nombre    string
	AreaM2    decimal.Decimal
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AsignacionCorral vincula un lote con un corral durante el intervalo
// [FechaAsignacion, FechaLiberacion). FechaLiberacion es nil mientras el lote
// ocupa el corral. Para un mismo corral los intervalos de distintos lotes no
// se solapan.
type AsignacionCorral struct {
	ID               string
	LoteID           string
	CorralID         string
	FechaAsignacion  time.Time
	FechaLiberacion  *time.Time
	AreaM2           decimal.Decimal // área del corral al momento de consultar
	CreatedAt        time.Time
}

// OcupadoEn indica si la asignación cubre la fecha dada (intervalo semiabierto).
func (a *AsignacionCorral) OcupadoEn(fecha time.Time) bool {
	if fecha.Before(a.FechaAsignacion) {
		return false
	}
	return a.FechaLiberacion == nil || fecha.Before(*a.FechaLiberacion)
}
