package costing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Granja-api/internal/domain/entity"
)

// MiembroPool es la presencia de un lote dentro de un mes calendario: cuántos
// días estuvo activo y el área promedio que ocupó en esos días. Es la base
// del prorrateo de gastos mensuales.
type MiembroPool struct {
	LoteID      string
	DiasActivos int
	AreaM2      decimal.Decimal // promedio ponderado por día
}

// DiasDelMes devuelve los días calendario del mes (1-12).
func DiasDelMes(anio, mes int) int {
	return time.Date(anio, time.Month(mes)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// soloFecha descarta la hora; el motor trabaja con fechas calendario.
func soloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PresenciaMensual calcula los días activos de un lote dentro del mes y el
// área promedio ocupada en esos días. El conjunto de corrales puede cambiar a
// mitad de mes, por eso el área se pondera día a día. Los lotes abiertos se
// acotan por la fecha de corte explícita; el motor nunca consulta el reloj.
func PresenciaMensual(lote *entity.Lote, asignaciones []entity.AsignacionCorral, anio, mes int, corte time.Time) (int, decimal.Decimal) {
	primerDia := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	ultimoDia := time.Date(anio, time.Month(mes), DiasDelMes(anio, mes), 0, 0, 0, 0, time.UTC)

	inicio := soloFecha(lote.FechaInicio)
	fin := soloFecha(corte)
	if lote.FechaCierre != nil {
		fin = soloFecha(*lote.FechaCierre)
	}

	// Intersección del período de vida del lote con el mes
	if inicio.Before(primerDia) {
		inicio = primerDia
	}
	if fin.After(ultimoDia) {
		fin = ultimoDia
	}
	if inicio.After(fin) {
		return 0, decimal.Zero
	}

	dias := 0
	sumaArea := decimal.Zero
	for dia := inicio; !dia.After(fin); dia = dia.AddDate(0, 0, 1) {
		dias++
		for i := range asignaciones {
			if asignaciones[i].OcupadoEn(dia) {
				sumaArea = sumaArea.Add(asignaciones[i].AreaM2)
			}
		}
	}
	// Área promedio = integral de área ocupada sobre los días activos
	area := sumaArea.Div(decimal.NewFromInt(int64(dias)))
	return dias, area
}

// PoolActivo devuelve la presencia mensual de todos los lotes con al menos un
// día activo en el mes, ordenada por ID de lote para que el prorrateo sea
// reproducible. Un lote activo sin corrales asignados queda en el pool con
// área cero: no acumula gasto compartido y no rompe la normalización.
func PoolActivo(lotes []*entity.Lote, asignacionesPorLote map[string][]entity.AsignacionCorral, anio, mes int, corte time.Time) []MiembroPool {
	pool := make([]MiembroPool, 0, len(lotes))
	for _, lote := range lotes {
		dias, area := PresenciaMensual(lote, asignacionesPorLote[lote.ID], anio, mes, corte)
		if dias == 0 {
			continue
		}
		pool = append(pool, MiembroPool{LoteID: lote.ID, DiasActivos: dias, AreaM2: area})
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].LoteID < pool[j].LoteID })
	return pool
}
