package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeLoteRepo struct {
	lotes map[string]*entity.Lote
}

func newFakeLoteRepo(lotes ...*entity.Lote) *fakeLoteRepo {
	m := make(map[string]*entity.Lote)
	for _, l := range lotes {
		copia := *l
		m[l.ID] = &copia
	}
	return &fakeLoteRepo{lotes: m}
}

func (r *fakeLoteRepo) Create(lote *entity.Lote) error {
	copia := *lote
	r.lotes[lote.ID] = &copia
	return nil
}

func (r *fakeLoteRepo) GetByID(id string) (*entity.Lote, error) {
	l, ok := r.lotes[id]
	if !ok {
		return nil, nil
	}
	copia := *l
	return &copia, nil
}

func (r *fakeLoteRepo) GetForUpdate(id string) (*entity.Lote, error) { return r.GetByID(id) }

func (r *fakeLoteRepo) List(limit, offset int) ([]*entity.Lote, error) { return r.ListAll() }

func (r *fakeLoteRepo) ListAll() ([]*entity.Lote, error) {
	out := make([]*entity.Lote, 0, len(r.lotes))
	for _, l := range r.lotes {
		copia := *l
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeLoteRepo) Update(lote *entity.Lote) error {
	copia := *lote
	r.lotes[lote.ID] = &copia
	return nil
}

func (r *fakeLoteRepo) Cerrar(id string, fechaCierre time.Time) error {
	l := r.lotes[id]
	l.Estado = entity.LoteEstadoCerrado
	l.FechaCierre = &fechaCierre
	return nil
}

type fakeAsignacionRepo struct {
	asignaciones []entity.AsignacionCorral
	liberadas    map[string]time.Time
}

func newFakeAsignacionRepo() *fakeAsignacionRepo {
	return &fakeAsignacionRepo{liberadas: make(map[string]time.Time)}
}

func (r *fakeAsignacionRepo) Asignar(a *entity.AsignacionCorral) error {
	for i := range r.asignaciones {
		existente := &r.asignaciones[i]
		if existente.CorralID == a.CorralID && existente.FechaLiberacion == nil {
			return domain.ErrCorralOccupied
		}
	}
	r.asignaciones = append(r.asignaciones, *a)
	return nil
}

func (r *fakeAsignacionRepo) Liberar(loteID string, fecha time.Time) error {
	r.liberadas[loteID] = fecha
	for i := range r.asignaciones {
		if r.asignaciones[i].LoteID == loteID && r.asignaciones[i].FechaLiberacion == nil {
			f := fecha
			r.asignaciones[i].FechaLiberacion = &f
		}
	}
	return nil
}

func (r *fakeAsignacionRepo) ListByLote(loteID string) ([]entity.AsignacionCorral, error) {
	var out []entity.AsignacionCorral
	for _, a := range r.asignaciones {
		if a.LoteID == loteID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAsignacionRepo) ListAll() (map[string][]entity.AsignacionCorral, error) {
	out := make(map[string][]entity.AsignacionCorral)
	for _, a := range r.asignaciones {
		out[a.LoteID] = append(out[a.LoteID], a)
	}
	return out, nil
}

type fakeCosechaRepo struct {
	cosechas []entity.Cosecha
}

func (r *fakeCosechaRepo) Create(c *entity.Cosecha) error {
	r.cosechas = append(r.cosechas, *c)
	return nil
}

func (r *fakeCosechaRepo) GetByID(id string) (*entity.Cosecha, error) {
	for _, c := range r.cosechas {
		if c.ID == id {
			copia := c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeCosechaRepo) ListByLote(loteID string) ([]entity.Cosecha, error) {
	var out []entity.Cosecha
	for _, c := range r.cosechas {
		if c.LoteID == loteID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCosechaRepo) TotalAnimalesByLote(loteID string) (int, error) {
	total := 0
	for _, c := range r.cosechas {
		if c.LoteID == loteID {
			total += c.CantidadAnimales
		}
	}
	return total, nil
}

func (r *fakeCosechaRepo) Delete(id string) error {
	for i, c := range r.cosechas {
		if c.ID == id {
			r.cosechas = append(r.cosechas[:i], r.cosechas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeMortalidadRepo struct {
	registros []entity.Mortalidad
}

func (r *fakeMortalidadRepo) Create(m *entity.Mortalidad) error {
	r.registros = append(r.registros, *m)
	return nil
}

func (r *fakeMortalidadRepo) GetByID(id string) (*entity.Mortalidad, error) {
	for _, m := range r.registros {
		if m.ID == id {
			copia := m
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeMortalidadRepo) ListByLote(loteID string) ([]entity.Mortalidad, error) {
	var out []entity.Mortalidad
	for _, m := range r.registros {
		if m.LoteID == loteID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMortalidadRepo) TotalByLote(loteID string) (int, error) {
	total := 0
	for _, m := range r.registros {
		if m.LoteID == loteID {
			total += m.Cantidad
		}
	}
	return total, nil
}

func (r *fakeMortalidadRepo) Delete(id string) error {
	for i, m := range r.registros {
		if m.ID == id {
			r.registros = append(r.registros[:i], r.registros[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeConsumoRepo struct {
	consumos []entity.ConsumoAlimento
}

func (r *fakeConsumoRepo) Create(c *entity.ConsumoAlimento) error {
	r.consumos = append(r.consumos, *c)
	return nil
}

func (r *fakeConsumoRepo) GetByID(id string) (*entity.ConsumoAlimento, error) {
	for _, c := range r.consumos {
		if c.ID == id {
			copia := c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeConsumoRepo) ListByLote(loteID string) ([]entity.ConsumoAlimento, error) {
	var out []entity.ConsumoAlimento
	for _, c := range r.consumos {
		if c.LoteID == loteID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConsumoRepo) Delete(id string) error {
	for i, c := range r.consumos {
		if c.ID == id {
			r.consumos = append(r.consumos[:i], r.consumos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCorralRepo struct {
	corrales map[string]*entity.Corral
}

func (r *fakeCorralRepo) Create(c *entity.Corral) error { r.corrales[c.ID] = c; return nil }
func (r *fakeCorralRepo) GetByID(id string) (*entity.Corral, error) {
	c, ok := r.corrales[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCorralRepo) List(limit, offset int) ([]*entity.Corral, error) { return nil, nil }
func (r *fakeCorralRepo) Update(c *entity.Corral) error                    { return nil }

type fakeAlimentoRepo struct {
	alimentos map[string]*entity.Alimento
}

func (r *fakeAlimentoRepo) Create(a *entity.Alimento) error { r.alimentos[a.ID] = a; return nil }
func (r *fakeAlimentoRepo) GetByID(id string) (*entity.Alimento, error) {
	a, ok := r.alimentos[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}
func (r *fakeAlimentoRepo) List(limit, offset int) ([]*entity.Alimento, error) { return nil, nil }
func (r *fakeAlimentoRepo) MapAll() (map[string]*entity.Alimento, error)       { return r.alimentos, nil }
func (r *fakeAlimentoRepo) Update(a *entity.Alimento) error                    { return nil }

// fakeTxRunner ejecuta el callback directamente sobre los fakes; la
// atomicidad real la cubre el adaptador de PostgreSQL.
type fakeTxRunner struct {
	loteRepo       *fakeLoteRepo
	asignacionRepo *fakeAsignacionRepo
	cosechaRepo    *fakeCosechaRepo
	mortalidadRepo *fakeMortalidadRepo
	consumoRepo    *fakeConsumoRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	loteRepo repository.LoteRepository,
	asignacionRepo repository.AsignacionCorralRepository,
	cosechaRepo repository.CosechaRepository,
	mortalidadRepo repository.MortalidadRepository,
	consumoRepo repository.ConsumoAlimentoRepository,
) error) error {
	return fn(r.loteRepo, r.asignacionRepo, r.cosechaRepo, r.mortalidadRepo, r.consumoRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func fecha(anio, mes, dia int) time.Time {
	return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func armarUseCase(lotes ...*entity.Lote) (*LoteUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		loteRepo:       newFakeLoteRepo(lotes...),
		asignacionRepo: newFakeAsignacionRepo(),
		cosechaRepo:    &fakeCosechaRepo{},
		mortalidadRepo: &fakeMortalidadRepo{},
		consumoRepo:    &fakeConsumoRepo{},
	}
	corralRepo := &fakeCorralRepo{corrales: map[string]*entity.Corral{
		"corral-1": {ID: "corral-1", Nombre: "C1", AreaM2: dec("100"), Activo: true},
	}}
	alimentoRepo := &fakeAlimentoRepo{alimentos: map[string]*entity.Alimento{
		"al-1": {ID: "al-1", Nombre: "engorde x40", Tipo: entity.AlimentoEngorde,
			CostoPorBulto: dec("95000"), PesoBultoKg: dec("40"), Activo: true},
	}}
	return NewLoteUseCase(runner, runner.loteRepo, corralRepo, alimentoRepo), runner
}

func loteActivo(id string) *entity.Lote {
	return &entity.Lote{
		ID:                  id,
		NumeroLote:          "L-" + id,
		FechaInicio:         fecha(2024, 11, 1),
		AnimalesIniciales:   100,
		PesoPromedioInicial: dec("25"),
		CantidadMachos:      50,
		CantidadHembras:     50,
		CostoLechones:       dec("10000000"),
		Estado:              entity.LoteEstadoActivo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso feliz: crear un lote con un corral asignado desde la fecha de inicio.
func TestCrearLote_ConCorral(t *testing.T) {
	uc, runner := armarUseCase()

	lote, err := uc.CrearLote(context.Background(), CrearLoteInput{
		NumeroLote:          "L-2024-07",
		FechaInicio:         fecha(2024, 11, 1),
		AnimalesIniciales:   100,
		PesoPromedioInicial: dec("25"),
		CantidadMachos:      60,
		CantidadHembras:     40,
		CostoLechones:       dec("10000000"),
		CorralesIDs:         []string{"corral-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.LoteEstadoActivo, lote.Estado)
	asigs, _ := runner.asignacionRepo.ListByLote(lote.ID)
	require.Len(t, asigs, 1)
	assert.Equal(t, "corral-1", asigs[0].CorralID)
	assert.Nil(t, asigs[0].FechaLiberacion)
}

// machos + hembras debe igualar los animales iniciales.
func TestCrearLote_SexosNoCuadran(t *testing.T) {
	uc, _ := armarUseCase()

	_, err := uc.CrearLote(context.Background(), CrearLoteInput{
		NumeroLote:          "L-2024-08",
		FechaInicio:         fecha(2024, 11, 1),
		AnimalesIniciales:   100,
		PesoPromedioInicial: dec("25"),
		CantidadMachos:      60,
		CantidadHembras:     50,
		CostoLechones:       dec("10000000"),
		CorralesIDs:         []string{"corral-1"},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un lote sin corrales no se puede crear.
func TestCrearLote_SinCorrales(t *testing.T) {
	uc, _ := armarUseCase()

	_, err := uc.CrearLote(context.Background(), CrearLoteInput{
		NumeroLote:          "L-2024-09",
		FechaInicio:         fecha(2024, 11, 1),
		AnimalesIniciales:   10,
		PesoPromedioInicial: dec("25"),
		CantidadMachos:      5,
		CantidadHembras:     5,
		CostoLechones:       dec("1000000"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cosecha normal: descuenta cupo pero no cierra el lote.
func TestRegistrarCosecha_Parcial(t *testing.T) {
	uc, runner := armarUseCase(loteActivo("A"))

	cosecha, err := uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID:           "A",
		Fecha:            fecha(2025, 2, 10),
		Tipo:             entity.CosechaCabezas,
		CantidadAnimales: 30,
		PesoTotalKg:      dec("3300"),
	})

	require.NoError(t, err)
	assert.False(t, cosecha.EsUltimaCosecha)
	lote, _ := runner.loteRepo.GetByID("A")
	assert.Equal(t, entity.LoteEstadoActivo, lote.Estado)
	assert.Nil(t, lote.FechaCierre)
}

// La última cosecha cierra el lote con la fecha de la cosecha y libera los
// corrales en esa misma fecha.
func TestRegistrarCosecha_UltimaCierraLote(t *testing.T) {
	uc, runner := armarUseCase(loteActivo("A"))
	require.NoError(t, runner.asignacionRepo.Asignar(&entity.AsignacionCorral{
		ID: "asig-1", LoteID: "A", CorralID: "corral-1",
		FechaAsignacion: fecha(2024, 11, 1), AreaM2: dec("100"),
	}))

	fechaCosecha := fecha(2025, 3, 15)
	_, err := uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID:           "A",
		Fecha:            fechaCosecha,
		Tipo:             entity.CosechaCabezas,
		CantidadAnimales: 90,
		PesoTotalKg:      dec("9900"),
		EsUltimaCosecha:  true,
	})

	require.NoError(t, err)
	lote, _ := runner.loteRepo.GetByID("A")
	assert.Equal(t, entity.LoteEstadoCerrado, lote.Estado)
	require.NotNil(t, lote.FechaCierre)
	assert.True(t, lote.FechaCierre.Equal(fechaCosecha), "cierre = %s", lote.FechaCierre)
	liberada, ok := runner.asignacionRepo.liberadas["A"]
	require.True(t, ok, "los corrales deben liberarse con la última cosecha")
	assert.True(t, liberada.Equal(fechaCosecha))
}

// Sobre un lote cerrado toda mutación falla con error de estado.
func TestLoteCerrado_RechazaMutaciones(t *testing.T) {
	lote := loteActivo("A")
	cierre := fecha(2025, 3, 15)
	lote.Estado = entity.LoteEstadoCerrado
	lote.FechaCierre = &cierre
	uc, _ := armarUseCase(lote)

	_, err := uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID: "A", Fecha: fecha(2025, 3, 16), Tipo: entity.CosechaColas,
		CantidadAnimales: 1, PesoTotalKg: dec("90"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = uc.RegistrarMortalidad(context.Background(), RegistrarMortalidadInput{
		LoteID: "A", Fecha: fecha(2025, 3, 16), Cantidad: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = uc.RegistrarConsumo(context.Background(), RegistrarConsumoInput{
		LoteID: "A", AlimentoID: "al-1", Fecha: fecha(2025, 3, 16), CantidadBultos: dec("2"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = uc.CerrarLote(context.Background(), "A", fecha(2025, 3, 17))
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = uc.ActualizarLote(context.Background(), "A", ActualizarLoteInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// Cosechas y mortalidad nunca pueden superar los animales iniciales.
func TestCupoDeAnimales_SeRespeta(t *testing.T) {
	uc, _ := armarUseCase(loteActivo("A"))

	_, err := uc.RegistrarMortalidad(context.Background(), RegistrarMortalidadInput{
		LoteID: "A", Fecha: fecha(2024, 12, 1), Cantidad: 5,
	})
	require.NoError(t, err)

	_, err = uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID: "A", Fecha: fecha(2025, 2, 1), Tipo: entity.CosechaCabezas,
		CantidadAnimales: 90, PesoTotalKg: dec("9900"),
	})
	require.NoError(t, err)

	// Quedan 5 vivos: una cosecha de 6 debe rechazarse
	_, err = uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID: "A", Fecha: fecha(2025, 2, 20), Tipo: entity.CosechaColas,
		CantidadAnimales: 6, PesoTotalKg: dec("500"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Igual que una mortalidad de 6
	_, err = uc.RegistrarMortalidad(context.Background(), RegistrarMortalidadInput{
		LoteID: "A", Fecha: fecha(2025, 2, 20), Cantidad: 6,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Pero 5 exactos sí caben
	_, err = uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID: "A", Fecha: fecha(2025, 2, 21), Tipo: entity.CosechaColas,
		CantidadAnimales: 5, PesoTotalKg: dec("400"), EsUltimaCosecha: true,
	})
	assert.NoError(t, err)
}

// Cierre explícito de un lote activo.
func TestCerrarLote_Explicito(t *testing.T) {
	uc, runner := armarUseCase(loteActivo("A"))

	cerrado, err := uc.CerrarLote(context.Background(), "A", fecha(2025, 1, 31))

	require.NoError(t, err)
	assert.Equal(t, entity.LoteEstadoCerrado, cerrado.Estado)
	lote, _ := runner.loteRepo.GetByID("A")
	assert.Equal(t, entity.LoteEstadoCerrado, lote.Estado)
}

// La fecha de cierre no puede ser anterior al inicio del lote.
func TestCerrarLote_FechaAnteriorAlInicio(t *testing.T) {
	uc, _ := armarUseCase(loteActivo("A"))

	_, err := uc.CerrarLote(context.Background(), "A", fecha(2024, 10, 15))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Lote inexistente → ErrNotFound.
func TestRegistrarCosecha_LoteInexistente(t *testing.T) {
	uc, _ := armarUseCase()

	_, err := uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID: "no-existe", Fecha: fecha(2025, 1, 1), Tipo: entity.CosechaMedia,
		CantidadAnimales: 1, PesoTotalKg: dec("100"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una cosecha no puede estar fechada antes del inicio del lote; de lo
// contrario una última cosecha produciría un cierre anterior al inicio.
func TestRegistrarCosecha_FechaAnteriorAlInicio(t *testing.T) {
	uc, runner := armarUseCase(loteActivo("A"))

	_, err := uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID: "A", Fecha: fecha(2024, 10, 15), Tipo: entity.CosechaCabezas,
		CantidadAnimales: 10, PesoTotalKg: dec("1100"), EsUltimaCosecha: true,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	lote, _ := runner.loteRepo.GetByID("A")
	assert.Equal(t, entity.LoteEstadoActivo, lote.Estado)
	assert.Empty(t, runner.cosechaRepo.cosechas)
}

// Un registro de consumo se puede borrar mientras el lote sigue activo.
func TestEliminarConsumo_LoteActivo(t *testing.T) {
	uc, runner := armarUseCase(loteActivo("A"))
	consumo, err := uc.RegistrarConsumo(context.Background(), RegistrarConsumoInput{
		LoteID: "A", AlimentoID: "al-1", Fecha: fecha(2024, 12, 1), CantidadBultos: dec("2"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.EliminarConsumo(context.Background(), consumo.ID))
	assert.Empty(t, runner.consumoRepo.consumos)
}

// Igual para mortalidad: el borrado devuelve el cupo de animales vivos.
func TestEliminarMortalidad_LoteActivo(t *testing.T) {
	uc, runner := armarUseCase(loteActivo("A"))
	mortalidad, err := uc.RegistrarMortalidad(context.Background(), RegistrarMortalidadInput{
		LoteID: "A", Fecha: fecha(2024, 12, 1), Cantidad: 5,
	})
	require.NoError(t, err)

	require.NoError(t, uc.EliminarMortalidad(context.Background(), mortalidad.ID))
	assert.Empty(t, runner.mortalidadRepo.registros)

	total, _ := runner.mortalidadRepo.TotalByLote("A")
	assert.Equal(t, 0, total)
}

// El ledger de un lote cerrado es inmutable: borrar una cosecha falla.
func TestEliminarCosecha_LoteCerrado(t *testing.T) {
	uc, runner := armarUseCase(loteActivo("A"))
	cosecha, err := uc.RegistrarCosecha(context.Background(), RegistrarCosechaInput{
		LoteID: "A", Fecha: fecha(2025, 3, 15), Tipo: entity.CosechaCabezas,
		CantidadAnimales: 90, PesoTotalKg: dec("9900"), EsUltimaCosecha: true,
	})
	require.NoError(t, err)

	err = uc.EliminarCosecha(context.Background(), cosecha.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Len(t, runner.cosechaRepo.cosechas, 1)
}

// Borrar un registro inexistente → ErrNotFound.
func TestEliminarMortalidad_NoExiste(t *testing.T) {
	uc, _ := armarUseCase(loteActivo("A"))

	err := uc.EliminarMortalidad(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Consumo contra un alimento inactivo se rechaza; el histórico no se toca.
func TestRegistrarConsumo_AlimentoInactivo(t *testing.T) {
	uc, _ := armarUseCase(loteActivo("A"))
	uc.alimentoRepo.(*fakeAlimentoRepo).alimentos["al-1"].Activo = false

	_, err := uc.RegistrarConsumo(context.Background(), RegistrarConsumoInput{
		LoteID: "A", AlimentoID: "al-1", Fecha: fecha(2024, 12, 1), CantidadBultos: dec("2"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
