package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/application/usecase"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

const testCompanyID = "00000000-0000-0000-0000-0000000000c1"

func buildSystemUseCase() (*usecase.SystemUseCase, *fakeSystemRepo, *fakeDeletedSystemRepo) {
	systems := newFakeSystemRepo()
	measurements := newFakeMeasurementRepo()
	deleted := newFakeDeletedSystemRepo()
	tx := &fakeTxRunner{tx: repository.Tx{Systems: systems, DeletedSystems: deleted}}
	return usecase.NewSystemUseCase(systems, measurements, deleted, tx), systems, deleted
}

// ──────────────────────────────────────────────────────────────────────────────
// Numeración secuencial por empresa
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sistemas sucesivos reciben 1, 2, 3 dentro de la misma empresa.
func TestSystemCreate_NumeracionSecuencial(t *testing.T) {
	uc, _, _ := buildSystemUseCase()

	for want := 1; want <= 3; want++ {
		resp, err := uc.Create(testCompanyID, dto.CreateSystemRequest{Name: "Automatización"})
		require.NoError(t, err)
		assert.Equal(t, want, resp.SystemNumber,
			"cada sistema debe recibir el siguiente número de la empresa")
	}
}

// Caso 2: la numeración es independiente entre empresas.
func TestSystemCreate_NumeracionPorEmpresa(t *testing.T) {
	uc, _, _ := buildSystemUseCase()

	r1, err := uc.Create("empresa-a", dto.CreateSystemRequest{Name: "A"})
	require.NoError(t, err)
	r2, err := uc.Create("empresa-b", dto.CreateSystemRequest{Name: "B"})
	require.NoError(t, err)

	assert.Equal(t, 1, r1.SystemNumber)
	assert.Equal(t, 1, r2.SystemNumber, "la otra empresa arranca en 1 igual")
}

// Caso 3: una colisión de número (inserción concurrente) se reintenta con el
// número recalculado en vez de fallar.
func TestSystemCreate_ColisionReintenta(t *testing.T) {
	uc, systems, _ := buildSystemUseCase()

	systems.dupNext = 1
	resp, err := uc.Create(testCompanyID, dto.CreateSystemRequest{Name: "Con carrera"})
	require.NoError(t, err, "una colisión puntual no debe propagarse al caller")
	assert.Equal(t, 1, resp.SystemNumber)
}

// Caso 4: colisiones persistentes agotan los reintentos y devuelven ErrDuplicate.
func TestSystemCreate_ColisionPersistenteFalla(t *testing.T) {
	uc, systems, _ := buildSystemUseCase()

	systems.dupNext = 10
	_, err := uc.Create(testCompanyID, dto.CreateSystemRequest{Name: "Sin suerte"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Status vacío queda en planning.
func TestSystemCreate_StatusPorDefecto(t *testing.T) {
	uc, _, _ := buildSystemUseCase()

	resp, err := uc.Create(testCompanyID, dto.CreateSystemRequest{Name: "Sin estado"})
	require.NoError(t, err)
	assert.Equal(t, "planning", resp.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado con snapshot y restauración
// ──────────────────────────────────────────────────────────────────────────────

func TestSystemDelete_CreaSnapshotYBorra(t *testing.T) {
	uc, systems, deleted := buildSystemUseCase()

	created, err := uc.Create(testCompanyID, dto.CreateSystemRequest{
		Name:    "Clasificador",
		Purpose: "Clasificar correos",
		AITools: []string{"GPT-4"},
	})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), testCompanyID, created.SystemNumber, "admin-1")
	require.NoError(t, err)

	assert.Empty(t, systems.systems, "el sistema debe desaparecer de la tabla viva")
	require.Len(t, deleted.snapshots, 1)
	for _, snap := range deleted.snapshots {
		assert.Equal(t, created.ID, snap.SystemID, "el snapshot referencia el id original")
		assert.Equal(t, "Clasificador", snap.Name)
		assert.Equal(t, "admin-1", snap.DeletedBy)
	}
}

func TestSystemDelete_InexistenteRetornaNotFound(t *testing.T) {
	uc, _, _ := buildSystemUseCase()
	err := uc.Delete(context.Background(), testCompanyID, 99, "admin-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La restauración reinserta solo los campos descriptivos: id y número frescos,
// progreso y métricas en cero.
func TestSystemRestore_IdentidadYMetricasFrescas(t *testing.T) {
	uc, systems, deleted := buildSystemUseCase()

	created, err := uc.Create(testCompanyID, dto.CreateSystemRequest{
		Name:    "Reportes",
		Purpose: "Generar reportes",
	})
	require.NoError(t, err)

	// Se le cargan métricas antes de borrar, que NO deben sobrevivir.
	cost := decimal.NewFromInt(500)
	_, err = uc.Update(testCompanyID, created.SystemNumber, dto.UpdateSystemRequest{
		Name: "Reportes", Purpose: "Generar reportes", Status: "operation",
		Progress: 80, ActualCostReduction: &cost,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), testCompanyID, created.SystemNumber, "admin-1"))

	// Otro sistema ocupa mientras tanto el siguiente número.
	other, err := uc.Create(testCompanyID, dto.CreateSystemRequest{Name: "Otro"})
	require.NoError(t, err)

	var snapshotID string
	for id := range deleted.snapshots {
		snapshotID = id
	}
	restored, err := uc.Restore(context.Background(), snapshotID)
	require.NoError(t, err)

	assert.NotEqual(t, created.ID, restored.ID, "la identidad original no se recicla")
	assert.Equal(t, other.SystemNumber+1, restored.SystemNumber, "recibe el siguiente número libre")
	assert.Equal(t, "Reportes", restored.Name)
	assert.Equal(t, "planning", restored.Status, "vuelve a planning")
	assert.Equal(t, 0, restored.Progress)
	assert.Nil(t, restored.ActualCostReduction, "las métricas medidas no sobreviven al ciclo borrar/restaurar")
	assert.Empty(t, deleted.snapshots, "el snapshot se consume al restaurar")
	assert.Len(t, systems.systems, 2)
}

// Restaurar el mismo snapshot dos veces: la segunda devuelve ErrNotFound.
func TestSystemRestore_DobleRestauracionFalla(t *testing.T) {
	uc, _, deleted := buildSystemUseCase()

	created, err := uc.Create(testCompanyID, dto.CreateSystemRequest{Name: "Única vez"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(context.Background(), testCompanyID, created.SystemNumber, "admin-1"))

	var snapshotID string
	for id := range deleted.snapshots {
		snapshotID = id
	}
	_, err = uc.Restore(context.Background(), snapshotID)
	require.NoError(t, err)

	_, err = uc.Restore(context.Background(), snapshotID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
