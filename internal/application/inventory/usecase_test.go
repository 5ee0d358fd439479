package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/acrilico-stock-api/internal/application/inventory"
	"github.com/jhoicas/acrilico-stock-api/internal/domain"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore simula la capa Postgres: un slice de láminas y otro de movimientos.
// fakeTxRunner ejecuta el callback directamente sobre el store (sin transacción
// real); alcanza para verificar la lógica de fusión, validación y rechazo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	sheets    []*entity.Sheet
	movements []*entity.StockMovement
}

type fakeSheetRepo struct{ store *fakeStore }

func (r *fakeSheetRepo) Create(_ context.Context, s *entity.Sheet) error {
	for _, existing := range r.store.sheets {
		if existing.SameStockLine(s.Type, s.Thickness, s.Size) {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.store.sheets = append(r.store.sheets, &cp)
	return nil
}

func (r *fakeSheetRepo) GetByID(_ context.Context, id string) (*entity.Sheet, error) {
	for _, s := range r.store.sheets {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSheetRepo) GetByStockLineForUpdate(_ context.Context, sheetType string, thickness decimal.Decimal, size string) (*entity.Sheet, error) {
	for _, s := range r.store.sheets {
		if s.SameStockLine(sheetType, thickness, size) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSheetRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sheet, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeSheetRepo) Update(_ context.Context, s *entity.Sheet) error {
	for i, existing := range r.store.sheets {
		if existing.ID == s.ID {
			cp := *s
			r.store.sheets[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSheetRepo) UpdateLocation(_ context.Context, id, location string) error {
	for _, s := range r.store.sheets {
		if s.ID == id {
			s.Location = location
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSheetRepo) List(_ context.Context) ([]*entity.Sheet, error) {
	return r.store.sheets, nil
}

func (r *fakeSheetRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.store.sheets {
		if s.ID == id {
			r.store.sheets = append(r.store.sheets[:i], r.store.sheets[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSheetRepo) TotalQuantity(_ context.Context) (int64, error) {
	var total int64
	for _, s := range r.store.sheets {
		total += s.Quantity
	}
	return total, nil
}

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.StockMovement, error) {
	if limit <= 0 || limit > len(r.store.movements) {
		return r.store.movements, nil
	}
	return r.store.movements[len(r.store.movements)-limit:], nil
}

func (r *fakeMovementRepo) ListBetween(_ context.Context, from, to time.Time) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.store.movements {
		if !m.CreatedAt.Before(from) && m.CreatedAt.Before(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTxRunner struct{ store *fakeStore }

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(repository.SheetRepository, repository.MovementRepository) error) error {
	return fn(&fakeSheetRepo{store: tr.store}, &fakeMovementRepo{store: tr.store})
}

// ── helpers ───────────────────────────────────────────────────────────────────

var testActor = appinv.Actor{ID: "actor-1", Name: "User abcd"}

func newUseCase() (*appinv.ReconcileStockUseCase, *fakeStore) {
	store := &fakeStore{}
	return appinv.NewReconcileStockUseCase(&fakeTxRunner{store: store}, nil), store
}

func receiveCristal(qty int64) appinv.ReceiveInput {
	return appinv.ReceiveInput{
		Type:      "Cristal",
		Thickness: decimal.NewFromInt(3),
		Size:      "1220x2440",
		Location:  "Rack A-3",
		Quantity:  qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Receive — alta de mercancía
// ──────────────────────────────────────────────────────────────────────────────

// Línea de stock inexistente: se crea la lámina y NO se agrega movimiento
// (el alta inicial queda auditada por el created_at de la propia fila).
func TestReceive_LineaNueva_CreaSinMovimiento(t *testing.T) {
	uc, store := newUseCase()

	err := uc.Receive(context.Background(), testActor, receiveCristal(10))
	require.NoError(t, err)

	require.Len(t, store.sheets, 1, "debe crearse exactamente una lámina")
	assert.Equal(t, int64(10), store.sheets[0].Quantity)
	assert.Equal(t, "Rack A-3", store.sheets[0].Location)
	assert.NotNil(t, store.sheets[0].LastIn, "el alta debe estampar last_in")
	assert.Empty(t, store.movements, "el alta de una línea nueva no genera movimiento")
}

// Línea de stock existente (misma tripleta type+thickness+size): se fusiona
// sumando la cantidad y se agrega exactamente un movimiento INPUT.
func TestReceive_LineaExistente_FusionaYRegistraINPUT(t *testing.T) {
	uc, store := newUseCase()
	require.NoError(t, uc.Receive(context.Background(), testActor, receiveCristal(10)))

	err := uc.Receive(context.Background(), testActor, receiveCristal(5))
	require.NoError(t, err)

	require.Len(t, store.sheets, 1, "la fusión no debe duplicar la lámina")
	assert.Equal(t, int64(15), store.sheets[0].Quantity, "10 + 5 = 15")

	require.Len(t, store.movements, 1, "la fusión agrega exactamente un movimiento")
	mov := store.movements[0]
	assert.Equal(t, entity.MovementKindINPUT, mov.Kind)
	assert.Equal(t, int64(5), mov.Quantity)
	assert.Equal(t, store.sheets[0].ID, mov.SheetID)
	assert.Equal(t, "Cristal", mov.SheetType, "el movimiento lleva el snapshot descriptivo")
	assert.Equal(t, testActor.ID, mov.ActorID)
}

// Espesor distinto = línea distinta: no se fusiona aunque type y size coincidan.
func TestReceive_EspesorDistinto_NoFusiona(t *testing.T) {
	uc, store := newUseCase()
	require.NoError(t, uc.Receive(context.Background(), testActor, receiveCristal(10)))

	in := receiveCristal(4)
	in.Thickness = decimal.NewFromFloat(5.5)
	require.NoError(t, uc.Receive(context.Background(), testActor, in))

	assert.Len(t, store.sheets, 2, "espesores distintos son líneas de stock distintas")
}

// La comparación del tipo es sensible a mayúsculas: "cristal" != "Cristal".
func TestReceive_TipoCaseSensitive_NoFusiona(t *testing.T) {
	uc, store := newUseCase()
	require.NoError(t, uc.Receive(context.Background(), testActor, receiveCristal(10)))

	in := receiveCristal(4)
	in.Type = "cristal"
	require.NoError(t, uc.Receive(context.Background(), testActor, in))

	assert.Len(t, store.sheets, 2)
}

func TestReceive_ValidacionRechazada(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()

	casos := map[string]appinv.ReceiveInput{
		"tipo vacío":        {Type: "  ", Thickness: decimal.NewFromInt(3), Size: "1220x2440", Location: "Rack A", Quantity: 1},
		"tamaño vacío":      {Type: "Cristal", Thickness: decimal.NewFromInt(3), Size: "", Location: "Rack A", Quantity: 1},
		"ubicación vacía":   {Type: "Cristal", Thickness: decimal.NewFromInt(3), Size: "1220x2440", Location: "", Quantity: 1},
		"espesor cero":      {Type: "Cristal", Thickness: decimal.Zero, Size: "1220x2440", Location: "Rack A", Quantity: 1},
		"espesor negativo":  {Type: "Cristal", Thickness: decimal.NewFromInt(-3), Size: "1220x2440", Location: "Rack A", Quantity: 1},
		"cantidad cero":     {Type: "Cristal", Thickness: decimal.NewFromInt(3), Size: "1220x2440", Location: "Rack A", Quantity: 0},
		"cantidad negativa": {Type: "Cristal", Thickness: decimal.NewFromInt(3), Size: "1220x2440", Location: "Rack A", Quantity: -5},
	}

	for nombre, in := range casos {
		t.Run(nombre, func(t *testing.T) {
			err := uc.Receive(ctx, testActor, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, store.sheets, "ninguna entrada inválida debe escribir")
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust — ajustes y retiros
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_OUTPUT_DescuentaYRegistra(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	require.NoError(t, uc.Receive(ctx, testActor, receiveCristal(15)))
	sheetID := store.sheets[0].ID

	err := uc.Adjust(ctx, testActor, appinv.AdjustInput{
		SheetID:  sheetID,
		Kind:     entity.MovementKindOUTPUT,
		Quantity: 3,
		Note:     "corte para pedido 42",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), store.sheets[0].Quantity)
	assert.NotNil(t, store.sheets[0].LastOut, "la salida debe estampar last_out")

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementKindOUTPUT, mov.Kind)
	assert.Equal(t, int64(3), mov.Quantity)
	assert.Equal(t, "corte para pedido 42", mov.Note)
}

// Retiro mayor al stock actual: se rechaza sin tocar la cantidad ni agregar
// movimiento.
func TestAdjust_OUTPUT_StockInsuficiente_RechazaSinEscribir(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	require.NoError(t, uc.Receive(ctx, testActor, receiveCristal(15)))
	sheetID := store.sheets[0].ID

	err := uc.Adjust(ctx, testActor, appinv.AdjustInput{
		SheetID:  sheetID,
		Kind:     entity.MovementKindOUTPUT,
		Quantity: 20,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(15), store.sheets[0].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, store.movements, "el rechazo no debe dejar movimiento")
}

// Retirar exactamente todo el stock es válido: la lámina queda en cero.
func TestAdjust_OUTPUT_RetiroTotal_DejaCero(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	require.NoError(t, uc.Receive(ctx, testActor, receiveCristal(15)))

	err := uc.Adjust(ctx, testActor, appinv.AdjustInput{
		SheetID:  store.sheets[0].ID,
		Kind:     entity.MovementKindOUTPUT,
		Quantity: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.sheets[0].Quantity)
}

func TestAdjust_INPUT_Suma(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	require.NoError(t, uc.Receive(ctx, testActor, receiveCristal(15)))

	err := uc.Adjust(ctx, testActor, appinv.AdjustInput{
		SheetID:  store.sheets[0].ID,
		Kind:     entity.MovementKindINPUT,
		Quantity: 5,
		Note:     "ajuste de conteo",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), store.sheets[0].Quantity)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementKindINPUT, store.movements[0].Kind)
}

func TestAdjust_LaminaInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newUseCase()

	err := uc.Adjust(context.Background(), testActor, appinv.AdjustInput{
		SheetID:  "no-existe",
		Kind:     entity.MovementKindOUTPUT,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_KindInvalido_Rechaza(t *testing.T) {
	uc, _ := newUseCase()

	err := uc.Adjust(context.Background(), testActor, appinv.AdjustInput{
		SheetID:  "whatever",
		Kind:     "TRANSFER",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_CantidadNoPositiva_Rechaza(t *testing.T) {
	uc, _ := newUseCase()

	for _, qty := range []int64{0, -3} {
		err := uc.Adjust(context.Background(), testActor, appinv.AdjustInput{
			SheetID:  "whatever",
			Kind:     entity.MovementKindINPUT,
			Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
