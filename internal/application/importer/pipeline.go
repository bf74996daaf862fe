// Package importer orquesta la importación y conciliación de planillas de
// pacas: por fila parsea el identificador, asigna secuencia, genera el código
// escaneable, normaliza categoría, infiere estado/atribución y detecta
// duplicados por clave de coincidencia; al final recalcula los acumulados por
// paca. El pipeline es síncrono, en memoria y no hace E/S: las filas llegan
// ya materializadas y los registros emitidos los persiste otra capa.
package importer

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pacas-api/internal/domain/annotation"
	"github.com/tu-usuario/pacas-api/internal/domain/category"
	"github.com/tu-usuario/pacas-api/internal/domain/entity"
	"github.com/tu-usuario/pacas-api/internal/domain/identifier"
	"github.com/tu-usuario/pacas-api/internal/domain/matchkey"
)

// Result salida de una corrida: registros emitidos, acumulados por paca y la
// lista de errores de fila. Los errores no abortan la corrida; el resultado
// siempre incluye los registros que sí se produjeron.
type Result struct {
	Records    []*entity.InventoryRecord
	Aggregates []*entity.BatchAggregate
	Errors     []string
}

// Pipeline procesa corridas de importación. Es seguro reusarlo entre
// corridas porque todo el estado mutable (contadores de secuencia, mapa de
// ocurrencias, acumulados) se construye fresco dentro de Run; corridas
// concurrentes no comparten nada.
type Pipeline struct {
	sheetLabel string
}

// NewPipeline construye el pipeline. sheetLabel identifica la hoja de origen
// en los mensajes de error.
func NewPipeline(sheetLabel string) *Pipeline {
	return &Pipeline{sheetLabel: sheetLabel}
}

// runState estado privado de una corrida. Vive exactamente lo que dura Run.
type runState struct {
	seq     map[string]int                    // paca -> último ImportSequence asignado
	seen    map[string]int                    // clave de coincidencia -> ocurrencias
	batches map[string]*entity.BatchAggregate // paca -> acumulado (creación lazy)
}

func newRunState() *runState {
	return &runState{
		seq:     make(map[string]int),
		seen:    make(map[string]int),
		batches: make(map[string]*entity.BatchAggregate),
	}
}

// Run procesa todas las filas y recalcula los acumulados. Una fila que falla
// se salta y queda anotada en Errors con su índice y hoja; nunca se emite un
// registro a medio construir.
func (p *Pipeline) Run(companyID string, rows []Row) Result {
	state := newRunState()
	now := time.Now()

	var res Result
	for _, row := range rows {
		rec, err := p.processRow(companyID, row, state, now)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("hoja %q fila %d: %v", p.sheetLabel, row.Index, err))
			continue
		}
		res.Records = append(res.Records, rec)
	}

	res.Aggregates = rollUp(state, res.Records, now)
	return res
}

// processRow aplica el algoritmo por fila (parseo, secuencia, código,
// categoría, estado, desglose, clave de coincidencia y sufijo de duplicado).
func (p *Pipeline) processRow(companyID string, row Row, state *runState, now time.Time) (*entity.InventoryRecord, error) {
	parsed := identifier.Parse(row.cell(colIdentifier))

	// Acumulado lazy: la primera fila que referencia la paca lo crea en cero.
	if _, ok := state.batches[parsed.BatchNumber]; !ok {
		state.batches[parsed.BatchNumber] = &entity.BatchAggregate{
			CompanyID:   companyID,
			BatchNumber: parsed.BatchNumber,
			TotalValue:  decimal.Zero,
		}
	}

	// Secuencia 1..n por paca, solo de esta corrida. Una fila que después
	// falle igual consume su número: la secuencia es estrictamente creciente
	// en orden de aparición.
	state.seq[parsed.BatchNumber]++
	importSeq := state.seq[parsed.BatchNumber]

	code := identifier.GenerateCode(parsed, importSeq)
	cat := category.Normalize(stringCell(row.cell(colCategory)))

	qty, err := intCell(row.cell(colQuantity), 1)
	if err != nil {
		return nil, fmt.Errorf("cantidad: %w", err)
	}
	price, err := decimalCell(row.cell(colUnitPrice))
	if err != nil {
		return nil, fmt.Errorf("precio: %w", err)
	}

	annotationText := stringCell(row.cell(colAnnotation))
	status := annotation.InferStatus(annotationText)
	attr := annotation.ExtractAttribution(annotationText)

	rec := &entity.InventoryRecord{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            stringCell(row.cell(colName)),
		BatchNumber:     parsed.BatchNumber,
		Format:          parsed.Format,
		ProductSequence: parsed.ProductSequence,
		ImportSequence:  importSeq,
		GeneratedCode:   code,
		Quantity:        qty,
		UnitPrice:       price,
		Category:        cat,
		Brand:           stringCell(row.cell(colBrand)),
		Color:           stringCell(row.cell(colColor)),
		Size:            stringCell(row.cell(colSize)),
		AnnotationText:  annotationText,
		UserNotes:       stringCell(row.cell(colUserNotes)),
		Status:          status,
		SoldBy:          attr.SoldBy,
		SoldTo:          attr.SoldTo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	applyDisposition(rec)

	// Duplicados: la clave se computa con el nombre sin sufijo, y es esa
	// clave la que se acumula en el mapa; solo cambia el nombre mostrado.
	key := matchkey.Derive(rec)
	if n := state.seen[key]; n >= 1 {
		rec.Name = fmt.Sprintf("%s (%d)", rec.Name, n)
	}
	state.seen[key]++

	return rec, nil
}

// applyDisposition vuelca la cantidad completa en el balde que corresponde al
// estado inferido. En review todo queda en cero hasta que alguien resuelva.
func applyDisposition(rec *entity.InventoryRecord) {
	switch rec.Status {
	case annotation.StatusSold:
		rec.SoldQty = rec.Quantity
	case annotation.StatusDonated:
		rec.DonatedQty = rec.Quantity
	case annotation.StatusLost:
		rec.LostQty = rec.Quantity
	case annotation.StatusExpired:
		rec.ExpiredQty = rec.Quantity
	case annotation.StatusReview:
		// sin desglose pendiente de resolución
	default:
		// available, reserved y promotional cuentan como disponibles
		rec.AvailableQty = rec.Quantity
	}
}

// rollUp recalcula los acumulados por paca desde cero sobre los registros
// emitidos. Las pacas vistas cuyas filas fallaron todas quedan en cero pero
// no se eliminan. Devuelve en orden numérico de paca para salida estable.
func rollUp(state *runState, records []*entity.InventoryRecord, now time.Time) []*entity.BatchAggregate {
	for _, rec := range records {
		agg := state.batches[rec.BatchNumber]
		agg.TotalRecords++
		agg.TotalUnits += rec.Quantity
		agg.TotalValue = agg.TotalValue.Add(rec.UnitPrice.Mul(decimal.NewFromInt(int64(rec.Quantity))))
		agg.SoldUnits += rec.SoldQty
		agg.AvailableUnits += rec.AvailableQty
	}

	out := make([]*entity.BatchAggregate, 0, len(state.batches))
	for _, agg := range state.batches {
		agg.UpdatedAt = now
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].BatchNumber)
		b, _ := strconv.Atoi(out[j].BatchNumber)
		return a < b
	})
	return out
}
