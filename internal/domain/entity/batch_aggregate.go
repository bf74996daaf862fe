package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchAggregate acumulados por paca, recalculados al final de cada corrida
// de importación sobre el conjunto completo de registros emitidos (no es
// incremental, por eso es idempotente respecto del orden de filas).
type BatchAggregate struct {
	CompanyID      string
	BatchNumber    string
	TotalRecords   int
	TotalUnits     int
	TotalValue     decimal.Decimal // sum(Quantity * UnitPrice)
	SoldUnits      int
	AvailableUnits int
	UpdatedAt      time.Time
}
