package dto

import "time"

// ImportSummaryResponse resumen de una importación de planilla. RowErrors es
// una advertencia, no un fallo: las filas válidas ya quedaron persistidas.
type ImportSummaryResponse struct {
	Records   int      `json:"records"`
	Batches   int      `json:"batches"`
	RowErrors []string `json:"row_errors,omitempty"`
}

// RecordResponse representación HTTP de un registro de inventario.
type RecordResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BatchNumber     string    `json:"batch_number"`
	Format          string    `json:"format"`
	ProductSequence *int      `json:"product_sequence,omitempty"`
	ImportSequence  int       `json:"import_sequence"`
	GeneratedCode   string    `json:"generated_code"`
	Quantity        int       `json:"quantity"`
	UnitPrice       string    `json:"unit_price"`
	Category        string    `json:"category"`
	Brand           string    `json:"brand,omitempty"`
	Color           string    `json:"color,omitempty"`
	Size            string    `json:"size,omitempty"`
	AnnotationText  string    `json:"annotation_text,omitempty"`
	UserNotes       string    `json:"user_notes,omitempty"`
	AvailableQty    int       `json:"available_qty"`
	SoldQty         int       `json:"sold_qty"`
	DonatedQty      int       `json:"donated_qty"`
	LostQty         int       `json:"lost_qty"`
	ExpiredQty      int       `json:"expired_qty"`
	Status          string    `json:"status"`
	SoldBy          string    `json:"sold_by,omitempty"`
	SoldTo          string    `json:"sold_to,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// BatchAggregateResponse representación HTTP del acumulado de una paca.
type BatchAggregateResponse struct {
	BatchNumber    string    `json:"batch_number"`
	TotalRecords   int       `json:"total_records"`
	TotalUnits     int       `json:"total_units"`
	TotalValue     string    `json:"total_value"`
	SoldUnits      int       `json:"sold_units"`
	AvailableUnits int       `json:"available_units"`
	UpdatedAt      time.Time `json:"updated_at"`
}
