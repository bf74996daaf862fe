package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord representa un artículo de paca producido por el pipeline de
// importación. El pipeline es el único que construye registros; una vez
// emitidos no los muta (venta, resolución, etc. son flujos posteriores).
type InventoryRecord struct {
	ID        string
	CompanyID string
	Name      string

	// Identificación de paca (ver internal/domain/identifier).
	BatchNumber     string
	Format          string // identifier.FormatLegacy | identifier.FormatNumbered
	ProductSequence *int   // solo formato numerado: ordinal embebido en el origen
	ImportSequence  int    // contador 1..n por paca asignado en esta corrida
	GeneratedCode   string // código escaneable determinístico

	Quantity  int
	UnitPrice decimal.Decimal
	Category  string // código canónico (ver internal/domain/category)

	// Atributos descriptivos opcionales de la planilla.
	Brand string
	Color string
	Size  string

	// AnnotationText conserva la columna de observaciones tal cual, para
	// poder re-derivar estado; UserNotes es la columna de notas del usuario
	// y pasa sin tocar.
	AnnotationText string
	UserNotes      string

	// Desglose de cantidades por disposición. Salvo status == review (todo
	// en cero hasta resolver), la suma iguala a Quantity.
	AvailableQty int
	SoldQty      int
	DonatedQty   int
	LostQty      int
	ExpiredQty   int

	Status string // ver internal/domain/annotation
	SoldBy string
	SoldTo string

	CreatedAt time.Time
	UpdatedAt time.Time
}
