package domain

// FileKind distinguishes the two kinds of data files the mapper knows about.
type FileKind string

const (
	FileKindShipment FileKind = "shipment"
	FileKindInvoice  FileKind = "invoice"
)

// Valid reports whether k is one of the known file kinds.
func (k FileKind) Valid() bool {
	return k == FileKindShipment || k == FileKindInvoice
}

// UploadFormat represents the allowed upload file formats.
type UploadFormat string

const (
	UploadFormatCSV  UploadFormat = "csv"
	UploadFormatXLSX UploadFormat = "xlsx"
)

// AllowedUploadExtensions maps file extensions (without dot) to UploadFormat.
var AllowedUploadExtensions = map[string]UploadFormat{
	"csv":  UploadFormatCSV,
	"xlsx": UploadFormatXLSX,
}

// System column names for shipment files.
const (
	ColOrderCode     = "order_code"
	ColCustomerName  = "customer_name"
	ColStatus        = "status"
	ColAmount        = "amount"
	ColShippingFee   = "shipping_fee"
	ColDeliveredDate = "delivered_date"
)

// System column names for invoice files. The camelCase orderNumber is the
// historical name carried by the reference schema format.
const (
	ColOrderNumber = "orderNumber"
	ColOrderAmount = "order_amount"
)

// StatusDelivered is the shipment status that marks a shipment as delivered.
// Comparison is case-insensitive.
const StatusDelivered = "delivered"
