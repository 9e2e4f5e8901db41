// Package mapper applies the configured source-column to system-column
// mappings to uploaded rows, producing canonical typed records. It is a pure
// transform over the mapping state supplied by the caller: it never touches
// storage itself.
package mapper

import (
	"strings"

	"shiprecon/internal/domain"
)

// RequiredColumns returns the fixed set of system columns a file kind must
// provide after mapping.
func RequiredColumns(kind domain.FileKind) []string {
	switch kind {
	case domain.FileKindShipment:
		return []string{
			domain.ColOrderCode,
			domain.ColCustomerName,
			domain.ColStatus,
			domain.ColAmount,
			domain.ColShippingFee,
			domain.ColDeliveredDate,
		}
	case domain.FileKindInvoice:
		return []string{domain.ColOrderNumber, domain.ColOrderAmount}
	default:
		return nil
	}
}

// HasValidMappings is the gate that unlocks uploads. It is deliberately
// looser than ValidateUploadedData: it only requires that both file kinds
// have at least one mapping and that the two key columns (order_code for
// shipments, orderNumber for invoices) are mapped. A mapping set can pass
// this gate and still fail ingestion on the full required-column check.
func HasValidMappings(rules []domain.MappingRule) bool {
	var shipmentCount, invoiceCount int
	var hasOrderCode, hasOrderNumber bool

	for _, r := range rules {
		switch r.FileKind {
		case domain.FileKindShipment:
			shipmentCount++
			if r.SystemColumn == domain.ColOrderCode {
				hasOrderCode = true
			}
		case domain.FileKindInvoice:
			invoiceCount++
			if r.SystemColumn == domain.ColOrderNumber {
				hasOrderNumber = true
			}
		}
	}
	return shipmentCount > 0 && invoiceCount > 0 && hasOrderCode && hasOrderNumber
}

// ValidateUploadedData projects raw uploaded rows through the mappings for
// the given file kind and validates the result. It fails with a MappingError
// when a required system column is unmapped or a mapped source column is
// absent from the uploaded file, and with a ValidationError when any row has
// a required field that is missing or blank after trimming. A single bad row
// rejects the whole file.
//
// The returned rows are canonical: keyed by system column, in input order,
// with unmapped source columns dropped.
func ValidateUploadedData(kind domain.FileKind, rules []domain.MappingRule, columns []string, rows []map[string]string) ([]map[string]string, error) {
	mappings := mappingIndex(kind, rules)
	required := RequiredColumns(kind)

	mappedSystem := make(map[string]bool, len(mappings))
	for _, system := range mappings {
		mappedSystem[system] = true
	}
	for _, col := range required {
		if !mappedSystem[col] {
			return nil, domain.NewMappingError("required column %q is not mapped in reference file", col)
		}
	}

	columnSet := make(map[string]bool, len(columns))
	for _, col := range columns {
		columnSet[col] = true
	}
	for source := range mappings {
		if !columnSet[source] {
			return nil, domain.NewMappingError("mapped column %q not found in uploaded file", source)
		}
	}

	transformed := make([]map[string]string, 0, len(rows))
	for i, row := range rows {
		out := make(map[string]string, len(mappings))
		for source, system := range mappings {
			if value, ok := row[source]; ok {
				out[system] = value
			}
		}
		for _, col := range required {
			value, ok := out[col]
			if !ok || strings.TrimSpace(value) == "" {
				return nil, &domain.ValidationError{
					Row:     i + 1,
					Column:  col,
					Message: "required field is missing or empty",
				}
			}
		}
		transformed = append(transformed, out)
	}
	return transformed, nil
}

// ShipmentRows validates raw shipment rows and binds them into typed
// canonical records.
func ShipmentRows(rules []domain.MappingRule, columns []string, rows []map[string]string) ([]domain.ShipmentRow, error) {
	canonical, err := ValidateUploadedData(domain.FileKindShipment, rules, columns, rows)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ShipmentRow, len(canonical))
	for i, row := range canonical {
		out[i] = domain.ShipmentRow{
			OrderCode:     row[domain.ColOrderCode],
			CustomerName:  row[domain.ColCustomerName],
			Status:        row[domain.ColStatus],
			Amount:        row[domain.ColAmount],
			ShippingFee:   row[domain.ColShippingFee],
			DeliveredDate: row[domain.ColDeliveredDate],
		}
	}
	return out, nil
}

// InvoiceLineRows validates raw invoice rows and binds them into typed
// canonical line items.
func InvoiceLineRows(rules []domain.MappingRule, columns []string, rows []map[string]string) ([]domain.InvoiceLineRow, error) {
	canonical, err := ValidateUploadedData(domain.FileKindInvoice, rules, columns, rows)
	if err != nil {
		return nil, err
	}
	out := make([]domain.InvoiceLineRow, len(canonical))
	for i, row := range canonical {
		out[i] = domain.InvoiceLineRow{
			OrderNumber: row[domain.ColOrderNumber],
			OrderAmount: row[domain.ColOrderAmount],
		}
	}
	return out, nil
}

func mappingIndex(kind domain.FileKind, rules []domain.MappingRule) map[string]string {
	index := make(map[string]string)
	for _, r := range rules {
		if r.FileKind == kind {
			index[r.SourceColumn] = r.SystemColumn
		}
	}
	return index
}
