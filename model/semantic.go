package model

// ColumnSemantic identifies the logical meaning of a table column.
// A column maps to at most one semantic; a semantic may be absent from
// a given table.
type ColumnSemantic int

const (
	SemanticUnknown ColumnSemantic = iota
	SemanticSerial
	SemanticLocation
	SemanticImage
	SemanticDescription
	SemanticQuantity
	SemanticUnit
	SemanticRate
	SemanticAmount
	SemanticSupplier
	SemanticActions
)

func (s ColumnSemantic) String() string {
	switch s {
	case SemanticSerial:
		return "serial"
	case SemanticLocation:
		return "location"
	case SemanticImage:
		return "image"
	case SemanticDescription:
		return "description"
	case SemanticQuantity:
		return "quantity"
	case SemanticUnit:
		return "unit"
	case SemanticRate:
		return "rate"
	case SemanticAmount:
		return "amount"
	case SemanticSupplier:
		return "supplier"
	case SemanticActions:
		return "actions"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the semantic normally holds numeric values.
func (s ColumnSemantic) IsNumeric() bool {
	switch s {
	case SemanticSerial, SemanticQuantity, SemanticRate, SemanticAmount:
		return true
	}
	return false
}
