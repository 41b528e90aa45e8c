package logging

// Standardized field names for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldCategory  = "category"
	FieldKeyword   = "keyword"
	FieldTerm      = "term"
	FieldMode      = "mode"
	FieldKey       = "key"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldCount     = "count"
	FieldError     = "error"
	FieldInputFile = "input_file"
	FieldOutput    = "output_file"
	FieldRow       = "row"
)
