package logging

// Standardized field names for structured logging. Using these constants keeps
// log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldPipeline   = "pipeline"
	FieldCount      = "count"
	FieldRow        = "row"
	FieldLine       = "line"
	FieldColumn     = "column"
	FieldRole       = "role"
	FieldToken      = "token"
	FieldError      = "error"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldDelimiter  = "delimiter"
)
