package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldScanID     = "scan_id"
	FieldPage       = "page"
	FieldLine       = "line"
	FieldPartyID    = "party_id"
	FieldDocumentID = "document_id"
	FieldAmount     = "amount"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldPages      = "pages"
	FieldFormat     = "format"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
