package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Detection fields.
	FieldKind = "kind"

	// Transform summary fields.
	FieldInBytes  = "in_bytes"
	FieldOutBytes = "out_bytes"
	FieldChanged  = "changed"
	FieldWritten  = "written"
	FieldElapsed  = "elapsed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
