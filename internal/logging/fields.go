package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Render fields.
	FieldFormat    = "format"
	FieldGuildData = "guild_data"
	FieldBytes     = "bytes"
	FieldNodes     = "nodes"

	// Extract fields.
	FieldEmojis = "emojis"
	FieldLinks  = "links"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
