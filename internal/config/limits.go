package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxFolderNameLength = 255

	// MaxFileNameLength is the maximum length for document file names.
	// Same limit as folder names for consistency.
	MaxFileNameLength = 255

	// MaxTagLength caps individual tag length.
	MaxTagLength = 64

	// MaxTagsPerDocument caps how many tags one document may carry.
	MaxTagsPerDocument = 32

	// MaxFieldValueLength caps user-corrected OCR field values.
	MaxFieldValueLength = 2000
)
