package config

const (
	// MaxFolderNameLength is the maximum rune length for folder names.
	MaxFolderNameLength = 255

	// DefaultPageSize is the page size used when a listing request
	// does not specify one.
	DefaultPageSize = 20

	// MaxPageSize caps requested page sizes.
	MaxPageSize = 200

	// MaxUploadBytes is the maximum accepted asset upload size (5 MB).
	MaxUploadBytes = 5 << 20
)
