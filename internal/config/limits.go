package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255).
	MaxFolderNameLength = 255

	// MaxLinkTitleLength is the maximum length for link titles.
	MaxLinkTitleLength = 255

	// MaxLinkURLLength is the maximum length for stored URLs.
	// 2048 matches the practical limit most browsers accept.
	MaxLinkURLLength = 2048

	// MaxUsernameLength is the maximum length for usernames.
	MaxUsernameLength = 80

	// MaxEmailLength is the maximum length for email addresses.
	MaxEmailLength = 120

	// MaxPasswordLength is bcrypt's input limit; longer inputs are rejected
	// rather than silently truncated.
	MaxPasswordLength = 72

	// MinTokenSecretLength is the minimum HS256 key size in bytes.
	MinTokenSecretLength = 32
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)
