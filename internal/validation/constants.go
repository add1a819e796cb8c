package validation

const (
	// Password requirements
	MinPasswordLength = 6
	MaxPasswordLength = 72

	// String lengths
	MaxNameLength        = 100
	MaxCommentLength     = 500
	MaxDescriptionLength = 2000

	// Listing limits
	MaxPrice     = 1000000
	MaxImages    = 5
	WalletIDSize = 15
)
