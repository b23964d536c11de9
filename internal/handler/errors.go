package handler

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgInvalidID          = "Identifier must be a positive integer"

	// Player messages
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgUsernameTakenError  = "That username is already taken"
	ErrMsgUsernameEmptyError  = "Username must not be empty"

	// Item messages
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgItemNameTakenError = "An item with that name already exists"
	ErrMsgInvalidTypeError   = "Invalid item type"
	ErrMsgInvalidRarityError = "Invalid rarity"

	// Enchantment messages
	ErrMsgEnchantmentNotFoundError  = "Enchantment not found"
	ErrMsgEnchantmentNameTakenError = "An enchantment with that name already exists"
	ErrMsgInvalidDescriptionError   = "Effect description must be 1-250 characters"

	// Inventory messages
	ErrMsgNotInInventoryError     = "Player does not have that item"
	ErrMsgInsufficientItemsError  = "Not enough of that item to remove"
	ErrMsgInvalidQuantityError    = "Quantity must be positive"
	ErrMsgConflictRetryLaterError = "Too much contention, please retry"
)
