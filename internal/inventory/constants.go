package inventory

// maxTxAttempts bounds how many times a conflicting transaction is retried
// before the conflict is surfaced to the caller
const maxTxAttempts = 3

// Log messages
const (
	logMsgTxRetry          = "Retrying inventory transaction after conflict"
	logMsgItemAdded        = "Item added to inventory"
	logMsgItemRemoved      = "Item removed from inventory"
	logMsgEnchantApplied   = "Enchantment applied to inventory item"
	logMsgEnchantsCleared  = "Enchantments cleared from inventory item"
)
