package subscriptionconst

const (
	// ErrInsufficientPayment is returned when a subscription activation
	// payment is below the configured fee.
	ErrInsufficientPayment = "insufficient payment"
	// ErrInsufficientBalance is returned when the payer's token balance
	// cannot cover the payment.
	ErrInsufficientBalance = "insufficient balance"
	// ErrSubscriptionNotFound is returned if the requested subscription
	// record is missing.
	ErrSubscriptionNotFound = "subscription does not exist"
	// ErrFeePoolExceeded is returned when a withdrawal exceeds the
	// accumulated fee pool.
	ErrFeePoolExceeded = "withdraw exceeds fee pool"
	// ErrInvalidDuration is thrown when a subscription duration is not
	// positive.
	ErrInvalidDuration = "invalid subscription duration"
	// ErrInvalidEpoch is thrown on attempt to move the epoch counter
	// backwards.
	ErrInvalidEpoch = "invalid epoch value"
	// ErrInvalidAmount is thrown when a transfer amount is not positive.
	ErrInvalidAmount = "invalid amount"
	// ErrInvalidFee is thrown when the configured fee is not positive.
	ErrInvalidFee = "invalid fee value"
)
