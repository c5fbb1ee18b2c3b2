package common

var (
	contentFeePrefix      = []byte{0x01}
	subscriptionFeePrefix = []byte{0x02}
)

// ContentFeeTransferDetails marks a token transfer as a content
// registration payment for the given content ID.
func ContentFeeTransferDetails(contentID []byte) []byte {
	return append(contentFeePrefix, contentID...)
}

// SubscriptionFeeTransferDetails marks a token transfer as a subscription
// activation payment made at the given epoch.
func SubscriptionFeeTransferDetails(epoch int) []byte {
	var buf interface{} = epoch
	return append(subscriptionFeePrefix, buf.([]byte)...)
}
