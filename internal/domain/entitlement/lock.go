package entitlement

// LockReason explains to a client why content is locked.
type LockReason string

const (
	LockReasonNone                 LockReason = ""
	LockReasonLoginRequired        LockReason = "login_required"
	LockReasonSubscriptionRequired LockReason = "subscription_required"
	LockReasonPurchaseRequired     LockReason = "purchase_required"
	// LockReasonUnavailable is used when entitlement could not be verified.
	LockReasonUnavailable LockReason = "entitlement_unavailable"
)

// ReasonFor maps a resolution to the reason shown for a locked video.
// flatRate reports whether the video is covered by the monthly subscription.
func ReasonFor(authenticated bool, result Result, flatRate bool) LockReason {
	switch {
	case result.Entitled():
		return LockReasonNone
	case !authenticated:
		return LockReasonLoginRequired
	case flatRate:
		return LockReasonSubscriptionRequired
	default:
		return LockReasonPurchaseRequired
	}
}
