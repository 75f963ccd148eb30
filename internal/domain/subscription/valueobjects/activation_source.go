package valueobjects

// ActivationSource records which path moved a subscription out of pending.
type ActivationSource string

const (
	ActivationSourceNone     ActivationSource = ""
	ActivationSourceAdmin    ActivationSource = "admin"
	ActivationSourceCheckout ActivationSource = "checkout"
)

func (a ActivationSource) String() string {
	return string(a)
}

func (a ActivationSource) IsValid() bool {
	switch a {
	case ActivationSourceNone, ActivationSourceAdmin, ActivationSourceCheckout:
		return true
	default:
		return false
	}
}
