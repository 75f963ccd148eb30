package valueobjects

type PurchaseStatus string

const (
	PurchaseStatusPending PurchaseStatus = "pending"
	PurchaseStatusPaid    PurchaseStatus = "paid"
	PurchaseStatusFailed  PurchaseStatus = "failed"
)

func (s PurchaseStatus) IsValid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusPaid, PurchaseStatusFailed:
		return true
	default:
		return false
	}
}

func (s PurchaseStatus) IsPaid() bool {
	return s == PurchaseStatusPaid
}

func (s PurchaseStatus) IsPending() bool {
	return s == PurchaseStatusPending
}

func (s PurchaseStatus) IsFinal() bool {
	return s == PurchaseStatusPaid || s == PurchaseStatusFailed
}

func (s PurchaseStatus) String() string {
	return string(s)
}
