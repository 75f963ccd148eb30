package purchase

import "errors"

var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrAlreadyPaid is returned by the store when a paid purchase already
	// exists for the same user and video.
	ErrAlreadyPaid     = errors.New("video already purchased")
	ErrPurchaseFinal   = errors.New("purchase already finalized")
	ErrVideoNotForSale = errors.New("video is not sold individually")
)
