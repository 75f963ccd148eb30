// Package checkout classifies messages relayed from the embedded payment
// frame. Classification is the trust boundary: anything not positively
// recognised is dropped.
package checkout

import "strings"

// Message is the relayed postMessage event. PurchaseSID is optional and
// selects the per-video flow.
type Message struct {
	Origin      string
	Data        string
	PurchaseSID string
}

type SignalKind int

const (
	SignalIgnored SignalKind = iota
	SignalSubscriptionPaid
	SignalPurchasePaid
)

// DropReason is for debug logging only, never returned to callers.
type DropReason string

const (
	DropNone            DropReason = ""
	DropUntrustedOrigin DropReason = "untrusted_origin"
	DropUntrustedRelay  DropReason = "untrusted_relay"
	DropMissingRelay    DropReason = "missing_relay"
	DropUnknownPayload  DropReason = "unknown_payload"
)

type Signal struct {
	Kind        SignalKind
	PurchaseSID string
	Dropped     DropReason
}

// Policy holds the trusted checkout origin, the success sentinel and the
// host origins allowed to relay messages.
type Policy struct {
	CheckoutOrigin string
	Sentinel       string
	HostOrigins    []string
}

// Classify checks msg against the policy. relayOrigin is the Origin header of
// the relaying request. Browsers always send it on a cross-context POST, so a
// relay without one did not come from the host page.
func (p Policy) Classify(msg Message, relayOrigin string) Signal {
	if p.CheckoutOrigin == "" || msg.Origin != p.CheckoutOrigin {
		return Signal{Dropped: DropUntrustedOrigin}
	}
	if relayOrigin == "" {
		return Signal{Dropped: DropMissingRelay}
	}
	if !p.allowsRelay(relayOrigin) {
		return Signal{Dropped: DropUntrustedRelay}
	}
	if p.Sentinel == "" || msg.Data != p.Sentinel {
		return Signal{Dropped: DropUnknownPayload}
	}

	if sid := strings.TrimSpace(msg.PurchaseSID); sid != "" {
		return Signal{Kind: SignalPurchasePaid, PurchaseSID: sid}
	}
	return Signal{Kind: SignalSubscriptionPaid}
}

func (p Policy) allowsRelay(origin string) bool {
	for _, allowed := range p.HostOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
