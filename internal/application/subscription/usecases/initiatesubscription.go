package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doramashorts/backend/internal/application/subscription/dto"
	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/subscription"
	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/goroutine"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type InitiateSubscriptionCommand struct {
	UserID          uint
	WhatsAppNumber  string
	PaymentProofURL string
}

type InitiateSubscriptionResult struct {
	Subscription *dto.SubscriptionDTO `json:"subscription"`
	// AlreadyActive is true when the user already holds an unexpired
	// subscription and nothing was created.
	AlreadyActive bool `json:"already_active"`
	// Created is false when an existing pending request was reused.
	Created bool `json:"created"`
}

// InitiateSubscriptionUseCase upserts the user's pending payment request.
type InitiateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	txManager        TransactionManager
	guard            InFlightGuard        // Optional
	publisher        EntitlementPublisher // Optional
	adminNotifier    AdminNotifier        // Optional
	emailProvider    UserEmailProvider    // Optional
	sanitizer        TextSanitizer        // Optional
	config           Config
	now              clock
	logger           logger.Interface
}

func NewInitiateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	txManager TransactionManager,
	config Config,
	logger logger.Interface,
) *InitiateSubscriptionUseCase {
	return &InitiateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		config:           config.withDefaults(),
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *InitiateSubscriptionUseCase) SetInFlightGuard(guard InFlightGuard) {
	uc.guard = guard
}

func (uc *InitiateSubscriptionUseCase) SetEntitlementPublisher(publisher EntitlementPublisher) {
	uc.publisher = publisher
}

func (uc *InitiateSubscriptionUseCase) SetAdminNotifier(notifier AdminNotifier, emails UserEmailProvider) {
	uc.adminNotifier = notifier
	uc.emailProvider = emails
}

func (uc *InitiateSubscriptionUseCase) SetSanitizer(sanitizer TextSanitizer) {
	uc.sanitizer = sanitizer
}

func (uc *InitiateSubscriptionUseCase) Execute(ctx context.Context, cmd InitiateSubscriptionCommand) (*InitiateSubscriptionResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required to subscribe")
	}

	release, err := uc.acquire(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	defer release()

	evidence := uc.cleanEvidence(cmd)
	now := uc.now()

	var (
		result *subscription.Subscription
		out    = &InitiateSubscriptionResult{}
		lapsed *subscription.Subscription
	)

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := uc.subscriptionRepo.GetNonTerminalByUserID(ctx, cmd.UserID)
		if err != nil {
			return storeUnavailable(err)
		}

		if existing != nil && existing.Status() == vo.StatusActive {
			if !existing.IsLapsed(now) {
				result, out.AlreadyActive = existing, true
				return nil
			}
			// Reconcile before a new request can take the per-user slot.
			if err := existing.MarkAsExpired(now); err != nil {
				return err
			}
			if _, err := uc.subscriptionRepo.TransitionFrom(ctx, existing, vo.StatusActive); err != nil {
				return storeUnavailable(err)
			}
			lapsed = existing
			existing = nil
		}

		if existing != nil {
			changed, err := existing.MergeEvidence(evidence, now)
			if err != nil {
				return err
			}
			if changed {
				if err := uc.subscriptionRepo.UpdateEvidence(ctx, existing); err != nil {
					return storeUnavailable(err)
				}
			}
			result = existing
			return nil
		}

		sub, err := subscription.NewSubscription(cmd.UserID, evidence, now)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
			if errors.Is(err, subscription.ErrNonTerminalExists) {
				return err
			}
			return storeUnavailable(err)
		}
		result, out.Created = sub, true
		return nil
	})

	if errors.Is(err, subscription.ErrNonTerminalExists) {
		// Lost a race against a concurrent initiate: reuse the winner's record.
		return uc.reuseWinner(ctx, cmd.UserID, now)
	}
	if err != nil {
		uc.logger.Errorw("failed to initiate subscription",
			"user_id", cmd.UserID,
			"error", err,
		)
		return nil, err
	}

	if lapsed != nil {
		publishChange(ctx, uc.publisher, uc.logger, lapsed.UserID(), entitlement.ChangeSubscriptionExpired, lapsed.SID())
	}

	if out.Created {
		uc.logger.Infow("subscription request created",
			"subscription_sid", result.SID(),
			"user_id", cmd.UserID,
		)
		uc.notifyAdmins(result)
	}

	out.Subscription = dto.ToSubscriptionDTO(result, now)
	return out, nil
}

func (uc *InitiateSubscriptionUseCase) acquire(ctx context.Context, userID uint) (func(), error) {
	noop := func() {}
	if uc.guard == nil {
		return noop, nil
	}

	key := fmt.Sprintf("subscription:initiate:%d", userID)
	ok, err := uc.guard.Acquire(ctx, key, uc.config.InitiateLockTTL)
	if err != nil {
		// The store's uniqueness column still holds without the guard.
		uc.logger.Warnw("in-flight guard unavailable, continuing without it",
			"user_id", userID,
			"error", err,
		)
		return noop, nil
	}
	if !ok {
		return nil, apperrors.NewConflictError("a payment request is already being processed, try again shortly")
	}

	return func() {
		if err := uc.guard.Release(context.WithoutCancel(ctx), key); err != nil {
			uc.logger.Warnw("failed to release in-flight guard", "key", key, "error", err)
		}
	}, nil
}

func (uc *InitiateSubscriptionUseCase) reuseWinner(ctx context.Context, userID uint, now time.Time) (*InitiateSubscriptionResult, error) {
	existing, err := uc.subscriptionRepo.GetNonTerminalByUserID(ctx, userID)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if existing == nil {
		return nil, apperrors.NewConflictError("payment request changed concurrently, try again")
	}
	return &InitiateSubscriptionResult{
		Subscription:  dto.ToSubscriptionDTO(existing, now),
		AlreadyActive: existing.GrantsAccess(now),
	}, nil
}

func (uc *InitiateSubscriptionUseCase) cleanEvidence(cmd InitiateSubscriptionCommand) subscription.Evidence {
	e := subscription.Evidence{
		WhatsAppNumber:  strings.TrimSpace(cmd.WhatsAppNumber),
		PaymentProofURL: strings.TrimSpace(cmd.PaymentProofURL),
	}
	// The proof URL is validated by the handler and stored as given.
	if uc.sanitizer != nil {
		e.WhatsAppNumber = uc.sanitizer.PlainText(e.WhatsAppNumber)
	}
	return e
}

func (uc *InitiateSubscriptionUseCase) notifyAdmins(sub *subscription.Subscription) {
	if uc.adminNotifier == nil {
		return
	}

	notice := PendingSubscriptionNotice{
		SubscriptionSID: sub.SID(),
		WhatsAppNumber:  sub.WhatsAppNumber(),
		PaymentProofURL: sub.PaymentProofURL(),
		CreatedAt:       sub.CreatedAt(),
	}
	userID := sub.UserID()

	goroutine.SafeGoWithTimeout(uc.logger, "subscription-initiate-notify-admins", 30*time.Second, func(ctx context.Context) {
		if uc.emailProvider != nil {
			email, err := uc.emailProvider.GetEmail(ctx, userID)
			if err != nil {
				uc.logger.Warnw("failed to resolve user email for admin notice", "user_id", userID, "error", err)
			}
			notice.UserEmail = email
		}
		if err := uc.adminNotifier.NotifyPendingSubscription(ctx, notice); err != nil {
			uc.logger.Warnw("failed to notify admins about pending subscription",
				"subscription_sid", notice.SubscriptionSID,
				"error", err,
			)
		}
	})
}
