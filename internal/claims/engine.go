package claims

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"go.uber.org/zap"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/metrics"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/notify"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository"
)

// ItemStore is the slice of the item repository the engine depends on. The
// three conditional updates (Claim, Accept, Release) are compare-and-swap
// operations on status: false with a nil error means the precondition row
// was gone, i.e. a concurrent request got there first.
type ItemStore interface {
	GetByID(ctx context.Context, id string) (*repository.Item, error)
	GetByAcceptToken(ctx context.Context, token string) (*repository.Item, error)
	GetByRejectToken(ctx context.Context, token string) (*repository.Item, error)
	Claim(ctx context.Context, itemID string, claim *repository.Claim) (bool, error)
	Accept(ctx context.Context, itemID string) (bool, error)
	Release(ctx context.Context, itemID string) (bool, error)
	FindStale(ctx context.Context, cutoff time.Time) ([]*repository.Item, error)
}

// UserStore resolves user ids to contact records for notification copy.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*repository.User, error)
}

// Cache is the invalidation hook into the open-item cache. The engine
// changes status behind the repository, so every successful transition
// evicts the row and the next read re-primes from postgres.
type Cache interface {
	Delete(itemID string)
}

// Notifier dispatches a transactional email. Implementations never block
// and never surface failures to the engine; a dropped notification is
// logged on their side, the state transition stands either way.
type Notifier interface {
	Notify(template notify.Template, recipient string, data map[string]string)
}

// Decision is the owner's verdict on a pending claim.
type Decision int

const (
	Accept Decision = iota
	Reject
)

// Contact is the claimant snapshot captured at filing time. It never
// follows later profile edits.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
}

const tokenMintAttempts = 3

// Engine owns the claim lifecycle state machine: it is the only writer of
// item status once a claim exists.
type Engine struct {
	items    ItemStore
	users    UserStore
	cache    Cache
	notifier Notifier
	logger   *zap.Logger

	baseURL  string
	claimTTL time.Duration
}

func NewEngine(items ItemStore, users UserStore, cache Cache, notifier Notifier, logger *zap.Logger, baseURL string, claimTTL time.Duration) *Engine {
	return &Engine{
		items:    items,
		users:    users,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		baseURL:  strings.TrimRight(baseURL, "/"),
		claimTTL: claimTTL,
	}
}

// FileClaim moves an available item to pending on behalf of claimantID,
// minting the accept/reject token pair. Tokens travel only via the owner
// email, never back to the caller.
func (e *Engine) FileClaim(ctx context.Context, itemID, claimantID string, contact Contact) error {
	if err := validateContact(contact); err != nil {
		return err
	}

	item, err := e.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load item %s: %w", itemID, err)
	}

	if item.OwnerID == claimantID {
		return ErrForbidden
	}
	if item.Status != repository.StatusAvailable {
		return ErrConflict
	}

	now := time.Now().UTC()
	claim := &repository.Claim{
		ClaimantID: claimantID,
		FirstName:  strings.TrimSpace(contact.FirstName),
		LastName:   strings.TrimSpace(contact.LastName),
		Email:      strings.TrimSpace(contact.Email),
		Phone:      strings.TrimSpace(contact.Phone),
		Message:    strings.TrimSpace(contact.Message),
		FiledAt:    now,
		ExpiresAt:  now.Add(e.claimTTL),
	}

	// Token uniqueness is enforced by the database indexes; a collision
	// surfaces as a unique violation and we mint a fresh pair.
	for attempt := 0; ; attempt++ {
		claim.Accept, claim.Reject, err = newTokenPair()
		if err != nil {
			return err
		}

		ok, err := e.items.Claim(ctx, itemID, claim)
		if err != nil {
			if isUniqueViolation(err) && attempt < tokenMintAttempts-1 {
				e.logger.Warn("claim token collision, reminting", zap.String("item_id", itemID))
				continue
			}
			return fmt.Errorf("failed to install claim on item %s: %w", itemID, err)
		}
		if !ok {
			// Lost the race with another claimant or a delete.
			return ErrConflict
		}
		break
	}

	e.cache.Delete(itemID)
	metrics.ClaimsFiledTotal.Inc()
	e.logger.Info("claim filed",
		zap.String("item_id", itemID),
		zap.String("claimant_id", claimantID),
		zap.Time("expires_at", claim.ExpiresAt))

	e.notifyClaimFiled(ctx, item, claim)
	return nil
}

// ResolveClaim consumes an accept or reject token. The lookup is
// decision-specific: an accept token presented to the reject path misses
// outright, so tokens cannot be cross-used.
func (e *Engine) ResolveClaim(ctx context.Context, token string, decision Decision) error {
	if token == "" {
		return ErrInvalidToken
	}

	var (
		item *repository.Item
		err  error
	)
	switch decision {
	case Accept:
		item, err = e.items.GetByAcceptToken(ctx, token)
	case Reject:
		item, err = e.items.GetByRejectToken(ctx, token)
	default:
		return fmt.Errorf("unknown decision %d", decision)
	}
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to look up token: %w", err)
	}

	// An accepted item retains its claim columns for audit, so the token
	// still matches rows whose status already left pending. Those tokens
	// are consumed; report them exactly like unknown ones.
	if item.Status != repository.StatusPending || item.ClaimExpiresAt == nil {
		return ErrInvalidToken
	}

	if time.Now().UTC().After(*item.ClaimExpiresAt) {
		released, err := e.items.Release(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("failed to release expired claim on item %s: %w", item.ID, err)
		}
		if released {
			e.cache.Delete(item.ID)
			metrics.ClaimsExpiredTotal.Inc()
			e.logger.Info("stale claim released on resolve", zap.String("item_id", item.ID))
			e.notifyClaimExpired(ctx, item)
		}
		return ErrExpiredToken
	}

	switch decision {
	case Accept:
		ok, err := e.items.Accept(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("failed to accept claim on item %s: %w", item.ID, err)
		}
		if !ok {
			return ErrConflict
		}
		e.cache.Delete(item.ID)
		metrics.ClaimsAcceptedTotal.Inc()
		e.logger.Info("claim accepted", zap.String("item_id", item.ID))
		e.notifyClaimAccepted(ctx, item)
	case Reject:
		ok, err := e.items.Release(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("failed to reject claim on item %s: %w", item.ID, err)
		}
		if !ok {
			return ErrConflict
		}
		e.cache.Delete(item.ID)
		metrics.ClaimsRejectedTotal.Inc()
		e.logger.Info("claim rejected", zap.String("item_id", item.ID))
		e.notifyClaimRejected(item)
	}
	return nil
}

// ExpireStaleClaims reverts every pending item whose claim window elapsed.
// Each revert goes through the same conditional update as ResolveClaim, so
// a resolution racing the sweep wins or loses per item with no corruption.
// Returns the number of claims actually released by this sweep.
func (e *Engine) ExpireStaleClaims(ctx context.Context) (int, error) {
	stale, err := e.items.FindStale(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to find stale claims: %w", err)
	}

	released := 0
	for _, item := range stale {
		ok, err := e.items.Release(ctx, item.ID)
		if err != nil {
			e.logger.Error("failed to release stale claim",
				zap.String("item_id", item.ID), zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("expire_stale_claims").Inc()
			continue
		}
		if !ok {
			// Resolved between the query and the update. Their win.
			continue
		}
		released++
		e.cache.Delete(item.ID)
		metrics.ClaimsExpiredTotal.Inc()
		e.logger.Info("stale claim expired", zap.String("item_id", item.ID))
		e.notifyClaimExpired(ctx, item)
	}
	return released, nil
}

func validateContact(c Contact) error {
	switch {
	case strings.TrimSpace(c.FirstName) == "":
		return fmt.Errorf("%w: firstName is required", ErrValidation)
	case strings.TrimSpace(c.LastName) == "":
		return fmt.Errorf("%w: lastName is required", ErrValidation)
	case strings.TrimSpace(c.Email) == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	case strings.TrimSpace(c.Message) == "":
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(c.Email)); err != nil {
		return fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (e *Engine) notifyClaimFiled(ctx context.Context, item *repository.Item, claim *repository.Claim) {
	claimantName := claim.FirstName + " " + claim.LastName

	if owner, err := e.users.GetByID(ctx, item.OwnerID); err != nil {
		e.logger.Warn("owner lookup failed, skipping claim-filed notification",
			zap.String("item_id", item.ID), zap.Error(err))
	} else {
		e.notifier.Notify(notify.TemplateClaimFiled, owner.Email, map[string]string{
			"ownerName":    owner.FirstName,
			"itemTitle":    item.Title,
			"itemKind":     item.Kind,
			"claimantName": claimantName,
			"message":      claim.Message,
			"acceptURL":    e.baseURL + "/claim/accept/" + claim.Accept,
			"rejectURL":    e.baseURL + "/claim/reject/" + claim.Reject,
			"expiresAt":    claim.ExpiresAt.Format(time.RFC1123),
		})
	}

	e.notifier.Notify(notify.TemplateClaimReceived, claim.Email, map[string]string{
		"claimantName": claim.FirstName,
		"itemTitle":    item.Title,
		"itemKind":     item.Kind,
	})
}

func (e *Engine) notifyClaimAccepted(ctx context.Context, item *repository.Item) {
	if item.ClaimantEmail == nil {
		return
	}

	data := map[string]string{
		"itemTitle": item.Title,
	}
	if item.ClaimantFirstName != nil {
		data["claimantName"] = *item.ClaimantFirstName
	}
	if owner, err := e.users.GetByID(ctx, item.OwnerID); err != nil {
		e.logger.Warn("owner lookup failed, sending acceptance without contact details",
			zap.String("item_id", item.ID), zap.Error(err))
	} else {
		data["ownerName"] = owner.FirstName + " " + owner.LastName
		data["ownerEmail"] = owner.Email
		data["ownerPhone"] = owner.Phone
	}

	e.notifier.Notify(notify.TemplateClaimAccepted, *item.ClaimantEmail, data)
}

func (e *Engine) notifyClaimRejected(item *repository.Item) {
	if item.ClaimantEmail == nil {
		return
	}
	data := map[string]string{
		"itemTitle": item.Title,
	}
	if item.ClaimantFirstName != nil {
		data["claimantName"] = *item.ClaimantFirstName
	}
	e.notifier.Notify(notify.TemplateClaimRejected, *item.ClaimantEmail, data)
}

func (e *Engine) notifyClaimExpired(ctx context.Context, item *repository.Item) {
	data := map[string]string{
		"itemTitle": item.Title,
	}
	if item.ClaimantEmail != nil {
		e.notifier.Notify(notify.TemplateClaimExpired, *item.ClaimantEmail, data)
	}
	if owner, err := e.users.GetByID(ctx, item.OwnerID); err != nil {
		e.logger.Warn("owner lookup failed, skipping expiry notification",
			zap.String("item_id", item.ID), zap.Error(err))
	} else {
		e.notifier.Notify(notify.TemplateClaimExpired, owner.Email, data)
	}
}
