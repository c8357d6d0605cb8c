package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/db"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository"
)

type ItemRepo struct {
	db db.DB
}

func NewItemRepo(db db.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `
    id, owner_id, kind, title, description, category, event_date,
    address, city, state, images, status, created_at, updated_at,
    claimant_id, claimant_first_name, claimant_last_name, claimant_email,
    claimant_phone, claimant_message, claim_filed_at,
    accept_token, reject_token, claim_expires_at`

func (r *ItemRepo) Create(ctx context.Context, item *repository.Item) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO items (
            id, owner_id, kind, title, description, category, event_date,
            address, city, state, images, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `, item.ID, item.OwnerID, item.Kind, item.Title, item.Description, item.Category,
		item.EventDate, item.Address, item.City, item.State, item.Images,
		item.Status, item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*repository.Item, error) {
	var item repository.Item
	err := r.db.Get(ctx, &item, "SELECT "+itemColumns+" FROM items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UpdateDescriptive rewrites the owner-editable fields only. The claim
// columns and status are off-limits here; the lifecycle engine owns them.
func (r *ItemRepo) UpdateDescriptive(ctx context.Context, item *repository.Item) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE items
        SET
            title = $1,
            description = $2,
            category = $3,
            event_date = $4,
            address = $5,
            city = $6,
            state = $7,
            updated_at = $8
        WHERE id = $9
    `, item.Title, item.Description, item.Category, item.EventDate,
		item.Address, item.City, item.State, time.Now().UTC(), item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ItemRepo) AppendImage(ctx context.Context, id, imageRef string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE items
        SET images = array_append(images, $1), updated_at = $2
        WHERE id = $3
    `, imageRef, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter, page, limit int) ([]*repository.Item, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE 1=1"
	args := []interface{}{}

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Kind != "" {
		query += " AND kind = " + next(filter.Kind)
	}
	if filter.Category != "" {
		query += " AND category = " + next(filter.Category)
	}
	if filter.Status != "" {
		query += " AND status = " + next(filter.Status)
	}
	if filter.Search != "" {
		placeholder := next("%" + filter.Search + "%")
		query += " AND (title ILIKE " + placeholder + " OR description ILIKE " + placeholder + ")"
	}

	query += " ORDER BY created_at DESC"
	query += " LIMIT " + next(limit)
	query += " OFFSET " + next((page-1)*limit)

	var items []*repository.Item
	err := r.db.Select(ctx, &items, query, args...)
	return items, err
}

func (r *ItemRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*repository.Item, error) {
	var items []*repository.Item
	err := r.db.Select(ctx, &items,
		"SELECT "+itemColumns+" FROM items WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	return items, err
}

func (r *ItemRepo) GetByAcceptToken(ctx context.Context, token string) (*repository.Item, error) {
	return r.getByToken(ctx, "accept_token", token)
}

func (r *ItemRepo) GetByRejectToken(ctx context.Context, token string) (*repository.Item, error) {
	return r.getByToken(ctx, "reject_token", token)
}

func (r *ItemRepo) getByToken(ctx context.Context, column, token string) (*repository.Item, error) {
	var item repository.Item
	err := r.db.Get(ctx, &item,
		"SELECT "+itemColumns+" FROM items WHERE "+column+" = $1", token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Claim installs a claim on an available item. The WHERE clause is the
// compare-and-swap: zero rows affected means the item was claimed, resolved
// or deleted by a concurrent request.
func (r *ItemRepo) Claim(ctx context.Context, itemID string, claim *repository.Claim) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE items
        SET
            status = $1,
            claimant_id = $2,
            claimant_first_name = $3,
            claimant_last_name = $4,
            claimant_email = $5,
            claimant_phone = $6,
            claimant_message = $7,
            claim_filed_at = $8,
            accept_token = $9,
            reject_token = $10,
            claim_expires_at = $11,
            updated_at = $12
        WHERE id = $13 AND status = $14
    `, repository.StatusPending, claim.ClaimantID, claim.FirstName, claim.LastName,
		claim.Email, claim.Phone, claim.Message, claim.FiledAt,
		claim.Accept, claim.Reject, claim.ExpiresAt, time.Now().UTC(),
		itemID, repository.StatusAvailable)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Accept marks a pending item returned, keeping the claim columns for
// audit. CAS on status=pending.
func (r *ItemRepo) Accept(ctx context.Context, itemID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE items
        SET status = $1, updated_at = $2
        WHERE id = $3 AND status = $4
    `, repository.StatusReturned, time.Now().UTC(), itemID, repository.StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Release reverts a pending item to available and clears the claim so a
// fresh cycle can start. Used by both reject and expiry. CAS on
// status=pending.
func (r *ItemRepo) Release(ctx context.Context, itemID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE items
        SET
            status = $1,
            claimant_id = NULL,
            claimant_first_name = NULL,
            claimant_last_name = NULL,
            claimant_email = NULL,
            claimant_phone = NULL,
            claimant_message = NULL,
            claim_filed_at = NULL,
            accept_token = NULL,
            reject_token = NULL,
            claim_expires_at = NULL,
            updated_at = $2
        WHERE id = $3 AND status = $4
    `, repository.StatusAvailable, time.Now().UTC(), itemID, repository.StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindStale returns pending items whose claim window elapsed before cutoff.
// Callers still go through Release per item, so a resolution racing the
// sweep wins or loses atomically row by row.
func (r *ItemRepo) FindStale(ctx context.Context, cutoff time.Time) ([]*repository.Item, error) {
	var items []*repository.Item
	err := r.db.Select(ctx, &items,
		"SELECT "+itemColumns+" FROM items WHERE status = $1 AND claim_expires_at < $2",
		repository.StatusPending, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale claims: %w", err)
	}
	return items, nil
}

func (r *ItemRepo) GetAllOpenItems(ctx context.Context) ([]*repository.Item, error) {
	var items []*repository.Item
	err := r.db.Select(ctx, &items, `
        SELECT `+itemColumns+` FROM items
        WHERE status = $1 OR status = $2
        ORDER BY created_at ASC
    `, repository.StatusAvailable, repository.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to get open items: %w", err)
	}
	return items, nil
}
