package claims

import "errors"

// Engine error taxonomy. The HTTP layer maps these to status codes with
// errors.Is; everything else wraps one of them.
var (
	// ErrValidation covers malformed or missing caller input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means the item id is unknown.
	ErrNotFound = errors.New("item not found")

	// ErrForbidden means the caller attempted to claim their own item.
	ErrForbidden = errors.New("claimant is the item owner")

	// ErrConflict means a state precondition failed: the item is already
	// claimed, or a concurrent request resolved it first.
	ErrConflict = errors.New("item state conflict")

	// ErrInvalidToken means the token is unknown or already consumed.
	// The two cases are deliberately indistinguishable so the endpoint
	// cannot be used as a claim-existence oracle.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken means the token matched but its window elapsed.
	ErrExpiredToken = errors.New("token expired")
)
