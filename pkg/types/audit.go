package types

import "time"

// Audit carries the bookkeeping columns every tracked entity shares: an
// auto-assigned integer id, the soft-delete marker, and actor/timestamp
// pairs for creation and last modification.
type Audit struct {
	ID         int64     `json:"id"`
	IsDeleted  bool      `json:"is_deleted"`
	CreatedOn  time.Time `json:"created_on"`
	ModifiedOn time.Time `json:"modified_on"`
	CreatedBy  string    `json:"created_by"`
	ModifiedBy string    `json:"modified_by"`
}
