// Package ledger implements the append-only client ledger. Entries are
// immutable once written; the balance is always derivable by replaying them,
// which makes the ledger the canonical source of truth the cached balance is
// reconciled against.
package ledger
