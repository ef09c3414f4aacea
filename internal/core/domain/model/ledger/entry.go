package ledger

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not created
	// through the NewEntry or RestoreEntry factory methods.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// EntryType classifies the financial event that produced a ledger entry.
type EntryType int

const (
	// EntryTypeUnknown represents an invalid or undefined entry type.
	EntryTypeUnknown EntryType = iota

	// EntryTypeInvoice records an amount the client owes.
	EntryTypeInvoice

	// EntryTypePayment records an amount the client paid.
	EntryTypePayment

	// EntryTypeCreditNote records an amount credited back to the client.
	EntryTypeCreditNote

	// EntryTypeAdjustment records a manual correction. Corrections are always
	// appended as offsetting entries, never edits of existing rows.
	EntryTypeAdjustment
)

func getEntryTypeStrings() map[EntryType]string {
	return map[EntryType]string{
		EntryTypeUnknown:    "Unknown",
		EntryTypeInvoice:    "Invoice",
		EntryTypePayment:    "Payment",
		EntryTypeCreditNote: "CreditNote",
		EntryTypeAdjustment: "Adjustment",
	}
}

// Validate checks if the EntryType value is valid.
func (t EntryType) Validate() error {
	if t == EntryTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("entryType",
			fmt.Errorf("%d is not a valid entry type", int(t)))
	}
	if _, ok := getEntryTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("entryType",
			fmt.Errorf("%d is not a valid entry type", int(t)))
	}
	return nil
}

// String returns the human-readable name of the entry type.
func (t EntryType) String() string {
	if str, ok := getEntryTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Mode partitions a client's ledger into parallel books of record. A balance
// rebuild can target one book or span all of them.
type Mode int

const (
	// ModeAll selects every book; it is a query filter, not a valid entry mode.
	ModeAll Mode = iota

	// ModeOfficial is the statutory book of record.
	ModeOfficial

	// ModeManagement is the internal management book.
	ModeManagement
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		ModeAll:        "All",
		ModeOfficial:   "Official",
		ModeManagement: "Management",
	}
}

// Validate checks if the Mode is valid for a ledger entry. ModeAll is only a
// query filter and cannot be written.
func (m Mode) Validate() error {
	if m == ModeAll {
		return errs.NewValueIsInvalidErrorWithCause("mode",
			errors.New("ModeAll is a query filter, not an entry mode"))
	}
	if _, ok := getModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mode",
			fmt.Errorf("%d is not a valid ledger mode", int(m)))
	}
	return nil
}

// ValidateFilter checks if the Mode is valid as a query filter, where ModeAll
// is allowed.
func (m Mode) ValidateFilter() error {
	if _, ok := getModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mode",
			fmt.Errorf("%d is not a valid ledger mode", int(m)))
	}
	return nil
}

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Entry is one immutable row of a client's append-only ledger. Entries are
// never updated or deleted; corrections are made by appending offsetting
// entries. The ledger is therefore always recoverable and serves as the
// canonical source of truth for the client's balance.
type Entry struct {
	id         kernel.UUID
	clientID   kernel.UUID
	entryType  EntryType
	mode       Mode
	debit      decimal.Decimal
	credit     decimal.Decimal
	recordedAt time.Time

	isConstructed bool
}

// NewEntry creates a ledger entry. Debit and credit must be non-negative and
// may not both be zero.
func NewEntry(
	id, clientID kernel.UUID,
	entryType EntryType,
	mode Mode,
	debit, credit decimal.Decimal,
	recordedAt time.Time,
) (*Entry, error) {
	entry := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setClientID(clientID),
		entry.setEntryType(entryType),
		entry.setMode(mode),
		entry.setAmounts(debit, credit),
		entry.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreEntry reconstructs a ledger entry from persistence.
func RestoreEntry(
	id, clientID kernel.UUID,
	entryType EntryType,
	mode Mode,
	debit, credit decimal.Decimal,
	recordedAt time.Time,
) (*Entry, error) {
	return NewEntry(id, clientID, entryType, mode, debit, credit, recordedAt)
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ClientID returns the identifier of the client the entry belongs to.
func (e *Entry) ClientID() kernel.UUID {
	return e.clientID
}

// EntryType returns the financial event classification of the entry.
func (e *Entry) EntryType() EntryType {
	return e.entryType
}

// Mode returns the book of record the entry belongs to.
func (e *Entry) Mode() Mode {
	return e.mode
}

// Debit returns the debit amount of the entry.
func (e *Entry) Debit() decimal.Decimal {
	return e.debit
}

// Credit returns the credit amount of the entry.
func (e *Entry) Credit() decimal.Decimal {
	return e.credit
}

// RecordedAt returns the timestamp the entry was written.
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}

// Amount returns the entry's contribution to the balance: debit − credit.
func (e *Entry) Amount() decimal.Decimal {
	return e.debit.Sub(e.credit)
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	e.clientID = clientID
	return nil
}

func (e *Entry) setEntryType(entryType EntryType) error {
	if err := entryType.Validate(); err != nil {
		return err
	}
	e.entryType = entryType
	return nil
}

func (e *Entry) setMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	e.mode = mode
	return nil
}

func (e *Entry) setAmounts(debit, credit decimal.Decimal) error {
	if debit.IsNegative() {
		return errs.NewValueIsInvalidError("debit")
	}
	if credit.IsNegative() {
		return errs.NewValueIsInvalidError("credit")
	}
	if debit.IsZero() && credit.IsZero() {
		return errs.NewValueIsRequiredErrorWithCause("debit or credit",
			errors.New("an entry must move at least one side"))
	}
	e.debit = debit
	e.credit = credit
	return nil
}

func (e *Entry) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	e.recordedAt = recordedAt
	return nil
}
