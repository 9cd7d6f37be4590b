// Package trash implements the trash ledger: the durable, per-user list of
// soft-deleted records spanning all entity kinds, with restore back into
// the correct backing table.
package trash

import (
	"crmdesk/internal/core/apperror"
)

// Kind is the closed tag distinguishing which entity type a trash entry
// came from. It determines the backing table a restore inserts into.
type Kind string

const (
	KindClient  Kind = "client"
	KindTask    Kind = "task"
	KindMeeting Kind = "meeting"
	KindInvoice Kind = "invoice"
	KindProject Kind = "project"
	KindTeam    Kind = "team"
	KindLead    Kind = "lead"
	KindPayment Kind = "payment"
)

// Kinds lists all valid kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindClient, KindTask, KindMeeting, KindInvoice,
		KindProject, KindTeam, KindLead, KindPayment,
	}
}

// Valid reports whether k is one of the eight known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindClient, KindTask, KindMeeting, KindInvoice,
		KindProject, KindTeam, KindLead, KindPayment:
		return true
	}
	return false
}

// Table routes a kind to its backing table name. The switch is exhaustive:
// an unrecognized kind is a hard validation failure, never a silent
// fallback to some arbitrary table.
func (k Kind) Table() (string, error) {
	switch k {
	case KindClient:
		return "clients", nil
	case KindTask:
		return "tasks", nil
	case KindMeeting:
		return "meetings", nil
	case KindInvoice:
		return "invoices", nil
	case KindProject:
		return "projects", nil
	case KindTeam:
		return "teams", nil
	case KindLead:
		return "leads", nil
	case KindPayment:
		return "payments", nil
	}
	return "", apperror.NewValidation("unknown trash kind").WithDetail("kind", string(k))
}

// ParseKind converts a string to a Kind with validation.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", apperror.NewValidation("unknown trash kind").WithDetail("kind", s)
	}
	return k, nil
}
