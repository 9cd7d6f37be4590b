package record_repo

import (
	"crmdesk/internal/domain/records/lead"
	"crmdesk/internal/infrastructure/storage/postgres"
)

const leadTable = "leads"

// LeadRepo implements domain.RecordRepository for leads.
type LeadRepo struct {
	*BaseRecordRepo[*lead.Lead]
}

// NewLeadRepo creates a new lead repository.
func NewLeadRepo(db postgres.DB) *LeadRepo {
	return &LeadRepo{
		BaseRecordRepo: NewBaseRecordRepo(
			db,
			leadTable,
			postgres.ExtractDBColumns[lead.Lead](),
			[]string{"name", "email", "source"},
			func() *lead.Lead { return &lead.Lead{} },
		),
	}
}
