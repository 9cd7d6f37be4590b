package record_repo

import (
	"crmdesk/internal/domain/records/meeting"
	"crmdesk/internal/infrastructure/storage/postgres"
)

const meetingTable = "meetings"

// MeetingRepo implements domain.RecordRepository for meetings.
type MeetingRepo struct {
	*BaseRecordRepo[*meeting.Meeting]
}

// NewMeetingRepo creates a new meeting repository.
func NewMeetingRepo(db postgres.DB) *MeetingRepo {
	return &MeetingRepo{
		BaseRecordRepo: NewBaseRecordRepo(
			db,
			meetingTable,
			postgres.ExtractDBColumns[meeting.Meeting](),
			[]string{"title", "location"},
			func() *meeting.Meeting { return &meeting.Meeting{} },
		),
	}
}
