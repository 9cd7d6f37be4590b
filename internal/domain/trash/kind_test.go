package trash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Table(t *testing.T) {
	expected := map[Kind]string{
		KindClient:  "clients",
		KindTask:    "tasks",
		KindMeeting: "meetings",
		KindInvoice: "invoices",
		KindProject: "projects",
		KindTeam:    "teams",
		KindLead:    "leads",
		KindPayment: "payments",
	}

	require.Len(t, Kinds(), len(expected), "every kind must have a table")

	for _, k := range Kinds() {
		table, err := k.Table()
		require.NoError(t, err, "kind %s", k)
		assert.Equal(t, expected[k], table)
	}
}

func TestKind_Table_Unknown(t *testing.T) {
	_, err := Kind("gadget").Table()
	require.Error(t, err)
}

func TestKind_Valid(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), "kind %s", k)
	}
	assert.False(t, Kind("").Valid())
	assert.False(t, Kind("gadget").Valid())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("invoice")
	require.NoError(t, err)
	assert.Equal(t, KindInvoice, k)

	_, err = ParseKind("gadget")
	require.Error(t, err)
}
