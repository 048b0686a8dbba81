package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/timesheet-rules-go/internal/pkg/validator"
)

func TestCreateEntriesRequestValidate(t *testing.T) {
	valid := CreateEntriesRequest{
		WorkDate: "2025-03-05",
		Entries: []EntryInput{
			{ProjectID: "p1", TaskName: "Development", Hours: decimal.NewFromInt(5)},
		},
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name      string
		req       CreateEntriesRequest
		wantField string
	}{
		{
			name:      "missing work date",
			req:       CreateEntriesRequest{Entries: valid.Entries},
			wantField: "work_date",
		},
		{
			name:      "malformed work date",
			req:       CreateEntriesRequest{WorkDate: "03/05/2025", Entries: valid.Entries},
			wantField: "work_date",
		},
		{
			name:      "no entries",
			req:       CreateEntriesRequest{WorkDate: "2025-03-05"},
			wantField: "entries",
		},
		{
			name: "entry without task",
			req: CreateEntriesRequest{
				WorkDate: "2025-03-05",
				Entries:  []EntryInput{{Hours: decimal.NewFromInt(2)}},
			},
			wantField: "entries.task_name",
		},
		{
			name: "entry with zero hours",
			req: CreateEntriesRequest{
				WorkDate: "2025-03-05",
				Entries:  []EntryInput{{TaskName: "Review", Hours: decimal.Zero}},
			},
			wantField: "entries.hours",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.wantField)
		})
	}
}

func TestCreateEntriesRequestTotalHours(t *testing.T) {
	req := CreateEntriesRequest{
		Entries: []EntryInput{
			{Hours: decimal.RequireFromString("3.5")},
			{Hours: decimal.RequireFromString("2.25")},
		},
	}
	assert.True(t, req.TotalHours().Equal(decimal.RequireFromString("5.75")))
}
