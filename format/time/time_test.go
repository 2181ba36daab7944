package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateFormatToTimeLayout(t *testing.T) {
	var testCases = []struct {
		description string
		format      string
		expect      string
	}{
		{description: "date", format: "yyyy-MM-dd", expect: "2006-01-02"},
		{description: "iso date", format: "YYYY-MM-DD", expect: "2006-01-02"},
		{description: "date time with millis", format: "yyyy-MM-dd HH:mm:ss.SSS", expect: "2006-01-02 15:04:05.999"},
		{description: "iso with offset", format: "YYYY-MM-DDThh:mm:ss+hh:mm", expect: "2006-01-02T15:04:05Z07:00"},
		{description: "twelve hour clock", format: "dd/MM/yy hh:mm a", expect: "02/01/06 03:04 PM"},
		{description: "quoted literal", format: "yyyy-MM-dd'T'HH:mm:ss", expect: "2006-01-02T15:04:05"},
		{description: "month and day names", format: "EEE, d MMM yyyy", expect: "Mon, 2 Jan 2006"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, DateFormatToTimeLayout(testCase.format), testCase.description)
	}
}

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		layout      string
		input       string
		expect      time.Time
	}{
		{
			description: "iso time",
			layout:      "2006-01-02 15:04:05",
			input:       "2023-01-02 01:22:19",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "rfc time with space layout",
			layout:      "2006-01-02 15:04:05",
			input:       "2023-01-02T01:22:19",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "date only input",
			layout:      "2006-01-02 15:04:05",
			input:       "2023-01-02",
			expect:      time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "truncated precision",
			layout:      "2006-01-02 15:04",
			input:       "2023-01-02 01:22:19",
			expect:      time.Date(2023, 1, 2, 1, 22, 0, 0, time.UTC),
		},
		{
			description: "date only input keeps utc",
			layout:      "02/01/2006 15:04:05",
			input:       "02/01/2023",
			expect:      time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "default layout",
			input:       "2023-01-02T01:22:19Z",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
	}

	for _, testCase := range testCases {
		ts, err := Parse(testCase.layout, testCase.input)
		assert.Nil(t, err, testCase.description)
		assert.True(t, testCase.expect.Equal(ts), testCase.description)
		assert.Equal(t, time.UTC, ts.Location(), testCase.description)
	}
	_, err := Parse("2006-01-02", "2023-13-02")
	assert.NotNil(t, err)
}
