package audit

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	logger.Log(&LoanShareEvent{
		OwnerID:  1,
		TargetID: 2,
		LoanID:   7,
		Success:  true,
	})

	line := buf.String()

	// <PRI>1 TIMESTAMP HOSTNAME APP-NAME PROCID MSGID SD MSG
	pattern := `^<\d+>1 \d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z \S+ loanledger \d+ loan-share `
	assert.Regexp(t, regexp.MustCompile(pattern), line)
	assert.Contains(t, line, "user 1 shared loan 7 with user 2")
	assert.Contains(t, line, `loan="7"`)
	assert.Contains(t, line, `result="success"`)
}

func TestLoggerPriority(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	// LOG_AUTHPRIV (10) * 8 + notice (5) = 85
	logger.Log(&LoanShareEvent{OwnerID: 1, TargetID: 2, LoanID: 7, Success: true})
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("<85>1 ")))

	// LOG_AUTHPRIV (10) * 8 + warning (4) = 84
	buf.Reset()
	logger.Log(&LoanShareEvent{OwnerID: 1, TargetID: 2, LoanID: 7, Success: false, ErrorMessage: "not the owner"})
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("<84>1 ")))
}

func TestEvents(t *testing.T) {
	testCases := []struct {
		name            string
		event           Event
		expectedID      string
		expectedSev     Severity
		expectedMessage string
	}{
		{
			name: "loan create success",
			event: &LoanCreateEvent{
				UserID: 3, LoanID: 11, Amount: 1000, APR: 0.1, TermMonths: 12, Success: true,
			},
			expectedID:      "loan-create",
			expectedSev:     SeverityNotice,
			expectedMessage: "user 3 created loan 11",
		},
		{
			name: "loan create failure",
			event: &LoanCreateEvent{
				UserID: 3, Success: false, ErrorMessage: "user 3 not found",
			},
			expectedID:      "loan-create",
			expectedSev:     SeverityWarning,
			expectedMessage: "user 3 failed to create loan: user 3 not found",
		},
		{
			name: "loan update denied",
			event: &LoanUpdateEvent{
				UserID: 2, LoanID: 11, Success: false, ErrorMessage: "only the owner may modify a loan",
			},
			expectedID:      "loan-update",
			expectedSev:     SeverityWarning,
			expectedMessage: "user 2 failed to update loan 11: only the owner may modify a loan",
		},
		{
			name: "schedule fetch",
			event: &LoanFetchEvent{
				UserID: 2, LoanID: 11, Resource: "schedule", Success: true,
			},
			expectedID:      "loan-fetch",
			expectedSev:     SeverityInfo,
			expectedMessage: "user 2 fetched schedule for loan 11",
		},
		{
			name: "summary fetch denied",
			event: &LoanFetchEvent{
				UserID: 5, LoanID: 11, Resource: "summary", Success: false, ErrorMessage: "access not granted",
			},
			expectedID:      "loan-fetch",
			expectedSev:     SeverityWarning,
			expectedMessage: "user 5 failed to fetch summary for loan 11: access not granted",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedID, tc.event.MessageID())
			assert.Equal(t, tc.expectedSev, tc.event.Severity())
			assert.Equal(t, tc.expectedMessage, tc.event.Message())
			assert.NotEmpty(t, tc.event.StructuredData())
		})
	}
}

func TestEscapeSDValue(t *testing.T) {
	assert.Equal(t, `"plain"`, escapeSDValue("plain"))
	assert.Equal(t, `"with \"quotes\""`, escapeSDValue(`with "quotes"`))
	assert.Equal(t, `"closing \] bracket"`, escapeSDValue("closing ] bracket"))
	assert.Equal(t, `"back\\slash"`, escapeSDValue(`back\slash`))
}

func TestFormatStructuredData(t *testing.T) {
	sd := map[string]map[string]string{
		SDIDAction: {"operation": "share"},
	}
	formatted := formatStructuredData(sd)
	assert.Equal(t, `[action@32473 operation="share"]`, formatted)

	require.Empty(t, formatStructuredData(nil))
}
