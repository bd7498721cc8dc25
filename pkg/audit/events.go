package audit

import "fmt"

// LoanCreateEvent is emitted when a loan is opened on the ledger.
type LoanCreateEvent struct {
	UserID       int64
	LoanID       int64
	Amount       float64
	APR          float64
	TermMonths   int
	Success      bool
	ErrorMessage string
}

func (e *LoanCreateEvent) MessageID() string { return "loan-create" }

func (e *LoanCreateEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e *LoanCreateEvent) Facility() int { return FacilityAuth }

func (e *LoanCreateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("user %d created loan %d", e.UserID, e.LoanID)
	}
	return fmt.Sprintf("user %d failed to create loan: %s", e.UserID, e.ErrorMessage)
}

func (e *LoanCreateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"loan":   fmt.Sprintf("%d", e.LoanID),
			"amount": fmt.Sprintf("%g", e.Amount),
			"apr":    fmt.Sprintf("%g", e.APR),
			"term":   fmt.Sprintf("%d", e.TermMonths),
		},
		SDIDClient: {"user": fmt.Sprintf("%d", e.UserID)},
		SDIDAction: {"operation": "create", "result": resultString(e.Success)},
	}
	return sd
}

// LoanUpdateEvent is emitted when a loan's terms are rewritten.
type LoanUpdateEvent struct {
	UserID       int64
	LoanID       int64
	Success      bool
	ErrorMessage string
}

func (e *LoanUpdateEvent) MessageID() string { return "loan-update" }

func (e *LoanUpdateEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e *LoanUpdateEvent) Facility() int { return FacilityAuth }

func (e *LoanUpdateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("user %d updated loan %d", e.UserID, e.LoanID)
	}
	return fmt.Sprintf("user %d failed to update loan %d: %s", e.UserID, e.LoanID, e.ErrorMessage)
}

func (e *LoanUpdateEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {"loan": fmt.Sprintf("%d", e.LoanID)},
		SDIDClient:  {"user": fmt.Sprintf("%d", e.UserID)},
		SDIDAction:  {"operation": "update", "result": resultString(e.Success)},
	}
}

// LoanShareEvent is emitted when an owner grants (or fails to grant)
// read access on a loan.
type LoanShareEvent struct {
	OwnerID      int64
	TargetID     int64
	LoanID       int64
	Success      bool
	ErrorMessage string
}

func (e *LoanShareEvent) MessageID() string { return "loan-share" }

func (e *LoanShareEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e *LoanShareEvent) Facility() int { return FacilityAuthPriv }

func (e *LoanShareEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("user %d shared loan %d with user %d", e.OwnerID, e.LoanID, e.TargetID)
	}
	return fmt.Sprintf("user %d failed to share loan %d with user %d: %s",
		e.OwnerID, e.LoanID, e.TargetID, e.ErrorMessage)
}

func (e *LoanShareEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"loan":   fmt.Sprintf("%d", e.LoanID),
			"target": fmt.Sprintf("%d", e.TargetID),
		},
		SDIDClient: {"user": fmt.Sprintf("%d", e.OwnerID)},
		SDIDAction: {"operation": "share", "result": resultString(e.Success)},
	}
}

// LoanFetchEvent is emitted for reads of a loan's schedule or summary,
// including denied attempts.
type LoanFetchEvent struct {
	UserID       int64
	LoanID       int64
	Resource     string // "schedule" or "summary"
	Success      bool
	ErrorMessage string
}

func (e *LoanFetchEvent) MessageID() string { return "loan-fetch" }

func (e *LoanFetchEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e *LoanFetchEvent) Facility() int { return FacilityAuth }

func (e *LoanFetchEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("user %d fetched %s for loan %d", e.UserID, e.Resource, e.LoanID)
	}
	return fmt.Sprintf("user %d failed to fetch %s for loan %d: %s",
		e.UserID, e.Resource, e.LoanID, e.ErrorMessage)
}

func (e *LoanFetchEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"loan":     fmt.Sprintf("%d", e.LoanID),
			"resource": e.Resource,
		},
		SDIDClient: {"user": fmt.Sprintf("%d", e.UserID)},
		SDIDAction: {"operation": "fetch", "result": resultString(e.Success)},
	}
}

func resultString(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
