package runner

import "time"

const (
	StatusNotEligible = "not_eligible"
	StatusClaimed     = "claimed"
	StatusClaimFailed = "claim_failed"
	StatusError       = "error"
	StatusSkipped     = "skipped"
)

// AccountResult is the outcome of one account in a pass.
type AccountResult struct {
	Wallet string    `json:"wallet"`
	Status string    `json:"status"`
	Epoch  string    `json:"epoch,omitempty"`
	TxHash string    `json:"tx_hash,omitempty"`
	Reward string    `json:"reward,omitempty"`
	Reason string    `json:"reason,omitempty"`
	At     time.Time `json:"at"`
}

// Status is a snapshot of the runner for the ops server.
type Status struct {
	PassID     string          `json:"pass_id"`
	Passes     int             `json:"passes"`
	Running    bool            `json:"running"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	NextPassAt time.Time       `json:"next_pass_at"`
	LastError  string          `json:"last_error,omitempty"`
	Accounts   []AccountResult `json:"accounts"`
}

func (s Status) clone() Status {
	out := s
	out.Accounts = append([]AccountResult(nil), s.Accounts...)
	return out
}
