package rounddomain

// Report holds every table of one round sheet, ready for the leaderboard front-end.
type Report struct {
	Round           int       `json:"-"`
	Sheet           string    `json:"-"`
	Standings       Grid      `json:"standings"`
	Strokes         Grid      `json:"strokes"`
	Points          Grid      `json:"points"`
	Matchplay       Grid      `json:"matchplay,omitempty"`
	MatchplayColors ColorGrid `json:"matchplay_colors,omitempty"`
	Overall         Grid      `json:"overall,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the JSON body of every round response. On success the report
// tables sit next to the status; on failure only the message does.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	*Report
}

// NewEnvelope wraps the outcome of a round request. A non-nil err always
// wins, so partially built reports are never sent.
func NewEnvelope(report *Report, err error) Envelope {
	if err != nil {
		return Envelope{Status: StatusError, Message: err.Error()}
	}
	return Envelope{Status: StatusSuccess, Report: report}
}
