package match

// Status mirrors the shared contract for match lifecycle states.
type Status string

const (
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
	StatusScheduled Status = "scheduled"
)

// Team represents the normalized team shape embedded in a match.
type Team struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Event is a single in-match event (goal, card, substitution).
type Event struct {
	Minute string `json:"minute"`
	Kind   string `json:"kind"`
	Player string `json:"player"`
	Detail string `json:"detail,omitempty"`
	Side   string `json:"side"` // home|away
}

// Statistic is one match statistic row (possession, shots, ...).
type Statistic struct {
	Type string `json:"type"`
	Home string `json:"home"`
	Away string `json:"away"`
}

// Match is the canonical match shape exposed by the service.
// Minute is either a "<digits>'" string or empty when unknown.
type Match struct {
	ID         string      `json:"id"`
	League     string      `json:"league"`
	Country    string      `json:"country"`
	LeagueLogo string      `json:"leagueLogo,omitempty"`
	Status     Status      `json:"status"`
	Minute     string      `json:"minute,omitempty"`
	Date       string      `json:"date"` // kickoff date, YYYY-MM-DD
	Time       string      `json:"time"` // kickoff time, HH:MM
	HomeTeam   Team        `json:"homeTeam"`
	AwayTeam   Team        `json:"awayTeam"`
	HomeScore  int         `json:"homeScore"`
	AwayScore  int         `json:"awayScore"`
	Events     []Event     `json:"events,omitempty"`
	Statistics []Statistic `json:"statistics,omitempty"`
}

// DayResponse is the payload returned by /matches.
type DayResponse struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

// NewDayResponse builds the standard day payload.
func NewDayResponse(date string, matches []Match) DayResponse {
	if matches == nil {
		matches = []Match{}
	}
	return DayResponse{Date: date, Matches: matches}
}
