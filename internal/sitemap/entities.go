package sitemap

import "time"

// ChangeFreq is the sitemaps.org change frequency hint.
type ChangeFreq string

const (
	FreqAlways  ChangeFreq = "always"
	FreqHourly  ChangeFreq = "hourly"
	FreqDaily   ChangeFreq = "daily"
	FreqWeekly  ChangeFreq = "weekly"
	FreqMonthly ChangeFreq = "monthly"
)

// Defaults substituted when an entity carries no explicit values.
// Sitemap generation is a best-effort SEO aid; missing fields never
// abort a run.
const (
	DefaultPriority   = 0.5
	DefaultChangeFreq = FreqWeekly
)

// Section is a static site section page.
type Section struct {
	Path       string
	ChangeFreq ChangeFreq
	Priority   float64
}

// LeagueRef points at a league page.
type LeagueRef struct {
	ID       string
	Name     string
	Priority float64
}

// TeamRef points at a team page.
type TeamRef struct {
	ID       string
	Name     string
	Priority float64
}

// BettingSiteRef points at a betting-site review page.
type BettingSiteRef struct {
	ID       string
	Name     string
	Priority float64
}

// MatchRef points at one fixture's page set.
type MatchRef struct {
	ID          string
	Slug        string
	ScheduledAt time.Time
}

// Sections returns the static section table.
func Sections() []Section {
	return sections
}

// Leagues returns the static league table.
func Leagues() []LeagueRef {
	return leagues
}

// Teams returns the static team table.
func Teams() []TeamRef {
	return teams
}

// BettingSites returns the static betting-site table.
func BettingSites() []BettingSiteRef {
	return bettingSites
}

var sections = []Section{
	{Path: "live", ChangeFreq: FreqAlways, Priority: 1.0},
	{Path: "fixtures", ChangeFreq: FreqHourly, Priority: 0.9},
	{Path: "results", ChangeFreq: FreqHourly, Priority: 0.9},
	{Path: "leagues", ChangeFreq: FreqDaily, Priority: 0.8},
	{Path: "teams", ChangeFreq: FreqWeekly, Priority: 0.7},
	{Path: "betting-sites", ChangeFreq: FreqWeekly, Priority: 0.7},
	{Path: "news", ChangeFreq: FreqHourly, Priority: 0.8},
	{Path: "about", ChangeFreq: FreqMonthly, Priority: 0.3},
}

var leagues = []LeagueRef{
	{ID: "152", Name: "Premier League", Priority: 0.9},
	{ID: "302", Name: "La Liga", Priority: 0.9},
	{ID: "207", Name: "Serie A", Priority: 0.9},
	{ID: "175", Name: "Bundesliga", Priority: 0.9},
	{ID: "168", Name: "Ligue 1", Priority: 0.8},
	{ID: "3", Name: "UEFA Champions League", Priority: 0.9},
	{ID: "4", Name: "UEFA Europa League", Priority: 0.8},
	{ID: "683", Name: "UEFA Europa Conference League", Priority: 0.7},
	{ID: "244", Name: "Eredivisie", Priority: 0.7},
	{ID: "266", Name: "Primeira Liga", Priority: 0.7},
	{ID: "153", Name: "Championship", Priority: 0.7},
	{ID: "322", Name: "Super Lig", Priority: 0.7},
	{ID: "179", Name: "Scottish Premiership", Priority: 0.6},
	{ID: "332", Name: "MLS", Priority: 0.6},
	{ID: "99", Name: "Copa Libertadores", Priority: 0.6},
	{ID: "83", Name: "Brasileirao", Priority: 0.6},
	{ID: "300", Name: "Liga MX", Priority: 0.6},
	{ID: "278", Name: "Saudi Pro League", Priority: 0.6},
	{ID: "28", Name: "World Cup", Priority: 0.8},
	{ID: "29", Name: "European Championship", Priority: 0.8},
}

var teams = []TeamRef{
	{ID: "2611", Name: "Real Madrid", Priority: 0.8},
	{ID: "2613", Name: "FC Barcelona", Priority: 0.8},
	{ID: "2626", Name: "Atletico Madrid", Priority: 0.7},
	{ID: "3081", Name: "Manchester City", Priority: 0.8},
	{ID: "3082", Name: "Manchester United", Priority: 0.8},
	{ID: "3061", Name: "Liverpool", Priority: 0.8},
	{ID: "3068", Name: "Arsenal", Priority: 0.8},
	{ID: "3070", Name: "Chelsea", Priority: 0.8},
	{ID: "3074", Name: "Tottenham Hotspur", Priority: 0.7},
	{ID: "4060", Name: "Bayern Munich", Priority: 0.8},
	{ID: "4062", Name: "Borussia Dortmund", Priority: 0.7},
	{ID: "4068", Name: "RB Leipzig", Priority: 0.6},
	{ID: "4070", Name: "Bayer Leverkusen", Priority: 0.7},
	{ID: "4223", Name: "Juventus", Priority: 0.8},
	{ID: "4227", Name: "AC Milan", Priority: 0.8},
	{ID: "4231", Name: "Inter", Priority: 0.8},
	{ID: "4238", Name: "Napoli", Priority: 0.7},
	{ID: "4243", Name: "AS Roma", Priority: 0.7},
	{ID: "4280", Name: "Paris Saint-Germain", Priority: 0.8},
	{ID: "4285", Name: "Olympique Marseille", Priority: 0.6},
	{ID: "4287", Name: "AS Monaco", Priority: 0.6},
	{ID: "2987", Name: "Ajax", Priority: 0.6},
	{ID: "2995", Name: "PSV Eindhoven", Priority: 0.6},
	{ID: "3718", Name: "Benfica", Priority: 0.6},
	{ID: "3720", Name: "FC Porto", Priority: 0.6},
	{ID: "4372", Name: "Galatasaray", Priority: 0.6},
	{ID: "4374", Name: "Fenerbahce", Priority: 0.6},
	{ID: "3994", Name: "Celtic", Priority: 0.5},
}

var bettingSites = []BettingSiteRef{
	{ID: "bet365", Name: "Bet365", Priority: 0.6},
	{ID: "betway", Name: "Betway", Priority: 0.6},
	{ID: "unibet", Name: "Unibet", Priority: 0.5},
	{ID: "william-hill", Name: "William Hill", Priority: 0.5},
	{ID: "888sport", Name: "888sport", Priority: 0.5},
	{ID: "betfair", Name: "Betfair", Priority: 0.5},
	{ID: "bwin", Name: "Bwin", Priority: 0.5},
	{ID: "pinnacle", Name: "Pinnacle", Priority: 0.5},
	{ID: "ladbrokes", Name: "Ladbrokes", Priority: 0.4},
	{ID: "coral", Name: "Coral", Priority: 0.4},
}
