package apifootball

import (
	"regexp"
	"strings"

	domainmatch "livescore-service/internal/domain/match"
)

var (
	apostropheMinute = regexp.MustCompile(`(\d+)'`)
	wordMinute       = regexp.MustCompile(`(?i)(\d+)\s*min`)
)

// NormalizeAll converts a decoded upstream array into canonical
// matches. Entries that are not JSON objects are skipped; the skip
// count is returned so callers can log it. One malformed record never
// aborts the batch.
func NormalizeAll(records []any) ([]domainmatch.Match, int) {
	matches := make([]domainmatch.Match, 0, len(records))
	skipped := 0
	for _, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		matches = append(matches, Normalize(rec))
	}
	return matches, skipped
}

// Normalize maps one upstream match record to the canonical shape.
// Every field is optional upstream; missing pieces get documented
// defaults (zero scores, placeholder teams) so the result is always
// renderable. Normalize never panics for any JSON-shaped record.
func Normalize(rec map[string]any) domainmatch.Match {
	status, minute := inferStatus(rawTruthy(rec, "match_live"), rawString(rec, "match_status"))

	return domainmatch.Match{
		ID:         rawString(rec, "match_id"),
		League:     rawString(rec, "league_name"),
		Country:    rawString(rec, "country_name"),
		LeagueLogo: rawString(rec, "league_logo"),
		Status:     status,
		Minute:     minute,
		Date:       rawString(rec, "match_date"),
		Time:       rawString(rec, "match_time"),
		HomeTeam:   normalizeTeam(rec, "match_hometeam_name", "team_home_badge", "Home Team"),
		AwayTeam:   normalizeTeam(rec, "match_awayteam_name", "team_away_badge", "Away Team"),
		HomeScore:  rawScore(rec, "match_hometeam_score"),
		AwayScore:  rawScore(rec, "match_awayteam_score"),
		Events:     normalizeEvents(rec),
		Statistics: normalizeStatistics(rec),
	}
}

// inferStatus classifies the match and extracts the minute display.
//
// Order matters and is part of the contract:
//  1. live flag set, or status contains "live" (any case), or status
//     contains an apostrophe: live. Minute comes from "<digits>'",
//     else "<digits> min" (normalized to the apostrophe form), else
//     empty (caller shows a bare LIVE label).
//  2. status contains "finished", "ft" or "ended" (any case):
//     finished. A final-minute pattern, when present, is preserved
//     (some feeds report stoppage time alongside the FT marker).
//  3. anything else: scheduled, no minute.
func inferStatus(liveFlag bool, status string) (domainmatch.Status, string) {
	lower := strings.ToLower(status)

	if liveFlag || strings.Contains(lower, "live") || strings.Contains(status, "'") {
		if m := apostropheMinute.FindStringSubmatch(status); m != nil {
			return domainmatch.StatusLive, m[1] + "'"
		}
		if m := wordMinute.FindStringSubmatch(status); m != nil {
			return domainmatch.StatusLive, m[1] + "'"
		}
		return domainmatch.StatusLive, ""
	}

	if strings.Contains(lower, "finished") || strings.Contains(lower, "ft") || strings.Contains(lower, "ended") {
		minute := ""
		if m := apostropheMinute.FindStringSubmatch(status); m != nil {
			minute = m[1] + "'"
		}
		return domainmatch.StatusFinished, minute
	}

	return domainmatch.StatusScheduled, ""
}

func normalizeTeam(rec map[string]any, nameKey, logoKey, fallbackName string) domainmatch.Team {
	name := strings.TrimSpace(rawString(rec, nameKey))
	if name == "" {
		name = fallbackName
	}
	logo := rawString(rec, logoKey)
	if logo == "" {
		logo = placeholderLogo
	}
	return domainmatch.Team{Name: name, Logo: logo}
}

func normalizeEvents(rec map[string]any) []domainmatch.Event {
	var events []domainmatch.Event

	for _, goal := range rawList(rec, "goalscorer") {
		side, player := "home", rawString(goal, "home_scorer")
		if player == "" {
			side, player = "away", rawString(goal, "away_scorer")
		}
		if player == "" {
			continue
		}
		events = append(events, domainmatch.Event{
			Minute: rawString(goal, "time"),
			Kind:   "goal",
			Player: player,
			Detail: rawString(goal, "score"),
			Side:   side,
		})
	}

	for _, card := range rawList(rec, "cards") {
		side, player := "home", rawString(card, "home_fault")
		if player == "" {
			side, player = "away", rawString(card, "away_fault")
		}
		if player == "" {
			continue
		}
		events = append(events, domainmatch.Event{
			Minute: rawString(card, "time"),
			Kind:   "card",
			Player: player,
			Detail: rawString(card, "card"),
			Side:   side,
		})
	}

	return events
}

func normalizeStatistics(rec map[string]any) []domainmatch.Statistic {
	var stats []domainmatch.Statistic
	for _, row := range rawList(rec, "statistics") {
		statType := rawString(row, "type")
		if statType == "" {
			continue
		}
		stats = append(stats, domainmatch.Statistic{
			Type: statType,
			Home: rawString(row, "home"),
			Away: rawString(row, "away"),
		})
	}
	return stats
}
