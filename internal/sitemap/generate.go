package sitemap

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"livescore-service/internal/i18n"
	"livescore-service/internal/logging"
	"livescore-service/internal/metrics"
)

// File names of the per-run sitemap set. The matches file name carries
// the month and is produced by matchesFileName.
const (
	IndexFileName        = "sitemap-index.xml"
	HomepageFileName     = "sitemap-homepage.xml"
	SectionsFileName     = "sitemap-sections.xml"
	LeaguesFileName      = "sitemap-leagues.xml"
	TeamsFileName        = "sitemap-teams.xml"
	BettingSitesFileName = "sitemap-betting-sites.xml"
)

const matchPriority = 0.8

// Generator produces the full sitemap file set for every language
// subdomain.
type Generator struct {
	builder      Builder
	languages    []i18n.Language
	sections     []Section
	leagues      []LeagueRef
	teams        []TeamRef
	bettingSites []BettingSiteRef
	logger       *slog.Logger
	metrics      *metrics.Recorder
	now          func() time.Time
}

// pri makes an explicit priority for a URLEntry.
func pri(v float64) *float64 {
	return &v
}

// Result is the outcome of one generation run: rendered file contents
// keyed by file name, plus the total URL count across all urlset files.
type Result struct {
	Files     map[string]string
	TotalURLs int
}

// NewGenerator builds a Generator over the static entity tables and the
// full language table. The recorder may be nil.
func NewGenerator(baseDomain string, logger *slog.Logger, recorder *metrics.Recorder) *Generator {
	return &Generator{
		builder:      NewBuilder(baseDomain),
		languages:    i18n.Languages(),
		sections:     Sections(),
		leagues:      Leagues(),
		teams:        Teams(),
		bettingSites: BettingSites(),
		logger:       logger,
		metrics:      recorder,
		now:          time.Now,
	}
}

// GenerateAll renders every sitemap file for one run. All lastmod
// values share the run's start timestamp so the set reads as one
// consistent publication. The monthly matches file is emitted even when
// no matches are known, so consumers always find the expected file.
func (g *Generator) GenerateAll(matches []MatchRef) (Result, error) {
	runAt := g.now().UTC()
	month := runAt.Format("2006-01")

	files := make(map[string]string)
	total := 0

	add := func(name string, entries []URLEntry) error {
		doc, err := SerializeURLSet(entries)
		if err != nil {
			return fmt.Errorf("serialize %s: %w", name, err)
		}
		files[name] = doc
		total += len(entries)
		return nil
	}

	if err := add(HomepageFileName, g.homepageEntries(runAt)); err != nil {
		return Result{}, err
	}
	if err := add(SectionsFileName, g.sectionEntries(runAt)); err != nil {
		return Result{}, err
	}
	if err := add(LeaguesFileName, g.leagueEntries(runAt)); err != nil {
		return Result{}, err
	}
	if err := add(TeamsFileName, g.teamEntries(runAt)); err != nil {
		return Result{}, err
	}
	if err := add(BettingSitesFileName, g.bettingSiteEntries(runAt)); err != nil {
		return Result{}, err
	}
	for _, lang := range g.languages {
		if err := add(LanguageFileName(lang.Code), g.languageEntries(lang, runAt)); err != nil {
			return Result{}, err
		}
	}
	if err := add(matchesFileName(month), g.matchEntries(matches, runAt)); err != nil {
		return Result{}, err
	}

	index, err := g.renderIndex(files, runAt)
	if err != nil {
		return Result{}, err
	}
	files[IndexFileName] = index

	g.metrics.RecordSitemapRun(len(files), total)
	logging.Info(g.logger, "sitemaps generated",
		logging.FieldCount, len(files),
		slog.Int("urls", total),
		slog.String("month", month),
	)
	return Result{Files: files, TotalURLs: total}, nil
}

// LanguageFileName names the per-language sitemap file.
func LanguageFileName(code string) string {
	return "sitemap-" + strings.ToLower(code) + ".xml"
}

func matchesFileName(month string) string {
	return "sitemap-matches-" + month + ".xml"
}

func (g *Generator) homepageEntries(at time.Time) []URLEntry {
	entries := make([]URLEntry, 0, len(g.languages))
	for _, lang := range g.languages {
		entries = append(entries, URLEntry{
			Loc:        g.builder.BuildURL(lang.Subdomain, ""),
			LastMod:    at,
			ChangeFreq: FreqHourly,
			Priority:   pri(1.0),
		})
	}
	return entries
}

func (g *Generator) sectionEntries(at time.Time) []URLEntry {
	entries := make([]URLEntry, 0, len(g.languages)*len(g.sections))
	for _, lang := range g.languages {
		for _, s := range g.sections {
			entries = append(entries, URLEntry{
				Loc:        g.builder.BuildURL(lang.Subdomain, s.Path),
				LastMod:    at,
				ChangeFreq: s.ChangeFreq,
				Priority:   pri(s.Priority),
			})
		}
	}
	return entries
}

func (g *Generator) leagueEntries(at time.Time) []URLEntry {
	entries := make([]URLEntry, 0, len(g.languages)*len(g.leagues))
	for _, lang := range g.languages {
		for _, l := range g.leagues {
			entries = append(entries, URLEntry{
				Loc:        g.builder.BuildURL(lang.Subdomain, "league/"+PageSlug(l.Name)),
				LastMod:    at,
				ChangeFreq: FreqDaily,
				Priority:   pri(l.Priority),
			})
		}
	}
	return entries
}

func (g *Generator) teamEntries(at time.Time) []URLEntry {
	entries := make([]URLEntry, 0, len(g.languages)*len(g.teams))
	for _, lang := range g.languages {
		for _, t := range g.teams {
			entries = append(entries, URLEntry{
				Loc:        g.builder.BuildURL(lang.Subdomain, "team/"+PageSlug(t.Name)),
				LastMod:    at,
				ChangeFreq: FreqWeekly,
				Priority:   pri(t.Priority),
			})
		}
	}
	return entries
}

func (g *Generator) bettingSiteEntries(at time.Time) []URLEntry {
	entries := make([]URLEntry, 0, len(g.languages)*len(g.bettingSites))
	for _, lang := range g.languages {
		for _, b := range g.bettingSites {
			entries = append(entries, URLEntry{
				Loc:        g.builder.BuildURL(lang.Subdomain, "betting-sites/"+PageSlug(b.Name)),
				LastMod:    at,
				ChangeFreq: FreqWeekly,
				Priority:   pri(b.Priority),
			})
		}
	}
	return entries
}

// languageEntries collects every page of one language's subdomain into
// that language's own sitemap file.
func (g *Generator) languageEntries(lang i18n.Language, at time.Time) []URLEntry {
	var entries []URLEntry
	entries = append(entries, URLEntry{
		Loc:        g.builder.BuildURL(lang.Subdomain, ""),
		LastMod:    at,
		ChangeFreq: FreqHourly,
		Priority:   pri(1.0),
	})
	for _, s := range g.sections {
		entries = append(entries, URLEntry{
			Loc:        g.builder.BuildURL(lang.Subdomain, s.Path),
			LastMod:    at,
			ChangeFreq: s.ChangeFreq,
			Priority:   pri(s.Priority),
		})
	}
	for _, l := range g.leagues {
		entries = append(entries, URLEntry{
			Loc:        g.builder.BuildURL(lang.Subdomain, "league/"+PageSlug(l.Name)),
			LastMod:    at,
			ChangeFreq: FreqDaily,
			Priority:   pri(l.Priority),
		})
	}
	for _, t := range g.teams {
		entries = append(entries, URLEntry{
			Loc:        g.builder.BuildURL(lang.Subdomain, "team/"+PageSlug(t.Name)),
			LastMod:    at,
			ChangeFreq: FreqWeekly,
			Priority:   pri(t.Priority),
		})
	}
	for _, b := range g.bettingSites {
		entries = append(entries, URLEntry{
			Loc:        g.builder.BuildURL(lang.Subdomain, "betting-sites/"+PageSlug(b.Name)),
			LastMod:    at,
			ChangeFreq: FreqWeekly,
			Priority:   pri(b.Priority),
		})
	}
	return entries
}

// matchEntries emits three pages per match per language: the match page
// itself, its preview and its stats page.
func (g *Generator) matchEntries(matches []MatchRef, at time.Time) []URLEntry {
	entries := make([]URLEntry, 0, len(g.languages)*len(matches)*3)
	for _, lang := range g.languages {
		for _, m := range matches {
			if m.Slug == "" {
				continue
			}
			base := "match/" + m.Slug
			for _, path := range []string{base, base + "/preview", base + "/stats"} {
				entries = append(entries, URLEntry{
					Loc:        g.builder.BuildURL(lang.Subdomain, path),
					LastMod:    at,
					ChangeFreq: FreqDaily,
					Priority:   pri(matchPriority),
				})
			}
		}
	}
	return entries
}

// renderIndex lists every generated file on the default-language host.
func (g *Generator) renderIndex(files map[string]string, at time.Time) (string, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	sub := i18n.Default().Subdomain
	locs := make([]string, 0, len(names))
	for _, name := range names {
		locs = append(locs, g.builder.BuildURL(sub, "sitemaps/"+name))
	}
	return SerializeIndex(locs, at)
}
