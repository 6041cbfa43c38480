package sitemap

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"
)

var testStamp = time.Date(2025, 8, 24, 10, 30, 0, 0, time.UTC)

func TestSerializeURLSetDefaults(t *testing.T) {
	doc, err := SerializeURLSet([]URLEntry{{Loc: "https://www.example.com/live", LastMod: testStamp}})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if !strings.Contains(doc, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Fatalf("missing namespace: %s", doc)
	}
	if !strings.Contains(doc, "<changefreq>weekly</changefreq>") {
		t.Fatalf("missing default changefreq: %s", doc)
	}
	if !strings.Contains(doc, "<priority>0.5</priority>") {
		t.Fatalf("missing default priority: %s", doc)
	}
	if !strings.Contains(doc, "<lastmod>2025-08-24T10:30:00Z</lastmod>") {
		t.Fatalf("missing lastmod: %s", doc)
	}
}

func TestSerializeURLSetEscapesLoc(t *testing.T) {
	doc, err := SerializeURLSet([]URLEntry{{Loc: "https://www.example.com/q?a=1&b=2"}})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if !strings.Contains(doc, "a=1&amp;b=2") {
		t.Fatalf("ampersand not escaped: %s", doc)
	}
}

func TestSerializeURLSetEmptyStillValid(t *testing.T) {
	doc, err := SerializeURLSet(nil)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	var parsed struct {
		XMLName xml.Name `xml:"urlset"`
		URLs    []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	if err := xml.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("empty urlset does not parse: %v", err)
	}
	if len(parsed.URLs) != 0 {
		t.Fatalf("expected zero urls, got %d", len(parsed.URLs))
	}
}

func TestSerializeIndexSharesLastMod(t *testing.T) {
	doc, err := SerializeIndex([]string{
		"https://www.example.com/sitemaps/sitemap-homepage.xml",
		"https://www.example.com/sitemaps/sitemap-sections.xml",
	}, testStamp)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if got := strings.Count(doc, "<lastmod>2025-08-24T10:30:00Z</lastmod>"); got != 2 {
		t.Fatalf("expected 2 shared lastmod values, got %d in %s", got, doc)
	}
	if !strings.Contains(doc, "<sitemapindex") {
		t.Fatalf("missing sitemapindex root: %s", doc)
	}
}

func TestFormatPriorityPrintsAsGiven(t *testing.T) {
	pin := func(v float64) *float64 { return &v }
	cases := map[string]struct {
		in   *float64
		want string
	}{
		"missing defaults":     {nil, "0.5"},
		"explicit zero stays":  {pin(0), "0"},
		"two decimals survive": {pin(0.75), "0.75"},
		"half":                 {pin(0.5), "0.5"},
		"one":                  {pin(1), "1"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := formatPriority(tc.in); got != tc.want {
				t.Fatalf("formatPriority = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSerializeURLSetKeepsExplicitPriority(t *testing.T) {
	pin := func(v float64) *float64 { return &v }
	doc, err := SerializeURLSet([]URLEntry{
		{Loc: "https://www.example.com/a", Priority: pin(0.75)},
		{Loc: "https://www.example.com/b", Priority: pin(0)},
	})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if !strings.Contains(doc, "<priority>0.75</priority>") {
		t.Fatalf("explicit 0.75 must not be rounded: %s", doc)
	}
	if !strings.Contains(doc, "<priority>0</priority>") {
		t.Fatalf("explicit 0 must not pick up the default: %s", doc)
	}
}
