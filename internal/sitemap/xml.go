package sitemap

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"time"
)

// Namespace is the sitemaps.org protocol namespace every emitted file
// declares.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLEntry is one <url> element of a urlset file. A nil Priority means
// the entity carries none and the default is substituted; an explicit
// value, including 0, is printed as given.
type URLEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq ChangeFreq
	Priority   *float64
}

type xmlURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlSitemapRef struct {
	XMLName xml.Name `xml:"sitemap"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod,omitempty"`
}

type xmlSitemapIndex struct {
	XMLName  xml.Name        `xml:"sitemapindex"`
	XMLNS    string          `xml:"xmlns,attr"`
	Sitemaps []xmlSitemapRef `xml:"sitemap"`
}

// SerializeURLSet renders entries as a sitemaps.org urlset document.
// Entries with a zero priority or empty changefreq pick up the
// defaults. An empty slice still yields a schema-valid document.
func SerializeURLSet(entries []URLEntry) (string, error) {
	set := xmlURLSet{XMLNS: Namespace, URLs: make([]xmlURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, xmlURL{
			Loc:        e.Loc,
			LastMod:    formatLastMod(e.LastMod),
			ChangeFreq: string(changeFreqOrDefault(e.ChangeFreq)),
			Priority:   formatPriority(e.Priority),
		})
	}
	return renderDocument(set)
}

// SerializeIndex renders a sitemapindex document referencing the given
// child sitemap URLs, all stamped with the same lastmod.
func SerializeIndex(locs []string, lastMod time.Time) (string, error) {
	idx := xmlSitemapIndex{XMLNS: Namespace, Sitemaps: make([]xmlSitemapRef, 0, len(locs))}
	for _, loc := range locs {
		idx.Sitemaps = append(idx.Sitemaps, xmlSitemapRef{Loc: loc, LastMod: formatLastMod(lastMod)})
	}
	return renderDocument(idx)
}

func renderDocument(v any) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	buf.WriteString("\n")
	return buf.String(), nil
}

func changeFreqOrDefault(f ChangeFreq) ChangeFreq {
	if f == "" {
		return DefaultChangeFreq
	}
	return f
}

// formatPriority prints the value exactly as carried, never rounded;
// crawlers compare priorities across files, so "0.75" must not become
// "0.8".
func formatPriority(p *float64) string {
	if p == nil {
		return strconv.FormatFloat(DefaultPriority, 'f', -1, 64)
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatLastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
