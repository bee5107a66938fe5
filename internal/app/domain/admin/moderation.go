package admin

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/wostup/wostup-go/internal/app/models"
)

// DefaultBannedTerms seeds the scanner when no custom list is
// configured. Matching is case-insensitive.
var DefaultBannedTerms = []string{
	"unpaid trial period",
	"pay to apply",
	"registration fee",
	"crypto wallet",
	"guaranteed income",
	"pyramid",
	"mlm",
}

// Finding is one banned term located in one update.
type Finding struct {
	UpdateID string
	Term     string
}

// Scanner flags startup updates containing banned terms. Updates may
// carry markup, so the text is extracted before matching and offsets
// refer to the stripped text.
type Scanner struct {
	terms   []string
	matcher ahocorasick.AhoCorasick
}

func NewScanner(terms []string) *Scanner {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})
	return &Scanner{
		terms:   terms,
		matcher: builder.Build(terms),
	}
}

// stripMarkup reduces an update body to plain text. Bodies without
// markup pass through unchanged apart from whitespace.
func stripMarkup(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return body
	}
	return strings.TrimSpace(doc.Text())
}

// Scan reports every banned term found in the update. A term appearing
// several times is reported once.
func (s *Scanner) Scan(update models.StartupUpdate) []Finding {
	text := stripMarkup(update.Title + " " + update.Body)

	seen := make(map[string]bool)
	var findings []Finding
	for _, match := range s.matcher.FindAll(text) {
		term := s.terms[match.Pattern()]
		if seen[term] {
			continue
		}
		seen[term] = true
		findings = append(findings, Finding{UpdateID: update.ID, Term: term})
	}
	return findings
}

// ScanAll partitions updates into flagged and clean.
func (s *Scanner) ScanAll(updates []models.StartupUpdate) (flagged map[string][]Finding, clean []models.StartupUpdate) {
	flagged = make(map[string][]Finding)
	for _, update := range updates {
		if findings := s.Scan(update); len(findings) > 0 {
			flagged[update.ID] = findings
			continue
		}
		clean = append(clean, update)
	}
	return flagged, clean
}
