// Package ideas parses LLM-generated campaign idea documents. The
// documents follow a loose label-based grammar (Name, Budget, Keywords,
// Negative Keywords, Headlines, Descriptions, Final URL) with ideas
// separated by delimiter lines. Model formatting drifts, so every field
// falls back to an empty value instead of failing.
package ideas

import (
	"regexp"
	"strconv"
	"strings"
)

// Idea is one parsed campaign idea block.
type Idea struct {
	Name         string
	BudgetDaily  float64 // currency units per day
	Keywords     []Keyword
	Negatives    []string
	Headlines    []string
	Descriptions []string
	FinalURL     string
}

// Keyword is a keyword with an optional per-keyword bid annotation.
type Keyword struct {
	Text      string
	BidMicros int64 // 0 when the document carries no bid
}

var (
	delimiterRe = regexp.MustCompile(`(?m)^\s*[-=*_]{3,}\s*$`)
	nameRe      = regexp.MustCompile(`(?im)^\s*(?:campaign\s+)?(?:idea\s+)?name\s*:\s*(.+)$`)
	budgetRe    = regexp.MustCompile(`(?im)^\s*(?:daily\s+)?budget\s*:\s*[^0-9]*([0-9]+(?:\.[0-9]+)?)`)
	finalURLRe  = regexp.MustCompile(`(?im)^\s*final\s*url\s*:\s*(\S+)`)
	bulletRe    = regexp.MustCompile(`^\s*[-*•]\s*(.+)$`)
	bidRe       = regexp.MustCompile(`^(.*?)\s*\{\s*([0-9]+)\s*\}\s*$`)
	labelRe     = regexp.MustCompile(`(?i)^\s*([a-z][a-z /-]*?)\s*:\s*(.*)$`)
)

// Parse splits an idea document into blocks and extracts each block's
// fields. Blocks with no recognizable content are skipped.
func Parse(text string) []Idea {
	var out []Idea
	for _, block := range delimiterRe.Split(text, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		idea := parseBlock(block)
		if idea.Name == "" && idea.BudgetDaily == 0 && len(idea.Keywords) == 0 {
			continue
		}
		out = append(out, idea)
	}
	return out
}

// FindIdea returns the first idea whose name contains the query,
// case-insensitively. The second return is false when nothing matches.
func FindIdea(ideas []Idea, name string) (Idea, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, idea := range ideas {
		if strings.Contains(strings.ToLower(idea.Name), needle) {
			return idea, true
		}
	}
	return Idea{}, false
}

func parseBlock(block string) Idea {
	var idea Idea

	if m := nameRe.FindStringSubmatch(block); m != nil {
		idea.Name = strings.TrimSpace(m[1])
	}
	if m := budgetRe.FindStringSubmatch(block); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			idea.BudgetDaily = v
		}
	}
	if m := finalURLRe.FindStringSubmatch(block); m != nil {
		idea.FinalURL = strings.TrimSpace(m[1])
	}
	if idea.Name == "" {
		idea.Name = firstLine(block)
	}

	idea.Keywords = parseKeywordList(section(block, "keywords"))
	idea.Negatives = bulletTexts(section(block, "negative keywords"))
	idea.Headlines = bulletTexts(section(block, "headlines"))
	idea.Descriptions = bulletTexts(section(block, "descriptions"))

	return idea
}

// section returns the bulleted lines following a "<label>:" line, up to
// the next labelled line. Missing sections return nil.
func section(block, label string) []string {
	lines := strings.Split(block, "\n")
	var out []string
	in := false

	for _, line := range lines {
		if m := labelRe.FindStringSubmatch(line); m != nil && !bulletRe.MatchString(line) {
			if in {
				break
			}
			if strings.EqualFold(strings.TrimSpace(m[1]), label) {
				in = true
				// Inline single-value sections: "Keywords: shoes, boots".
				if rest := strings.TrimSpace(m[2]); rest != "" {
					for _, item := range strings.Split(rest, ",") {
						if item = strings.TrimSpace(item); item != "" {
							out = append(out, "- "+item)
						}
					}
				}
			}
			continue
		}
		if in {
			if strings.TrimSpace(line) == "" {
				continue
			}
			out = append(out, line)
		}
	}
	return out
}

func bulletTexts(lines []string) []string {
	var out []string
	for _, line := range lines {
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			if text := strings.TrimSpace(m[1]); text != "" {
				out = append(out, text)
			}
		}
	}
	return out
}

func parseKeywordList(lines []string) []Keyword {
	var out []Keyword
	for _, text := range bulletTexts(lines) {
		kw := Keyword{Text: text}
		if m := bidRe.FindStringSubmatch(text); m != nil {
			kw.Text = strings.TrimSpace(m[1])
			if bid, err := strconv.ParseInt(m[2], 10, 64); err == nil {
				kw.BidMicros = bid
			}
		}
		if kw.Text != "" {
			out = append(out, kw)
		}
	}
	return out
}

func firstLine(block string) string {
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return strings.TrimLeft(trimmed, "# ")
		}
	}
	return ""
}
