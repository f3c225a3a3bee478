package notation

import (
	"regexp"
	"strings"
)

var (
	rollLineRe   = regexp.MustCompile(`^d:\s*(.+?)\s*=>\s*(.+)$`)
	diceCmpRe    = regexp.MustCompile(`^(.+?)\s*([<>])\s*(\d+)\s*([SF])?$`)
	tableLineRe  = regexp.MustCompile(`^(?:tbl:|📖)\s*(.+?)\s*(?:=>|→)\s*(.+)$`)
	metaNoteRe   = regexp.MustCompile(`^\((\w+):\s*(.*)\)$`)
	resultRollRe = regexp.MustCompile(`^\(([^()]+)\)\s*(.+)$`)
	trailRollRe  = regexp.MustCompile(`^(.+?)\s*\(([^()]*=[^()]*)\)$`)
)

// ClassifyLine turns one line of a fenced notation block into an element.
// The second return is false for blank lines. Unrecognized content never
// fails classification; it falls through to TextLine.
func ClassifyLine(raw string, lineNumber int) (Element, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil, false
	}

	if rest, ok := cutPrefix(line, "▶", ">"); ok {
		return Action{Content: rest, LineNumber: lineNumber}, true
	}

	if rest, ok := cutPrefix(line, "?"); ok {
		return OracleQuestion{Question: rest, LineNumber: lineNumber}, true
	}

	if m := rollLineRe.FindStringSubmatch(line); m != nil {
		outcome := m[2]
		return MechanicsRoll{
			Roll:       m[1],
			Outcome:    outcome,
			Success:    deriveSuccess(outcome),
			LineNumber: lineNumber,
		}, true
	}
	if rest, ok := cutPrefix(line, "🎲"); ok {
		return classifyDiceLine(rest, lineNumber), true
	}

	if rest, ok := cutPrefix(line, "⤷", "->"); ok {
		return classifyOracleResult(rest, lineNumber), true
	}

	if rest, ok := cutPrefix(line, "⇒", "=>"); ok {
		return Consequence{Description: rest, LineNumber: lineNumber}, true
	}

	if m := tableLineRe.FindStringSubmatch(line); m != nil {
		return TableLookup{Roll: m[1], Result: m[2], LineNumber: lineNumber}, true
	}

	if gen, ok := classifyGenerator(line, lineNumber); ok {
		return gen, true
	}

	if m := metaNoteRe.FindStringSubmatch(line); m != nil {
		return MetaNote{Category: m[1], Content: strings.TrimSpace(m[2]), LineNumber: lineNumber}, true
	}

	return TextLine{Content: line, LineNumber: lineNumber}, true
}

// classifyDiceLine handles the 🎲 comparison shorthand, e.g. 🎲2<4 or
// 🎲5>3 S. The comparator sets the default verdict and a trailing S/F
// overrides it. A 🎲 line that is not comparison shorthand is treated like
// the d: form when it carries an arrow, and as a bare roll otherwise.
func classifyDiceLine(rest string, lineNumber int) Element {
	rest = strings.TrimSpace(rest)

	if m := diceCmpRe.FindStringSubmatch(rest); m != nil {
		success := SuccessNo
		if m[2] == ">" {
			success = SuccessYes
		}
		switch m[4] {
		case "S":
			success = SuccessYes
		case "F":
			success = SuccessNo
		}
		outcome := m[1] + m[2] + m[3]
		return MechanicsRoll{Roll: m[1], Outcome: outcome, Success: success, LineNumber: lineNumber}
	}

	if roll, outcome, ok := strings.Cut(rest, "=>"); ok {
		outcome = strings.TrimSpace(outcome)
		return MechanicsRoll{
			Roll:       strings.TrimSpace(roll),
			Outcome:    outcome,
			Success:    deriveSuccess(outcome),
			LineNumber: lineNumber,
		}
	}

	return MechanicsRoll{Roll: rest, Success: SuccessUnknown, LineNumber: lineNumber}
}

// deriveSuccess scans outcome text for verdict keywords. A trailing bare
// S or F token always wins over the keyword scan.
func deriveSuccess(outcome string) Success {
	if strings.HasSuffix(outcome, " S") || outcome == "S" {
		return SuccessYes
	}
	if strings.HasSuffix(outcome, " F") || outcome == "F" {
		return SuccessNo
	}

	lower := strings.ToLower(outcome)
	switch {
	case strings.Contains(lower, "strong hit") || strings.Contains(lower, "success"):
		return SuccessYes
	case strings.Contains(lower, "weak hit") || strings.Contains(lower, "fail") || strings.Contains(lower, "miss"):
		return SuccessNo
	}
	return SuccessUnknown
}

func classifyOracleResult(rest string, lineNumber int) Element {
	rest = strings.TrimSpace(rest)

	if m := resultRollRe.FindStringSubmatch(rest); m != nil {
		return OracleResult{Roll: strings.TrimSpace(m[1]), Answer: strings.TrimSpace(m[2]), LineNumber: lineNumber}
	}
	if m := trailRollRe.FindStringSubmatch(rest); m != nil {
		return OracleResult{Answer: strings.TrimSpace(m[1]), Roll: strings.TrimSpace(m[2]), LineNumber: lineNumber}
	}
	return OracleResult{Answer: rest, LineNumber: lineNumber}
}

// classifyGenerator parses gen:/📚 lines. The system description may itself
// contain arrows or numbers, so the result is everything after the final
// arrow.
func classifyGenerator(line string, lineNumber int) (Element, bool) {
	rest, ok := cutPrefix(line, "gen:", "📚")
	if !ok {
		return nil, false
	}

	idx := lastArrow(rest)
	if idx.start < 0 {
		return nil, false
	}
	system := strings.TrimSpace(rest[:idx.start])
	result := strings.TrimSpace(rest[idx.start+idx.width:])
	if system == "" || result == "" {
		return nil, false
	}
	return Generator{System: system, Result: result, LineNumber: lineNumber}, true
}

type arrowPos struct {
	start int
	width int
}

func lastArrow(s string) arrowPos {
	ascii := strings.LastIndex(s, "=>")
	uni := strings.LastIndex(s, "→")
	if ascii < 0 && uni < 0 {
		return arrowPos{start: -1}
	}
	if uni > ascii {
		return arrowPos{start: uni, width: len("→")}
	}
	return arrowPos{start: ascii, width: len("=>")}
}

// cutPrefix returns the trimmed remainder after the first matching marker.
func cutPrefix(line string, markers ...string) (string, bool) {
	for _, marker := range markers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):]), true
		}
	}
	return "", false
}
