// Package parser turns raw session-log text into a campaign model:
// front matter, numbered sessions (inline or linked from other
// documents), scenes, fenced notation blocks, and the canonical entities
// merged from tag mentions. Parsing never fails; malformed input degrades
// to the nearest safe reading.
package parser

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"questlog/internal/campaign"
	"questlog/internal/notation"
)

// DocumentStore is the file-access collaborator used to resolve linked
// session documents.
type DocumentStore interface {
	// Read returns the document text, failing with the store's not-found
	// error when absent.
	Read(ctx context.Context, path string) (string, error)
	// ResolveLink maps a raw link target (as written in the source) to a
	// readable path relative to the linking document.
	ResolveLink(rawTarget, fromPath string) (string, bool)
}

// The session heading word is locale-tolerant.
var (
	sessionHeadingRe = regexp.MustCompile(`(?i)^#{1,6}\s*(?:Session|Sesi[oó]n|Sess[aã]o|Sitzung)\s+(\d+)\b`)
	sessionLinkRe    = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]*)?\]\]`)
	linkOnlyLineRe   = regexp.MustCompile(`^(?:[-*+]\s+)?\[\[[^\]]+\]\]$`)
	linkNumberRe     = regexp.MustCompile(`(?i)\b(?:Session|Sesi[oó]n|Sess[aã]o|Sitzung)\s+(\d+)\b`)
	sceneHeadingRe   = regexp.MustCompile(`^#{1,6}\s*((?:[A-Za-z][A-Za-z0-9]*-)?S\d+[a-z]?)\s*(?:\*(.*?)\*)?\s*$`)
	metaLineRe       = regexp.MustCompile(`^\*([^*]+)\*$`)
	recapLineRe      = regexp.MustCompile(`^\*\*Recap:\*\*\s*(.+)$`)
	goalsLineRe      = regexp.MustCompile(`^\*\*Goals:\*\*\s*(.+)$`)
	titleHeadingRe   = regexp.MustCompile(`^#\s+(.+)$`)
	fenceRe          = regexp.MustCompile("^```")
)

// Parse builds the campaign for one document. Linked session documents
// are fetched through store one at a time, in link order; a link that
// cannot be resolved or read is logged and skipped. The returned campaign
// is complete for every input, however malformed.
func Parse(ctx context.Context, text, path string, store DocumentStore, logger *slog.Logger) *campaign.Campaign {
	if logger == nil {
		logger = slog.Default()
	}

	c := campaign.New(path)
	lines := strings.Split(text, "\n")

	body := parseFrontMatter(c, lines)
	parseSessions(ctx, c, lines, body, store, logger)

	sort.SliceStable(c.Sessions, func(i, j int) bool {
		return c.Sessions[i].Number < c.Sessions[j].Number
	})

	mergeMentions(c, collectMentions(c))
	return c
}

// parseSessions walks the document body, opening inline sessions at
// session headings and resolving linked sessions at session links. A
// link standing alone on its line closes the current inline session; a
// link mentioned in prose inside an open session is ignored.
func parseSessions(ctx context.Context, c *campaign.Campaign, lines []string, start int, store DocumentStore, logger *slog.Logger) {
	type span struct {
		session *campaign.Session
		start   int // index of the first body line after the heading
		end     int // exclusive
	}

	var spans []span
	open := false
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if m := sessionHeadingRe.FindStringSubmatch(line); m != nil {
			if open {
				spans[len(spans)-1].end = i
				spans[len(spans)-1].session.EndLine = i
			}
			number, _ := strconv.Atoi(m[1])
			session := &campaign.Session{Number: number, StartLine: i + 1, EndLine: len(lines)}
			spans = append(spans, span{session: session, start: i + 1, end: len(lines)})
			open = true
			continue
		}
		if open {
			if !linkOnlyLineRe.MatchString(line) {
				continue
			}
			if _, _, ok := matchSessionLink(line); !ok {
				continue
			}
			spans[len(spans)-1].end = i
			spans[len(spans)-1].session.EndLine = i
			open = false
		}

		if target, number, ok := matchSessionLink(line); ok {
			session := resolveLinkedSession(ctx, c.Path, target, number, store, logger)
			if session != nil {
				session.StartLine = i + 1
				session.EndLine = i + 1
				c.Sessions = append(c.Sessions, session)
			}
		}
	}

	for _, sp := range spans {
		session := sp.session
		content := lines[sp.start:sp.end]
		if len(content) > 0 {
			if meta := parseMetaLine(strings.TrimSpace(content[0])); meta != nil {
				session.Meta = meta
			}
		}
		session.Scenes = parseScenes(content, sp.start+1)
		c.Sessions = append(c.Sessions, session)
	}
}

// matchSessionLink recognizes cross-document links such as
// [[Session 3]] or [[sessions/Session 3|The Heist]].
func matchSessionLink(line string) (target string, number int, ok bool) {
	m := sessionLinkRe.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	target = strings.TrimSpace(m[1])
	num := linkNumberRe.FindStringSubmatch(target)
	if num == nil {
		return "", 0, false
	}
	number, _ = strconv.Atoi(num[1])
	return target, number, true
}

// resolveLinkedSession fetches and parses an external session document.
// Failures contribute no session and never abort the overall parse.
func resolveLinkedSession(ctx context.Context, fromPath, target string, number int, store DocumentStore, logger *slog.Logger) *campaign.Session {
	if store == nil {
		logger.Warn("linked session skipped: no document store", "target", target)
		return nil
	}
	path, ok := store.ResolveLink(target, fromPath)
	if !ok {
		logger.Warn("linked session skipped: unresolved link", "target", target, "from", fromPath)
		return nil
	}
	text, err := store.Read(ctx, path)
	if err != nil {
		logger.Warn("linked session skipped: unreadable document", "path", path, "error", err)
		return nil
	}

	session := &campaign.Session{Number: number, LinkedFrom: path}
	lines := strings.Split(text, "\n")
	if len(lines) > 0 {
		if meta := parseMetaLine(strings.TrimSpace(lines[0])); meta != nil {
			session.Meta = meta
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if m := recapLineRe.FindStringSubmatch(trimmed); m != nil {
			setMeta(session, "recap", strings.TrimSpace(m[1]))
		}
		if m := goalsLineRe.FindStringSubmatch(trimmed); m != nil {
			setMeta(session, "goals", strings.TrimSpace(m[1]))
		}
	}
	session.Scenes = parseScenes(lines, 1)
	return session
}

func setMeta(session *campaign.Session, key, value string) {
	if session.Meta == nil {
		session.Meta = make(map[string]string)
	}
	session.Meta[key] = value
}

// parseScenes segments a session body into scenes and classifies the
// lines inside fenced code blocks. offset is the absolute 1-based line
// number of lines[0] in the owning document. Prose outside fences stays
// unparsed.
func parseScenes(lines []string, offset int) []*campaign.Scene {
	var scenes []*campaign.Scene
	var current *campaign.Scene
	inFence := false

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		absolute := offset + i

		if !inFence {
			if m := sceneHeadingRe.FindStringSubmatch(line); m != nil {
				current = &campaign.Scene{
					ID:        m[1],
					Context:   strings.TrimSpace(m[2]),
					StartLine: absolute,
					EndLine:   absolute,
				}
				scenes = append(scenes, current)
				continue
			}
		}
		if current == nil {
			continue
		}
		current.EndLine = absolute

		if fenceRe.MatchString(line) {
			inFence = !inFence
			continue
		}
		if !inFence {
			continue
		}
		if element, ok := notation.ClassifyLine(raw, absolute); ok {
			current.Elements = append(current.Elements, element)
		}
	}
	return scenes
}

// parseMetaLine reads the asterisk-delimited metadata convention:
// *Date: 2024-01-15 | Duration: 2h | Goals: find the source*.
// Keys are lowercased; a line with no key:value pair is not metadata.
func parseMetaLine(line string) map[string]string {
	m := metaLineRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	meta := make(map[string]string)
	for _, pair := range strings.Split(m[1], "|") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		meta[key] = value
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
