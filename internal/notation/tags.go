package notation

import (
	"regexp"
	"strconv"
	"strings"
)

// EntityKind is the identity-key prefix for a tagged entity.
type EntityKind string

const (
	EntityNPC      EntityKind = "npc"
	EntityLocation EntityKind = "location"
	EntityThread   EntityKind = "thread"
	EntityPC       EntityKind = "pc"
	EntityClock    EntityKind = "clock"
	EntityTrack    EntityKind = "track"
	EntityTimer    EntityKind = "timer"
	EntityEvent    EntityKind = "event"
)

// Mention is one unmerged tag occurrence. Which fields are populated
// depends on the kind: Tags for npc/location/pc, State for threads,
// Current/Total for clocks, tracks and events, Value for timers.
type Mention struct {
	Kind    EntityKind
	Key     string
	Name    string
	Tags    []string
	State   string
	Current int
	Total   int
	Value   int
	Ref     bool
}

// Kind keywords are case-sensitive; [n:bob] is plain text, not a tag.
var (
	tagRe      = regexp.MustCompile(`\[(#?)(N|L|Thread|PC|Clock|Track|Timer|E):([^\]]*)\]`)
	refRe      = regexp.MustCompile(`^\[#(?:N|L):[^\]]+\]$`)
	progressRe = regexp.MustCompile(`^(.*?)\s+(\d+)\s*/\s*(\d+)$`)
	pipeProgRe = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)$`)
	timerValRe = regexp.MustCompile(`^(.*?)\s+(-?\d+)$`)
)

var kindByKeyword = map[string]EntityKind{
	"N":      EntityNPC,
	"L":      EntityLocation,
	"Thread": EntityThread,
	"PC":     EntityPC,
	"Clock":  EntityClock,
	"Track":  EntityTrack,
	"Timer":  EntityTimer,
	"E":      EntityEvent,
}

// ExtractMentions scans a block of text for entity tags and returns one
// mention per occurrence, left to right. Malformed tags (empty name,
// thread without a state, progress kind without numbers) contribute
// nothing; they never fail the scan.
func ExtractMentions(text string) []Mention {
	matches := tagRe.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}

	mentions := make([]Mention, 0, len(matches))
	for _, m := range matches {
		isRef := m[1] == "#"
		kind := kindByKeyword[m[2]]
		if isRef && kind != EntityNPC && kind != EntityLocation {
			continue
		}
		mention, ok := parseMention(kind, m[3], isRef)
		if !ok {
			continue
		}
		mentions = append(mentions, mention)
	}
	return mentions
}

// IsReference reports whether text is exactly a back-reference tag such
// as [#N:Grim], and nothing else.
func IsReference(text string) bool {
	return refRe.MatchString(strings.TrimSpace(text))
}

// Key derives the case-insensitive identity key for a kind and name.
func Key(kind EntityKind, name string) string {
	return string(kind) + ":" + strings.ToLower(strings.TrimSpace(name))
}

func parseMention(kind EntityKind, payload string, isRef bool) (Mention, bool) {
	segments := strings.Split(payload, "|")
	name := strings.TrimSpace(segments[0])
	if name == "" {
		return Mention{}, false
	}

	if isRef {
		return Mention{Kind: kind, Key: Key(kind, name), Name: name, Ref: true}, true
	}

	switch kind {
	case EntityNPC, EntityLocation, EntityPC:
		var tags []string
		for _, segment := range segments[1:] {
			if tag := strings.TrimSpace(segment); tag != "" {
				tags = append(tags, tag)
			}
		}
		return Mention{Kind: kind, Key: Key(kind, name), Name: name, Tags: tags}, true

	case EntityThread:
		if len(segments) < 2 {
			return Mention{}, false
		}
		state := strings.TrimSpace(segments[1])
		if state == "" {
			return Mention{}, false
		}
		return Mention{Kind: kind, Key: Key(kind, name), Name: name, State: state}, true

	case EntityClock, EntityTrack, EntityEvent:
		name, current, total, ok := parseProgress(name, segments[1:])
		if !ok {
			return Mention{}, false
		}
		return Mention{Kind: kind, Key: Key(kind, name), Name: name, Current: current, Total: total}, true

	case EntityTimer:
		name, value, ok := parseTimerValue(name, segments[1:])
		if !ok {
			return Mention{}, false
		}
		return Mention{Kind: kind, Key: Key(kind, name), Name: name, Value: value}, true
	}

	return Mention{}, false
}

// parseProgress accepts both suffix forms: [Clock:Name 3/6] and
// [Clock:Name|3/6].
func parseProgress(name string, rest []string) (string, int, int, bool) {
	if m := progressRe.FindStringSubmatch(name); m != nil && strings.TrimSpace(m[1]) != "" {
		current, _ := strconv.Atoi(m[2])
		total, _ := strconv.Atoi(m[3])
		return strings.TrimSpace(m[1]), current, total, true
	}
	for _, segment := range rest {
		if m := pipeProgRe.FindStringSubmatch(strings.TrimSpace(segment)); m != nil {
			current, _ := strconv.Atoi(m[1])
			total, _ := strconv.Atoi(m[2])
			return name, current, total, true
		}
	}
	return "", 0, 0, false
}

func parseTimerValue(name string, rest []string) (string, int, bool) {
	if m := timerValRe.FindStringSubmatch(name); m != nil && strings.TrimSpace(m[1]) != "" {
		value, _ := strconv.Atoi(m[2])
		return strings.TrimSpace(m[1]), value, true
	}
	for _, segment := range rest {
		if value, err := strconv.Atoi(strings.TrimSpace(segment)); err == nil {
			return name, value, true
		}
	}
	return "", 0, false
}
