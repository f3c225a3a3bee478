package parser

import (
	"strings"

	"questlog/internal/campaign"
	"questlog/internal/notation"
)

// locatedMention pairs a raw tag occurrence with its source position.
type locatedMention struct {
	notation.Mention
	src campaign.Source
}

// collectMentions gathers every tag occurrence in document scan order:
// sessions ascending, scenes in order, elements by line. Each element
// contributes its ScanText; meta notes contribute nothing.
func collectMentions(c *campaign.Campaign) []locatedMention {
	var mentions []locatedMention
	for _, session := range c.Sessions {
		file := c.Path
		if session.LinkedFrom != "" {
			file = session.LinkedFrom
		}
		for _, scene := range session.Scenes {
			for _, element := range scene.Elements {
				text := element.ScanText()
				if text == "" {
					continue
				}
				for _, mention := range notation.ExtractMentions(text) {
					mentions = append(mentions, locatedMention{
						Mention: mention,
						src: campaign.Source{
							File:    file,
							Line:    element.Line(),
							Session: session.Label(),
							Scene:   scene.ID,
						},
					})
				}
			}
		}
	}
	return mentions
}

// mergeMentions folds mentions into the campaign's canonical entity maps.
// Processing strictly in input order makes "latest" well-defined as "last
// processed", so last-write-wins fields need no timestamps.
func mergeMentions(c *campaign.Campaign, mentions []locatedMention) {
	for _, m := range mentions {
		if m.Ref {
			mergeReference(c, m)
			continue
		}
		switch m.Kind {
		case notation.EntityNPC:
			mergeEntity(c.NPCs, m)
		case notation.EntityLocation:
			mergeEntity(c.Locations, m)
		case notation.EntityPC:
			mergeEntity(c.PlayerCharacters, m)
		case notation.EntityThread:
			mergeThread(c, m)
		case notation.EntityClock:
			mergeProgress(c.Clocks, m)
		case notation.EntityTrack:
			mergeProgress(c.Tracks, m)
		case notation.EntityEvent:
			mergeProgress(c.Events, m)
		case notation.EntityTimer:
			mergeTimer(c, m)
		}
	}
}

func mergeEntity(entities map[string]*campaign.Entity, m locatedMention) {
	entity, ok := entities[m.Key]
	if !ok {
		entity = &campaign.Entity{ID: m.Key, Name: m.Name, FirstMention: m.src}
		entities[m.Key] = entity
	}
	entity.Tags = applyTagDiff(entity.Tags, m.Tags)
	entity.Mentions = append(entity.Mentions, m.src)
}

// applyTagDiff merges one mention's tag list into the existing set.
// Three rules: "-tag" removes the exact tag, "key=value" replaces any tag
// sharing the key (the new value appends at the end), and anything else
// appends unless already present.
func applyTagDiff(existing, incoming []string) []string {
	for _, tag := range incoming {
		switch {
		case strings.HasPrefix(tag, "-"):
			existing = removeTag(existing, tag[1:])
		case strings.Contains(tag, "="):
			key := tag[:strings.Index(tag, "=")]
			existing = removeKeyedTag(existing, key)
			existing = append(existing, tag)
		default:
			if !containsTag(existing, tag) {
				existing = append(existing, tag)
			}
		}
	}
	return existing
}

func removeTag(tags []string, tag string) []string {
	out := tags[:0]
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

func removeKeyedTag(tags []string, key string) []string {
	out := tags[:0]
	for _, t := range tags {
		if idx := strings.Index(t, "="); idx >= 0 && t[:idx] == key {
			continue
		}
		out = append(out, t)
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func mergeThread(c *campaign.Campaign, m locatedMention) {
	thread, ok := c.Threads[m.Key]
	if !ok {
		thread = &campaign.Thread{ID: m.Key, Name: m.Name, FirstMention: m.src}
		c.Threads[m.Key] = thread
	}
	thread.State = m.State
	thread.Mentions = append(thread.Mentions, m.src)
}

func mergeProgress(elements map[string]*campaign.Progress, m locatedMention) {
	element, ok := elements[m.Key]
	if !ok {
		element = &campaign.Progress{ID: m.Key, Name: m.Name}
		elements[m.Key] = element
	}
	element.Current = m.Current
	element.Total = m.Total
	element.Locations = append(element.Locations, m.src)
}

func mergeTimer(c *campaign.Campaign, m locatedMention) {
	timer, ok := c.Timers[m.Key]
	if !ok {
		timer = &campaign.Timer{ID: m.Key, Name: m.Name}
		c.Timers[m.Key] = timer
	}
	timer.Value = m.Value
	timer.Locations = append(timer.Locations, m.src)
}

// mergeReference records a back-reference and synthesizes a zero-tag
// canonical entity under the same key, so a name only ever back-referenced
// is still visible.
func mergeReference(c *campaign.Campaign, m locatedMention) {
	refType := "npc"
	if m.Kind == notation.EntityLocation {
		refType = "location"
	}

	ref, ok := c.References[m.Key]
	if !ok {
		ref = &campaign.Reference{ID: m.Key, Name: m.Name, Type: refType, FirstMention: m.src}
		c.References[m.Key] = ref
	}
	ref.Mentions = append(ref.Mentions, m.src)

	target := c.NPCs
	if m.Kind == notation.EntityLocation {
		target = c.Locations
	}
	mergeEntity(target, locatedMention{
		Mention: notation.Mention{Kind: m.Kind, Key: m.Key, Name: m.Name},
		src:     m.src,
	})
}
