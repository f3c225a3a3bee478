package parser

import (
	"strings"

	"gopkg.in/yaml.v3"

	"questlog/internal/campaign"
)

// parseFrontMatter reads an optional leading --- fenced YAML block into
// the campaign's metadata and returns the index of the first body line.
// A missing or unparseable block is empty metadata, never an error. The
// title comes from the front matter, else the first level-one heading,
// else the default.
func parseFrontMatter(c *campaign.Campaign, lines []string) int {
	body := 0
	if len(lines) > 0 && strings.TrimSpace(stripBOM(lines[0])) == "---" {
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "---" {
				block := strings.Join(lines[1:i], "\n")
				var front map[string]any
				if err := yaml.Unmarshal([]byte(block), &front); err == nil && front != nil {
					c.FrontMatter = front
				}
				body = i + 1
				break
			}
		}
	}

	if title, ok := c.FrontMatter["title"].(string); ok && strings.TrimSpace(title) != "" {
		c.Title = strings.TrimSpace(title)
		return body
	}
	for _, line := range lines[body:] {
		if m := titleHeadingRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if sessionHeadingRe.MatchString(strings.TrimSpace(line)) {
				break
			}
			c.Title = strings.TrimSpace(m[1])
			break
		}
	}
	return body
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
