package publisher

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GuidFromLastPathSegment derives the GUID from the final /-delimited
// segment of the feed URL.
const GuidFromLastPathSegment = "last_path_segment"

// Rule maps feed URLs containing a substring to a publisher GUID, either a
// fixed literal or one derived from the URL itself.
type Rule struct {
	Name     string `yaml:"name"`
	Contains string `yaml:"contains"`
	GUID     string `yaml:"guid"`
	GuidFrom string `yaml:"guid_from"`
}

// Ruleset is an ordered rule table; the first matching rule wins.
type Ruleset struct {
	Rules []Rule `yaml:"rules"`
}

// DefaultRuleset returns the built-in rule table covering the known
// publisher sources. This is a closed table, not a general URL parser; a
// new source means a new rule.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		Rules: []Rule{
			{Name: "wavlake-artist", Contains: "wavlake.com/feed/artist/", GuidFrom: GuidFromLastPathSegment},
			{Name: "bitpunk-zine", Contains: "zine.bitpunk.fm/feeds/publisher.xml", GUID: "5883e6be-4e0c-11f0-9524-00155dc57d8e"},
			{Name: "podtards-doerfels", Contains: "re.podtards.com", GUID: "doerfels-publisher-special"},
		},
	}
}

// LoadRuleset reads a YAML rule file that replaces the built-in table.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var ruleset Ruleset
	if err := yaml.Unmarshal(data, &ruleset); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ruleset.validate(); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
	}

	slog.Debug("Rules loaded", "path", path, "rules", len(ruleset.Rules))

	return &ruleset, nil
}

func (rs *Ruleset) validate() error {
	if len(rs.Rules) == 0 {
		return fmt.Errorf("at least one rule is required")
	}

	for i, rule := range rs.Rules {
		if rule.Name == "" {
			return fmt.Errorf("rule at index %d: name is required", i)
		}
		if rule.Contains == "" {
			return fmt.Errorf("rule '%s': contains is required", rule.Name)
		}
		if rule.GUID == "" && rule.GuidFrom == "" {
			return fmt.Errorf("rule '%s': either guid or guid_from is required", rule.Name)
		}
		if rule.GUID != "" && rule.GuidFrom != "" {
			return fmt.Errorf("rule '%s': guid and guid_from are mutually exclusive", rule.Name)
		}
		if rule.GuidFrom != "" && rule.GuidFrom != GuidFromLastPathSegment {
			return fmt.Errorf("rule '%s': unknown guid_from strategy: %s", rule.Name, rule.GuidFrom)
		}
	}

	return nil
}

// Resolve maps a feed URL to a publisher GUID. Returns an empty string
// when no rule matches.
func (rs *Ruleset) Resolve(feedURL string) string {
	for _, rule := range rs.Rules {
		if !strings.Contains(feedURL, rule.Contains) {
			continue
		}
		if rule.GUID != "" {
			return rule.GUID
		}
		segments := strings.Split(feedURL, "/")
		return segments[len(segments)-1]
	}
	return ""
}
