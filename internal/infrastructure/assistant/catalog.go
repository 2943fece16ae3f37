package assistant

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PartsCatalog is optional prompt guidance: known problems with their typical
// diagnosis and materials. Entries whose problem phrase appears in the job
// description are injected into the analysis prompt so the model grounds its
// part list in the shop's real stock.

type PartsCatalogEntry struct {
	Problem   string   `yaml:"problem"`
	Diagnosis string   `yaml:"diagnosis"`
	Materials []string `yaml:"materials"`
}

type PartsCatalog struct {
	Entries []PartsCatalogEntry `yaml:"entries"`
}

func LoadPartsCatalog(path string) (*PartsCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parts catalog: %w", err)
	}
	var c PartsCatalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse parts catalog yaml: %w", err)
	}
	return &c, nil
}

// GuidanceFor renders the catalog entries relevant to the job description,
// matched by normalized problem phrase. Returns "" when nothing matches.
func (c *PartsCatalog) GuidanceFor(jobDescription string) string {
	if c == nil || len(c.Entries) == 0 {
		return ""
	}
	haystack := normalizeText(jobDescription)

	var b strings.Builder
	for _, e := range c.Entries {
		phrase := normalizeText(e.Problem)
		if phrase == "" || !strings.Contains(haystack, phrase) {
			continue
		}
		fmt.Fprintf(&b, "- problem: %s\n  diagnosis: %s\n  materials: %s\n",
			e.Problem, e.Diagnosis, strings.Join(e.Materials, ", "))
	}
	return b.String()
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
