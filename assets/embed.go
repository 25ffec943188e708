package assets

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var messagesYAML []byte

// Messages is the catalogue of user-facing text.
type Messages struct {
	Greeting string `yaml:"greeting"`
	Range    string `yaml:"range"`
	Reveal   string `yaml:"reveal"`
	Prompt   string `yaml:"prompt"`
	Invalid  string `yaml:"invalid"`
	Echo     string `yaml:"echo"`
	TooLow   string `yaml:"too_low"`
	TooHigh  string `yaml:"too_high"`
	Win      string `yaml:"win"`
	Daily    string `yaml:"daily"`
	Round    string `yaml:"round"`
	Summary  string `yaml:"summary"`
}

// DefaultMessages parses the embedded catalogue.
func DefaultMessages() (Messages, error) {
	return ParseMessages(Messages{}, messagesYAML)
}

// ParseMessages parses a YAML catalogue on top of base.
// Keys missing from data keep the value they have in base.
func ParseMessages(base Messages, data []byte) (Messages, error) {
	m := base
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Messages{}, fmt.Errorf("parse messages: %w", err)
	}
	if m.Prompt == "" || m.Win == "" {
		return Messages{}, fmt.Errorf("parse messages: prompt and win are required")
	}
	if err := m.checkTemplates(); err != nil {
		return Messages{}, err
	}
	return m, nil
}

// checkTemplates formats every template with sample values of the types it
// is rendered with and rejects any that fmt reports as mismatched.
func (m Messages) checkTemplates() error {
	templates := []struct {
		key  string
		tmpl string
		args []any
	}{
		{"range", m.Range, []any{1, 100}},
		{"reveal", m.Reveal, []any{1}},
		{"echo", m.Echo, []any{1}},
		{"win", m.Win, []any{1}},
		{"daily", m.Daily, []any{"2006-01-02"}},
		{"round", m.Round, []any{1, 2}},
		{"summary", m.Summary, []any{1, 2, 3}},
	}
	for _, t := range templates {
		if t.tmpl == "" {
			continue
		}
		if out := fmt.Sprintf(t.tmpl, t.args...); strings.Contains(out, "%!") {
			return fmt.Errorf("parse messages: %s template %q does not match its %d argument(s)", t.key, t.tmpl, len(t.args))
		}
	}
	return nil
}
