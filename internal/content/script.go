// Package content holds the static text and art the greeting plays through.
// The sequencer only sees message counts; everything shown on screen comes
// from a Script.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script is the injected content for one greeting.
type Script struct {
	Title              string   `yaml:"title"`
	Intro              []string `yaml:"intro"`
	BalloonsCaption    string   `yaml:"balloons_caption"`
	CakeHeading        string   `yaml:"cake_heading"`
	CakePrompt         string   `yaml:"cake_prompt"` // %d is replaced by the tap total
	CakeArt            string   `yaml:"cake_art"`
	CelebrationHeading string   `yaml:"celebration_heading"`
	Outro              []string `yaml:"outro"`
	FinalQuote         string   `yaml:"final_quote"`
	ReplayLabel        string   `yaml:"replay_label"`
}

const defaultCake = `      i   i   i   i
     _|___|___|___|_
    |~~~~~~~~~~~~~~~|
    |  *  *  *  *  *|
  __|_______________|__
 |~~~~~~~~~~~~~~~~~~~~~|
 |  ~  HAPPY  DAY  ~   |
 |_____________________|
   \___________________/`

// Default returns the built-in script.
func Default() *Script {
	return &Script{
		Title: "Happy 18th Birthday!",
		Intro: []string{
			"Hey my love...",
			"On this special day...",
			"I wanted to remind you of a few things.",
			"You are the most beautiful person I know, inside and out.",
			"Your smile lights up my entire world.",
			"You're not just a year older, but a year more incredible.",
			"Get ready for your surprise...",
		},
		BalloonsCaption:    "Here comes a surprise...",
		CakeHeading:        "A special cake for you!",
		CakePrompt:         "Tap the cake %d times to make a wish!",
		CakeArt:            defaultCake,
		CelebrationHeading: "Happy 18th Birthday!",
		Outro: []string{
			"I hope that made you smile.",
			"You deserve all the happiness in the universe.",
			"Every moment with you is a treasure.",
			"Happy 18th Birthday, my amazing girlfriend!",
		},
		FinalQuote:  "Thank you for being in my life and making it a beautiful adventure.",
		ReplayLabel: "Replay",
	}
}

// Load reads a YAML script. Fields left empty in the file keep their
// built-in values; an explicit empty list (intro: []) is honored.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML script data over the defaults and validates it.
func Parse(data []byte) (*Script, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	s.fillDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the script as YAML, creating parent directories.
func (s *Script) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create script directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal script: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

func (s *Script) fillDefaults() {
	d := Default()
	for _, f := range []struct {
		dst *string
		def string
	}{
		{&s.Title, d.Title},
		{&s.BalloonsCaption, d.BalloonsCaption},
		{&s.CakeHeading, d.CakeHeading},
		{&s.CakePrompt, d.CakePrompt},
		{&s.CakeArt, d.CakeArt},
		{&s.CelebrationHeading, d.CelebrationHeading},
		{&s.ReplayLabel, d.ReplayLabel},
	} {
		if strings.TrimSpace(*f.dst) == "" {
			*f.dst = f.def
		}
	}
}

// Validate rejects scripts that would render a blank screen.
func (s *Script) Validate() error {
	if strings.TrimSpace(s.FinalQuote) == "" {
		return fmt.Errorf("script: final_quote is required")
	}
	for i, m := range s.Intro {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("script: intro message %d is blank", i+1)
		}
	}
	for i, m := range s.Outro {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("script: outro message %d is blank", i+1)
		}
	}
	return nil
}

// Prompt formats the cake prompt for total taps.
func (s *Script) Prompt(total int) string {
	if strings.Contains(s.CakePrompt, "%d") {
		return fmt.Sprintf(s.CakePrompt, total)
	}
	return s.CakePrompt
}

// Message returns the i-th message of list, or "" when i is out of range.
func Message(list []string, i int) string {
	if i < 0 || i >= len(list) {
		return ""
	}
	return list[i]
}

// Markdown renders the script as a Markdown document.
func (s *Script) Markdown(totalTaps int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	b.WriteString("## Intro\n\n")
	for i, m := range s.Intro {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m)
	}
	fmt.Fprintf(&b, "\n## Surprise\n\n*%s*\n\n", s.BalloonsCaption)
	fmt.Fprintf(&b, "## Cake\n\n**%s** %s\n\n", s.CakeHeading, s.Prompt(totalTaps))
	fmt.Fprintf(&b, "```\n%s\n```\n\n", s.CakeArt)
	fmt.Fprintf(&b, "## Celebration\n\n**%s**\n\n", s.CelebrationHeading)
	b.WriteString("## Outro\n\n")
	for i, m := range s.Outro {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m)
	}
	fmt.Fprintf(&b, "\n> %s\n", s.FinalQuote)
	return b.String()
}
