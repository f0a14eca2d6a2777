package models

import (
	"fmt"
	"io/ioutil"

	"bat-go/internal/scoring"

	"gopkg.in/yaml.v3"
)

// Question is one BAT item as defined in the instrument YAML.
type Question struct {
	ID        string `yaml:"id" json:"id"`
	Text      string `yaml:"text" json:"text"`
	Dimension string `yaml:"dimension" json:"dimension"`
}

// Instrument holds the full questionnaire in scoring order.
type Instrument struct {
	Name      string     `yaml:"name" json:"name"`
	Version   string     `yaml:"version" json:"version"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// LoadInstrument reads and parses the questions YAML file. The item
// count must match what the scoring engine expects, since item order
// and position carry the dimension assignment.
func LoadInstrument(path string) (*Instrument, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instrument file: %w", err)
	}

	var instrument Instrument
	if err := yaml.Unmarshal(data, &instrument); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instrument YAML: %w", err)
	}

	if len(instrument.Questions) != scoring.NumItems {
		return nil, fmt.Errorf("instrument defines %d questions, scoring expects %d",
			len(instrument.Questions), scoring.NumItems)
	}

	return &instrument, nil
}
