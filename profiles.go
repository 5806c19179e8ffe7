package tagcheck

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a YAML-loadable validation profile. Only the fields present in
// the document override the defaults; absent fields leave the validator's
// configuration untouched.
type Profile struct {
	// Strict applies the strict reading order preset before any explicit
	// override below.
	Strict bool `yaml:"strict"`

	// Direction is the reading direction: "ltr" (default) or "rtl".
	Direction string `yaml:"direction"`

	Structure struct {
		Nesting          *bool `yaml:"nesting"`
		RequiredChildren *bool `yaml:"required-children"`
		Attributes       *bool `yaml:"attributes"`
		EmptyElements    *bool `yaml:"empty-elements"`
		DuplicateIDs     *bool `yaml:"duplicate-ids"`
		MaxDepth         *int  `yaml:"max-depth"`
	} `yaml:"structure"`

	Headings struct {
		RequireFirstH1 *bool    `yaml:"require-first-h1"`
		MinTextLength  *int     `yaml:"min-text-length"`
		MaxLevel       *int     `yaml:"max-level"`
		GenericPhrases []string `yaml:"generic-phrases"`
	} `yaml:"headings"`

	ReadingOrder struct {
		VerticalTolerance   *float64 `yaml:"vertical-tolerance"`
		HorizontalTolerance *float64 `yaml:"horizontal-tolerance"`
		CheckOverlap        *bool    `yaml:"check-overlap"`
		OverlapThreshold    *float64 `yaml:"overlap-threshold"`
		CheckColumns        *bool    `yaml:"check-columns"`
		ColumnGapThreshold  *float64 `yaml:"column-gap"`
	} `yaml:"reading-order"`
}

// LoadProfile parses a validation profile from YAML.
func LoadProfile(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadProfileFile parses a validation profile from a YAML file.
func LoadProfileFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile: %w", err)
	}
	defer f.Close()
	return LoadProfile(f)
}

func (p *Profile) validate() error {
	switch p.Direction {
	case "", "ltr", "rtl":
	default:
		return fmt.Errorf("profile direction %q: want \"ltr\" or \"rtl\"", p.Direction)
	}
	return nil
}

// Profile applies a loaded profile to the validator and returns it for
// chaining.
func (v *Validator) Profile(p *Profile) *Validator {
	if p.Strict {
		v.Strict()
	}
	if p.Direction == "rtl" {
		v.RightToLeft()
	}

	if p.Structure.Nesting != nil {
		v.structureConfig.CheckNesting = *p.Structure.Nesting
	}
	if p.Structure.RequiredChildren != nil {
		v.structureConfig.CheckRequiredChildren = *p.Structure.RequiredChildren
	}
	if p.Structure.Attributes != nil {
		v.structureConfig.CheckAttributes = *p.Structure.Attributes
	}
	if p.Structure.EmptyElements != nil {
		v.structureConfig.CheckEmptyElements = *p.Structure.EmptyElements
	}
	if p.Structure.DuplicateIDs != nil {
		v.structureConfig.CheckDuplicateIDs = *p.Structure.DuplicateIDs
	}
	if p.Structure.MaxDepth != nil {
		v.structureConfig.MaxDepth = *p.Structure.MaxDepth
	}

	if p.Headings.RequireFirstH1 != nil {
		v.headingsConfig.CheckFirstHeadingIsH1 = *p.Headings.RequireFirstH1
	}
	if p.Headings.MinTextLength != nil {
		v.headingsConfig.MinTextLength = *p.Headings.MinTextLength
	}
	if p.Headings.MaxLevel != nil {
		v.headingsConfig.MaxLevel = *p.Headings.MaxLevel
	}
	if p.Headings.GenericPhrases != nil {
		v.headingsConfig.GenericPhrases = p.Headings.GenericPhrases
	}

	if p.ReadingOrder.VerticalTolerance != nil {
		v.readingOrderConfig.VerticalTolerance = *p.ReadingOrder.VerticalTolerance
	}
	if p.ReadingOrder.HorizontalTolerance != nil {
		v.readingOrderConfig.HorizontalTolerance = *p.ReadingOrder.HorizontalTolerance
	}
	if p.ReadingOrder.CheckOverlap != nil {
		v.readingOrderConfig.CheckOverlap = *p.ReadingOrder.CheckOverlap
	}
	if p.ReadingOrder.OverlapThreshold != nil {
		v.readingOrderConfig.OverlapThreshold = *p.ReadingOrder.OverlapThreshold
	}
	if p.ReadingOrder.CheckColumns != nil {
		v.readingOrderConfig.CheckColumns = *p.ReadingOrder.CheckColumns
	}
	if p.ReadingOrder.ColumnGapThreshold != nil {
		v.readingOrderConfig.ColumnGapThreshold = *p.ReadingOrder.ColumnGapThreshold
	}

	return v
}
