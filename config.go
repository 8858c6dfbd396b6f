package dataminer

// AttrText is the FieldSpec attribute that selects a node's text content.
const AttrText = "text"

// DefaultOutput is the output base name used when none is configured.
const DefaultOutput = "output"

// FieldSpec describes how to pull one value out of a container node.
type FieldSpec struct {
	// Name is the key of the value in every record.
	Name string `json:"name"`

	// Locator is a CSS selector evaluated relative to the container.
	Locator string `json:"selector"`

	// Attribute is either AttrText or the name of an attribute to read,
	// such as "href" or "src". Empty means AttrText.
	Attribute string `json:"attribute,omitempty"`
}

// Attr returns the attribute to read, applying the AttrText default.
func (f FieldSpec) Attr() string {
	if f.Attribute == "" {
		return AttrText
	}
	return f.Attribute
}

// Config describes a single extraction run.
// It must not be modified while a run is in progress.
type Config struct {
	// URLs are fetched in order.
	URLs []string `json:"urls"`

	// Container selects the repeated nodes that each become one record.
	Container string `json:"container"`

	// Fields are resolved against every container in slice order.
	Fields []FieldSpec `json:"fields"`

	// Format is the serialization format of the output file.
	Format Format `json:"format"`

	// Output is the output file name without extension.
	Output string `json:"output"`
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Container == "" {
		return Errorf(EINVALID, "container selector required")
	}
	if len(c.Fields) == 0 {
		return Errorf(EINVALID, "at least one field required")
	}
	seen := make(map[string]struct{}, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			return Errorf(EINVALID, "field %d: name required", i)
		}
		if f.Locator == "" {
			return Errorf(EINVALID, "field %q: selector required", f.Name)
		}
		if _, ok := seen[f.Name]; ok {
			return Errorf(EINVALID, "field %q: duplicate name", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// OutputFormat returns the configured format or FormatJSON.
func (c *Config) OutputFormat() Format {
	if c.Format == "" {
		return FormatJSON
	}
	return c.Format
}

// OutputName returns the configured output base name or DefaultOutput.
func (c *Config) OutputName() string {
	if c.Output == "" {
		return DefaultOutput
	}
	return c.Output
}
