package main

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/dataminer"
	"github.com/fwojciec/dataminer/goquery"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs      []string      `arg:"" optional:"" name:"url" help:"Page URLs to extract from, fetched in order"`
	Config    string        `short:"C" type:"existingfile" env:"DATAMINER_CONFIG" help:"JSON extraction config (urls, container, fields, format, output); flags override it"`
	Container string        `short:"c" env:"DATAMINER_CONTAINER" help:"CSS selector of the repeated item container"`
	Fields    []string      `short:"f" name:"field" sep:"none" placeholder:"NAME=SELECTOR[@ATTR]" help:"Field to extract from each container; repeatable, order is kept. ATTR defaults to text"`
	Format    string        `env:"DATAMINER_FORMAT" help:"Output format: json or csv (default: json)"`
	Output    string        `short:"o" env:"DATAMINER_OUTPUT" help:"Output file name without extension (default: output)"`
	Dir       string        `short:"d" default:"." type:"path" help:"Directory for the output file"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Per-request timeout"`
	UserAgent string        `default:"${user_agent}" help:"User-Agent header sent with requests"`
	PauseMin  time.Duration `default:"1s" help:"Minimum pause after each successful fetch"`
	PauseMax  time.Duration `default:"3s" help:"Maximum pause after each successful fetch"`
	Browser   bool          `short:"b" help:"Render pages with headless Chrome before extracting"`
	LogLevel  string        `default:"info" enum:"debug,info,warn,error" env:"DATAMINER_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
}

// ExtractionConfig builds the run configuration from the config file, if
// any, overlaid with flags. Selectors and the output format are validated
// so that no page is fetched for a run that cannot succeed.
func (c *CLI) ExtractionConfig() (*dataminer.Config, error) {
	cfg := &dataminer.Config{}
	if c.Config != "" {
		loaded, err := LoadConfig(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(c.URLs) > 0 {
		cfg.URLs = c.URLs
	}
	if c.Container != "" {
		cfg.Container = c.Container
	}
	if len(c.Fields) > 0 {
		fields := make([]dataminer.FieldSpec, 0, len(c.Fields))
		for _, s := range c.Fields {
			f, err := ParseField(s)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
		cfg.Fields = fields
	}
	if c.Format != "" {
		cfg.Format = dataminer.Format(c.Format)
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}

	if len(cfg.URLs) == 0 {
		return nil, dataminer.Errorf(dataminer.EINVALID, "at least one url required")
	}
	if err := goquery.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	format, err := dataminer.ParseFormat(string(cfg.OutputFormat()))
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	return cfg, nil
}

// LoadConfig reads a JSON extraction config from path.
func LoadConfig(path string) (*dataminer.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg dataminer.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, dataminer.Errorf(dataminer.EINVALID, "config %s: %v", path, err)
	}
	return &cfg, nil
}

// ParseField parses a NAME=SELECTOR[@ATTR] field flag.
func ParseField(s string) (dataminer.FieldSpec, error) {
	name, rest, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return dataminer.FieldSpec{}, dataminer.Errorf(dataminer.EINVALID, "field %q: expected NAME=SELECTOR[@ATTR]", s)
	}

	f := dataminer.FieldSpec{Name: name, Locator: strings.TrimSpace(rest)}
	if i := strings.LastIndex(f.Locator, "@"); i >= 0 && isAttrName(f.Locator[i+1:]) {
		f.Attribute = f.Locator[i+1:]
		f.Locator = strings.TrimSpace(f.Locator[:i])
	}
	if f.Locator == "" {
		return dataminer.FieldSpec{}, dataminer.Errorf(dataminer.EINVALID, "field %q: selector required", name)
	}
	return f, nil
}

// isAttrName reports whether s can be an @ATTR suffix rather than part of
// a quoted or bracketed selector.
func isAttrName(s string) bool {
	return s != "" && !strings.ContainsAny(s, "]\"' \t\r\n")
}
