package goquery

import (
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/dataminer"
)

// ValidateSelector reports whether locator is a valid CSS selector group.
// goquery silently matches nothing for invalid selectors, so callers use
// this to reject typos before any page is fetched.
func ValidateSelector(locator string) error {
	if _, err := cascadia.Compile(locator); err != nil {
		return dataminer.Errorf(dataminer.EINVALID, "invalid selector %q: %v", locator, err)
	}
	return nil
}

// ValidateConfig validates cfg and compiles its container and field selectors.
func ValidateConfig(cfg *dataminer.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := ValidateSelector(cfg.Container); err != nil {
		return err
	}
	for _, f := range cfg.Fields {
		if err := ValidateSelector(f.Locator); err != nil {
			return dataminer.Errorf(dataminer.EINVALID, "field %q: %s", f.Name, dataminer.ErrorMessage(err))
		}
	}
	return nil
}
