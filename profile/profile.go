// Package profile decodes a YAML classification profile into a ready
// classifier registry, so deployments can tune the built-in chain without
// code changes.
package profile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/aponysus/verdict/classify"
)

// Built-in classifier names accepted in the disable list.
var builtinNames = map[string]struct{}{
	"http-status-code":   {},
	"service-error-code": {},
	"modeled-retryable":  {},
	"transient-error":    {},
}

// Profile customizes the built-in classifier chain.
type Profile struct {
	// RetryableStatusCodes overrides the status set of the HTTP status code
	// classifier. Empty keeps the default {500, 502, 503, 504}.
	RetryableStatusCodes []int `yaml:"retryable_status_codes"`

	// Disable lists built-in classifiers to leave out, by name.
	Disable []string `yaml:"disable"`
}

// Parse decodes a YAML profile. Unknown fields, malformed status codes, and
// unknown classifier names are rejected.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("profile: parse: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses a YAML profile from r.
func Load(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("profile: read: %w", err)
	}
	return Parse(data)
}

func (p *Profile) validate() error {
	for _, code := range p.RetryableStatusCodes {
		if code < 100 || code > 599 {
			return fmt.Errorf("profile: invalid status code %d", code)
		}
	}
	for _, name := range p.Disable {
		if _, ok := builtinNames[name]; !ok {
			return fmt.Errorf("profile: unknown classifier %q", name)
		}
	}
	return nil
}

// Registry builds the built-in classifier registry with the profile applied.
func (p *Profile) Registry() *classify.Registry {
	disabled := make(map[string]struct{}, len(p.Disable))
	for _, name := range p.Disable {
		disabled[name] = struct{}{}
	}

	status := classify.HTTPStatusCodeClassifier{}
	if len(p.RetryableStatusCodes) > 0 {
		status.Retryable = make(map[int]struct{}, len(p.RetryableStatusCodes))
		for _, code := range p.RetryableStatusCodes {
			status.Retryable[code] = struct{}{}
		}
	}

	r := classify.NewRegistry()
	for _, c := range []classify.Classifier{
		status,
		classify.ServiceErrorCodeClassifier{},
		classify.ModeledRetryableClassifier{},
		classify.TransientErrorClassifier{},
	} {
		if _, ok := disabled[c.Name()]; ok {
			continue
		}
		r.Add(c)
	}
	return r
}
