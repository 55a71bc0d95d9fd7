package scraper

import (
	"errors"
	"fmt"
	"strings"

	"go-job-alert/internal/logger"
)

var ErrUnknownSource = errors.New("unknown source")

// Factory builds one board adapter from the shared fetcher and options.
type Factory func(f *Fetcher, opts Options, log logger.Logger) Scraper

// Registry maps lowercase board names to adapter factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, f Factory) {
	r.factories[strings.ToLower(name)] = f
}

// Build returns adapters for names in the given order.
func (r *Registry) Build(names []string, f *Fetcher, opts Options, log logger.Logger) ([]Scraper, error) {
	out := make([]Scraper, 0, len(names))
	for _, name := range names {
		factory, ok := r.factories[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
		out = append(out, factory(f, opts, log))
	}
	return out, nil
}
