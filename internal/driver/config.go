package driver

import (
	"cxxdoc/internal/project"
	"cxxdoc/internal/publicapi"
)

// FromConfig derives discovery and run options from a manifest
// configuration. Cache and Sink are left for the caller.
func FromConfig(cfg project.Config) (DiscoverOptions, Options) {
	disc := DiscoverOptions{
		Suffixes: append([]string(nil), cfg.Analysis.HeaderSuffixes...),
		Exclude:  append([]string(nil), cfg.Analysis.Exclude...),
	}
	opts := Options{
		Policy:         publicapi.Policy{IncludeProtected: cfg.Analysis.IncludeProtected},
		Jobs:           cfg.Run.Jobs,
		MaxDiagnostics: cfg.Run.MaxDiagnostics,
		Encoding:       cfg.Analysis.Encoding,
	}
	return disc, opts
}
