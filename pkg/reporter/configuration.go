// --- START OF FINAL REVISED FILE pkg/reporter/configuration.go ---
package reporter

import (
	"sort"

	"github.com/stackvity/cucumber-reporting/pkg/reporter/builder"
	"github.com/stackvity/cucumber-reporting/pkg/util"
)

// NewConfiguration copies the build parameters in opts into the value the report builder
// consumes. Classification labels get their first character title-cased; entries are
// ordered by label, then value. An empty mapping yields no classifications.
func NewConfiguration(opts *Options) builder.Configuration {
	cfg := builder.Configuration{
		OutputDirectory: opts.OutputDirectory,
		CucumberOutput:  opts.CucumberOutput,
		ProjectName:     opts.ProjectName,
		BuildNumber:     opts.BuildNumber,
		SkippedFails:    opts.SkippedFails,
		PendingFails:    opts.PendingFails,
		UndefinedFails:  opts.UndefinedFails,
		MissingFails:    opts.MissingFails,
		FlashCharts:     opts.FlashCharts,
		HighCharts:      opts.HighCharts,
		RunWithJenkins:  opts.RunWithJenkins,
		ParallelTesting: opts.ParallelTesting,
	}
	if len(opts.Classifications) == 0 {
		return cfg
	}

	classifications := make([]builder.Classification, 0, len(opts.Classifications))
	for name, value := range opts.Classifications {
		classifications = append(classifications, builder.Classification{
			Name:  util.Capitalize(name),
			Value: value,
		})
	}
	// "env" and "Env" both end up as "Env"; keep both, deterministically.
	sort.Slice(classifications, func(i, j int) bool {
		if classifications[i].Name != classifications[j].Name {
			return classifications[i].Name < classifications[j].Name
		}
		return classifications[i].Value < classifications[j].Value
	})
	cfg.Classifications = classifications
	return cfg
}

// --- END OF FINAL REVISED FILE pkg/reporter/configuration.go ---
