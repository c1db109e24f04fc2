package diagfmt

import (
	"io"
	"sort"

	"cxxdoc/internal/driver"
)

const (
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"
	// RuleUndocumented is the SARIF rule id of undocumented public API items.
	RuleUndocumented = "undocumented-api"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysical `json:"physicalLocation"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           sarifRegion   `json:"region"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn,omitempty"`
}

func sarifLevel(sev string) string {
	switch sev {
	case "ERROR":
		return "error"
	case "WARNING":
		return "warning"
	default:
		return "note"
	}
}

func sarifLoc(file string, line, col uint32) []sarifLocation {
	return []sarifLocation{{PhysicalLocation: sarifPhysical{
		ArtifactLocation: sarifArtifact{URI: file},
		Region:           sarifRegion{StartLine: line, StartColumn: col},
	}}}
}

// Sarif writes undocumented items and diagnostics of res as a SARIF v2.1.0 log.
func Sarif(w io.Writer, res *driver.Result, meta SarifRunMeta) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:    meta.ToolName,
			Version: meta.ToolVersion,
		}},
		Results: []sarifResult{},
	}
	if len(meta.InvocationArgs) > 0 {
		run.Invocations = []sarifInvocation{{Arguments: meta.InvocationArgs, ExecutionSuccessful: true}}
	}

	codes := map[string]string{}
	for _, f := range res.Files {
		rep := f.Report
		for _, it := range rep.Undocumented() {
			run.Results = append(run.Results, sarifResult{
				RuleID:    RuleUndocumented,
				Level:     "warning",
				Message:   sarifMessage{Text: "Undocumented API: " + it.Name},
				Locations: sarifLoc(rep.File, it.Line, it.Column),
			})
		}
		for _, d := range rep.Diagnostics {
			if _, ok := codes[d.Code]; !ok {
				codes[d.Code] = d.Message
			}
			run.Results = append(run.Results, sarifResult{
				RuleID:    d.Code,
				Level:     sarifLevel(d.Severity),
				Message:   sarifMessage{Text: d.Message},
				Locations: sarifLoc(rep.File, d.Line, d.Column),
			})
		}
	}

	run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
		ID:               RuleUndocumented,
		ShortDescription: sarifMessage{Text: "public API item without documentation comment"},
	})
	ids := make([]string, 0, len(codes))
	for id := range codes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{ID: id, ShortDescription: sarifMessage{Text: codes[id]}})
	}

	return writeJSON(w, sarifLog{Schema: sarifSchema, Version: sarifVersion, Runs: []sarifRun{run}})
}
