package demo

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// Step is one operation of a demo and what it returned.
type Step struct {
	Operation string `json:"operation"`
	Result    string `json:"result"`
}

// Report is the outcome of running one demo.
type Report struct {
	Container string `json:"container"`
	Steps     []Step `json:"steps"`
}

func (r *Report) record(operation, format string, args ...any) {
	r.Steps = append(r.Steps, Step{Operation: operation, Result: fmt.Sprintf(format, args...)})
}

// Render writes r to w in the given output format.
func Render(w io.Writer, r Report, output string) error {
	switch output {
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "text":
		if _, err := fmt.Fprintln(w, r.Container); err != nil {
			return err
		}
		for _, s := range r.Steps {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", s.Operation, s.Result); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format '%s'", output)
	}
}
