package helm

import (
	"fmt"
	"os"
	"path"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// loadValues reads and merges the values files in order, with later files
// taking precedence, then merges any inline values over the result.
func loadValues(opts *TemplateOpts) (map[string]any, error) {
	values := map[string]any{}

	for _, vf := range opts.ValuesFiles {
		data, err := os.ReadFile(vf)
		if err != nil {
			return nil, fmt.Errorf("failed to read values file: %w", err)
		}

		fileValues := map[string]any{}
		if err := yaml.Unmarshal(data, &fileValues); err != nil {
			return nil, fmt.Errorf("failed to parse values file %q: %w", vf, err)
		}

		values = mergeMaps(values, fileValues)
	}

	if opts.Values != nil {
		values = mergeMaps(values, opts.Values)
	}

	return values, nil
}

// mergeMaps deep-merges b over a, without mutating either input.
func mergeMaps(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v
	}

	for k, v := range b {
		if bm, ok := v.(map[string]any); ok {
			if am, ok := out[k].(map[string]any); ok {
				out[k] = mergeMaps(am, bm)

				continue
			}
		}

		out[k] = v
	}

	return out
}

// writeValues writes values to a uniquely-named temporary YAML file and
// returns its path. The caller is responsible for removal.
func writeValues(values map[string]any) (string, error) {
	valuesYAML, err := yaml.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("error marshaling values to YAML: %w", err)
	}

	rand, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("error generating random filename for values file: %w", err)
	}

	p := path.Join(os.TempDir(), rand.String())

	err = os.WriteFile(p, valuesYAML, 0o600)
	if err != nil {
		return "", fmt.Errorf("error writing values file: %w", err)
	}

	return p, nil
}
