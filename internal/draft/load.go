package draft

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a draft specification from a JSON or YAML file, selected by
// extension. The draft is validated before being returned.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}

	var spec Spec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("parse draft %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("parse draft %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported draft format %q (want .json, .yaml or .yml)", ext)
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid draft %s: %w", path, err)
	}

	return &spec, nil
}
