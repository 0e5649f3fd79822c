package helm

import (
	"log/slog"
	"time"
)

// TemplateOpts configures a single chart rendering.
type TemplateOpts struct {
	// ChartDir is the path to the chart directory.
	ChartDir string
	// ReleaseName is the Helm release name used for templating.
	ReleaseName string
	// Namespace is the target namespace.
	Namespace string
	// HelmCommand optionally names a helm binary; when set, rendering shells
	// out to `helm template` instead of using the in-process SDK.
	HelmCommand string
	// KubeVersion overrides the Kubernetes version for capabilities.
	KubeVersion string
	// ValuesFiles are merged in order, later files winning.
	ValuesFiles []string
	// APIVersions overrides the capability API versions.
	APIVersions []string
	// Values are inline values, merged over the values files.
	Values map[string]any
	// SkipCRDs excludes CRDs from the rendered output.
	SkipCRDs bool
}

// Template renders the chart and returns the manifest stream as text.
func Template(opts *TemplateOpts) (string, error) {
	start := time.Now()

	var (
		manifest string
		err      error
	)

	if opts.HelmCommand != "" {
		manifest, err = templateWithBinary(opts)
	} else {
		manifest, err = templateWithSDK(opts)
	}

	if err != nil {
		return "", err
	}

	slog.Debug("rendered helm chart",
		"chart", opts.ChartDir,
		"bytes", len(manifest),
		"duration", time.Since(start),
	)

	return manifest, nil
}
