package helm

import (
	"fmt"
	"path/filepath"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/chartutil"
	"helm.sh/helm/v3/pkg/kube"
	"k8s.io/cli-runtime/pkg/genericclioptions"
)

// templateWithSDK renders the chart in-process, via an install action in
// client-only dry-run mode.
func templateWithSDK(opts *TemplateOpts) (string, error) {
	// Fail open instead of blocking the template.
	kv := &chartutil.KubeVersion{
		Major:   "999",
		Minor:   "999",
		Version: "v999.999.999",
	}

	var err error

	if opts.KubeVersion != "" {
		kv, err = chartutil.ParseKubeVersion(opts.KubeVersion)
		if err != nil {
			return "", fmt.Errorf("failed to parse kube version: %w", err)
		}
	}

	av := chartutil.DefaultVersionSet
	if len(opts.APIVersions) > 0 {
		av = chartutil.VersionSet(opts.APIVersions)
	}

	loadedChart, err := loader.Load(filepath.Clean(opts.ChartDir))
	if err != nil {
		return "", fmt.Errorf("failed to load chart: %w", err)
	}

	values, err := loadValues(opts)
	if err != nil {
		return "", err
	}

	ta := action.NewInstall(&action.Configuration{
		KubeClient: kube.New(genericclioptions.NewConfigFlags(false)),
		Capabilities: &chartutil.Capabilities{
			KubeVersion: *kv,
			APIVersions: av,
			HelmVersion: chartutil.DefaultCapabilities.HelmVersion,
		},
	})
	ta.DryRun = true
	ta.DryRunOption = "client"
	ta.ClientOnly = true
	ta.DisableHooks = true
	ta.ReleaseName = opts.ReleaseName
	ta.Namespace = opts.Namespace
	ta.NameTemplate = opts.ReleaseName
	ta.KubeVersion = kv
	ta.APIVersions = av

	// Set both, otherwise the defaults make things weird.
	ta.IncludeCRDs = !opts.SkipCRDs
	ta.SkipCRDs = opts.SkipCRDs

	release, err := ta.Run(loadedChart, values)
	if err != nil {
		return "", fmt.Errorf("failed to run install action: %w", err)
	}

	return release.Manifest, nil
}
