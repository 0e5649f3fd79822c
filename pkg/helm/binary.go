package helm

import (
	"fmt"
	"os"

	"github.com/MacroPower/mcsgraph/pkg/exec"
)

// templateWithBinary renders the chart by shelling out to `helm template`.
func templateWithBinary(opts *TemplateOpts) (string, error) {
	args := templateArgs(opts)

	if len(opts.Values) > 0 {
		p, err := writeValues(opts.Values)
		if err != nil {
			return "", err
		}

		defer func() {
			_ = os.RemoveAll(p)
		}()

		args = append(args, "--values", p)
	}

	out, err := exec.RunCommand(opts.HelmCommand, exec.DefaultCmdOpts, args...)
	if err != nil {
		return "", fmt.Errorf("error templating helm chart: %w", err)
	}

	return out, nil
}

func templateArgs(opts *TemplateOpts) []string {
	args := []string{"template", opts.ReleaseName, opts.ChartDir}

	if opts.Namespace != "" {
		args = append(args, "--namespace", opts.Namespace)
	}

	for _, vf := range opts.ValuesFiles {
		args = append(args, "--values", vf)
	}

	if opts.KubeVersion != "" {
		args = append(args, "--kube-version", opts.KubeVersion)
	}

	for _, av := range opts.APIVersions {
		args = append(args, "--api-versions", av)
	}

	if opts.SkipCRDs {
		args = append(args, "--skip-crds")
	} else {
		args = append(args, "--include-crds")
	}

	return args
}
