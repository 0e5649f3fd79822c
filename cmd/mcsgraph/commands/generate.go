package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/mcsgraph/pkg/diagram"
	"github.com/MacroPower/mcsgraph/pkg/helm"
	"github.com/MacroPower/mcsgraph/pkg/kube"
	"github.com/MacroPower/mcsgraph/pkg/resource"
)

const (
	generateDesc = `This command renders a Helm chart and generates a Mermaid flowchart of the
dependencies between the MultiClusterService and ServiceTemplate resources in
the rendered output.
`
	generateExample = `  mcsgraph generate --chart_dir ./charts/k0rdent-istio -o dev/mcs-dependencies-diagram.md

  # Print the diagram to stdout
  mcsgraph generate --chart_dir ./charts/k0rdent-istio

  # Render with a helm binary instead of the built-in renderer
  mcsgraph generate --chart_dir ./charts/k0rdent-istio --helm_command helm
`
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrGenerateFailed  = errors.New("generate failed")
)

// NewGenerateCmd returns the generate command.
func NewGenerateCmd(arg *RootArgs) *cobra.Command {
	args := NewGenerateArgs(arg)

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a dependency diagram from a Helm chart",
		Long:         generateDesc,
		Example:      generateExample,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var merr error

			if args.GetChartDir() == "" {
				merr = multierror.Append(merr, errors.New("chart_dir must not be empty"))
			}

			for _, vf := range args.GetValuesFiles() {
				if _, err := os.Stat(vf); err != nil {
					merr = multierror.Append(merr, fmt.Errorf("values file: %w", err))
				}
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			manifest, err := helm.Template(&helm.TemplateOpts{
				ChartDir:    args.GetChartDir(),
				ReleaseName: args.GetReleaseName(),
				Namespace:   args.GetNamespace(),
				ValuesFiles: args.GetValuesFiles(),
				KubeVersion: args.GetKubeVersion(),
				APIVersions: args.GetAPIVersions(),
				SkipCRDs:    args.GetSkipCRDs(),
				HelmCommand: args.GetHelmCommand(),
			})
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
			}

			objs, err := kube.SplitYAML([]byte(manifest))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
			}

			resources, err := resource.FromManifest(objs)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
			}

			out, err := diagram.GenerateString(resources)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
			}

			outFile := args.GetOutput()

			// If no output file is specified, print to stdout.
			if outFile == "" {
				cmd.Println(out)

				return nil
			}

			err = os.MkdirAll(filepath.Dir(outFile), 0o700)
			if err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			err = os.WriteFile(outFile, []byte(out), 0o600)
			if err != nil {
				return fmt.Errorf("failed to write to output file: %w", err)
			}

			slog.Info("wrote diagram", "path", outFile, "resources", len(resources))

			return nil
		},
	}

	cmd.Flags().StringVar(args.chartDir, "chart_dir", ".", "Path to the Helm chart directory")
	must(cmd.MarkFlagDirname("chart_dir"))

	cmd.Flags().StringVarP(args.output, "output", "o", "", "Path to the output file (defaults to stdout)")
	must(cmd.MarkFlagFilename("output"))

	cmd.Flags().StringVar(args.releaseName, "release_name", "mcsgraph", "Helm release name used for templating")
	cmd.Flags().StringVarP(args.namespace, "namespace", "n", "default", "Target namespace used for templating")

	cmd.Flags().StringSliceVarP(args.valuesFiles, "values", "f", nil, "Values files, merged in order")
	must(cmd.MarkFlagFilename("values"))

	cmd.Flags().StringVar(args.kubeVersion, "kube_version", "", "Kubernetes version used for capabilities")
	cmd.Flags().StringSliceVar(args.apiVersions, "api_versions", nil, "Kubernetes API versions used for capabilities")
	cmd.Flags().BoolVar(args.skipCRDs, "skip_crds", false, "Exclude CRDs from the rendered output")

	cmd.Flags().StringVar(args.helmCommand, "helm_command", "",
		"Render with this helm binary instead of the built-in renderer")

	return cmd
}

// GenerateArgs holds the arguments for the generate command.
type GenerateArgs struct {
	chartDir    *string
	output      *string
	releaseName *string
	namespace   *string
	kubeVersion *string
	helmCommand *string
	valuesFiles *[]string
	apiVersions *[]string
	skipCRDs    *bool
	*RootArgs
}

// NewGenerateArgs creates a new [GenerateArgs].
func NewGenerateArgs(args *RootArgs) *GenerateArgs {
	return &GenerateArgs{
		chartDir:    new(string),
		output:      new(string),
		releaseName: new(string),
		namespace:   new(string),
		kubeVersion: new(string),
		helmCommand: new(string),
		valuesFiles: new([]string),
		apiVersions: new([]string),
		skipCRDs:    new(bool),
		RootArgs:    args,
	}
}

func (a *GenerateArgs) GetChartDir() string {
	return *a.chartDir
}

func (a *GenerateArgs) GetOutput() string {
	return *a.output
}

func (a *GenerateArgs) GetReleaseName() string {
	return *a.releaseName
}

func (a *GenerateArgs) GetNamespace() string {
	return *a.namespace
}

func (a *GenerateArgs) GetKubeVersion() string {
	return *a.kubeVersion
}

func (a *GenerateArgs) GetHelmCommand() string {
	return *a.helmCommand
}

func (a *GenerateArgs) GetValuesFiles() []string {
	return *a.valuesFiles
}

func (a *GenerateArgs) GetAPIVersions() []string {
	return *a.apiVersions
}

func (a *GenerateArgs) GetSkipCRDs() bool {
	return *a.skipCRDs
}
