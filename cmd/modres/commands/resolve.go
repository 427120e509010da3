package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/modres/internal/adapters/linear"
	"go.trai.ch/modres/internal/app"
	"go.trai.ch/modres/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [specifiers...]",
		Short: "Resolve specifiers to absolute paths",
		Example: `  modres resolve left-pad ./src/app --from ./packages/web
  modres resolve @scope/ui/button --ext vue --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			return c.app.Resolve(cmd.Context(), args, resolveOptions(cmd))
		},
	}
	addResolveFlags(cmd)
	return cmd
}

// addResolveFlags registers the flags shared by resolve and watch.
func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "Directory to resolve from (default: working directory)")
	cmd.Flags().StringSliceP("ext", "e", nil, "Extra extension to probe, after the configured ones")
	cmd.Flags().StringSlice("exclude-ext", nil, "Extra extension that is never accepted")
	cmd.Flags().StringSlice("field", nil, "Extra package manifest entry field, after the configured ones")
	cmd.Flags().StringSlice("builtin", nil, "Extra builtin module name")
	cmd.Flags().Bool("strict-manifest", false, "Fail when a library has no manifest instead of escalating")
	cmd.Flags().Bool("no-parent-retry", false, "Do not retry a failed library lookup from the parent directory")
	cmd.Flags().Bool("plain", false, "Print resolved paths only")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	cmd.Flags().BoolP("verbose", "v", false, "Log resolution details")
	cmd.Flags().Bool("trace", false, "Log a span for every resolution (implies --verbose)")
	cmd.MarkFlagsMutuallyExclusive("plain", "json")
}

func resolveOptions(cmd *cobra.Command) app.ResolveOptions {
	from, _ := cmd.Flags().GetString("from")
	exts, _ := cmd.Flags().GetStringSlice("ext")
	excluded, _ := cmd.Flags().GetStringSlice("exclude-ext")
	fields, _ := cmd.Flags().GetStringSlice("field")
	builtins, _ := cmd.Flags().GetStringSlice("builtin")
	strict, _ := cmd.Flags().GetBool("strict-manifest")
	noRetry, _ := cmd.Flags().GetBool("no-parent-retry")
	plain, _ := cmd.Flags().GetBool("plain")
	asJSON, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")
	trace, _ := cmd.Flags().GetBool("trace")

	mode := linear.ModePretty
	switch {
	case plain:
		mode = linear.ModePlain
	case asJSON:
		mode = linear.ModeJSON
	}

	return app.ResolveOptions{
		From: from,
		Extra: domain.ExtraOptions{
			Extensions:         exts,
			ExcludedExtensions: excluded,
			PackageFields:      fields,
			BuiltinModules:     builtins,
		},
		StrictManifest: strict,
		NoParentRetry:  noRetry,
		Mode:           mode,
		Verbose:        verbose,
		Trace:          trace,
	}
}
