package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "versions [package]",
		Short: "Print the resolved package versions",
		Long: "Print the resolved package versions in the order they are generated.\n\n" +
			"With a package argument only its version string is printed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatYAML {
				return zerr.With(domain.ErrUnknownOutputFormat, "format", format)
			}

			overrides, err := c.overrides()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				version, err := c.app.Lookup(cmd.Context(), overrides, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, version)
				return nil
			}

			vm, err := c.app.Versions(cmd.Context(), overrides)
			if err != nil {
				return err
			}
			if format == formatYAML {
				return writeYAML(out, vm)
			}
			for name, version := range vm.All() {
				_, _ = fmt.Fprintf(out, "%s %s\n", name, version)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or yaml")
	return cmd
}

// writeYAML encodes vm as a mapping. A yaml.Node keeps the insertion order
// that a Go map would lose.
func writeYAML(w io.Writer, vm *domain.VersionMap) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for name, version := range vm.All() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: version},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
