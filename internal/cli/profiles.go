package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/ink"
)

func (c *CLI) profilesCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the available stroke profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := make([]ink.StrokeProfile, 0, len(ink.PresetNames()))
			for _, name := range ink.PresetNames() {
				p, _ := ink.Preset(name)
				profiles = append(profiles, p)
			}
			if file != "" {
				extra, err := ink.LoadProfileFile(file)
				if err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("Loaded profiles", "file", file, "count", len(extra))
				profiles = append(profiles, extra...)
			}

			title := cases.Title(language.English)
			w := cmd.OutOrStdout()
			for _, p := range profiles {
				if _, err := fmt.Fprintf(w, "%-14s %-14s width %g (%g-%g) opacity %g\n",
					p.Name, title.String(p.Name), p.BaseWidth, p.MinWidth, p.MaxWidth, p.Opacity); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "profiles", "", "TOML file with extra profiles")
	return cmd
}
