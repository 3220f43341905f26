package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"mlguide/internal/catalog"
	"mlguide/internal/logging"
	"mlguide/internal/ui/logic"
	"mlguide/internal/ui/views"
	"mlguide/internal/web"
)

const defaultListWidth = 100

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON bool
		plain  bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "Print the models matching query",
		Example: `  mlguide list cifar
  mlguide list --json spam`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := logging.SetupConsole(cmd.ErrOrStderr(), cfg.Log.Level); err != nil {
				return err
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			store := catalog.Default
			models := logic.Filter(store.Models(), query)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				err := enc.Encode(web.ModelsResponse{
					Query:  query,
					Count:  len(models),
					Total:  store.Len(),
					Models: models,
				})
				return errors.Wrap(err, "error encoding models")
			}

			lr := lipgloss.NewRenderer(out)
			if plain {
				lr = views.PlainRenderer()
			}
			renderer := views.NewRendererWithStyles(views.NewStyles(lr))

			state := views.ViewState{
				Width:         width,
				Query:         query,
				Visible:       models,
				Total:         store.Len(),
				Tips:          store.Tips(),
				Columns:       views.Columns(width, cfg.UI.Columns),
				ShowTips:      cfg.UI.ShowTips,
				ShowFooter:    cfg.UI.ShowFooter,
				ShowNoResults: true,
			}

			_, err = fmt.Fprintf(out, "%s\n\n%s\n",
				renderer.Styles().Status.Render(views.MatchSummary(query, len(models), store.Len())),
				renderer.RenderBody(state))
			return errors.Wrap(err, "error writing models")
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the matching records as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	cmd.Flags().IntVar(&width, "width", defaultListWidth, "page width in columns")
	return cmd
}
