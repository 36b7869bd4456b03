package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/fmtby"
)

// formNameWidth is the column width of form names in the forms listing.
const formNameWidth = 12

func newFormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the named output forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loggerFromContext(cmd.Context()).Debug("listing forms", "count", len(fmtby.Forms()))
			return fmtby.WriteChan(cmd.OutOrStdout(), fmtby.Display, formRows())
		},
	}
}

// formRows streams one "name  directive" row per named form.
func formRows() <-chan fmtby.Renderer {
	forms := fmtby.Forms()
	ch := make(chan fmtby.Renderer, len(forms))
	for _, f := range forms {
		name := fmtby.ByValue(f.Name(), fmtby.Padded[string]{Width: formNameWidth})
		ch <- fmtby.RenderFunc(func(s fmtby.Sink) error {
			if err := name.Render(s); err != nil {
				return err
			}
			_, err := s.WriteString(f.String())
			return err
		})
	}
	close(ch)
	return ch
}
