package interactive

import (
	"io"

	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/pterm/pterm"
)

// RenderPreviewTable writes plan as a two column table
func RenderPreviewTable(w io.Writer, plan *types.Plan) error {
	data := pterm.TableData{{MsgTableSource, MsgTableTarget}}
	for _, e := range plan.Entries {
		data = append(data, []string{e.Source.Name, e.TargetName})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}
