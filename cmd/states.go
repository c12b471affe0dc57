package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/slideover/internal/output"
	"github.com/marcus/slideover/pkg/ui/overlay"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Print the overlay state machine",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), output.RenderTree(stateTree(), output.TreeRenderOptions{ShowDetail: true}))
	},
}

// stateTree groups overlay transitions by source state.
func stateTree() output.TreeNode {
	root := output.TreeNode{Label: "overlay", Detail: "triggers not listed are no-ops"}
	for _, s := range []overlay.State{overlay.Closed, overlay.Opening, overlay.Open, overlay.Closing} {
		detail := "unmounted"
		if s.Mounted() {
			detail = "mounted"
		}
		node := output.TreeNode{Label: s.String(), Detail: detail}
		for _, t := range overlay.AllTransitions() {
			if t.From != s {
				continue
			}
			node.Children = append(node.Children, output.TreeNode{
				Label:  fmt.Sprintf("%s → %s", t.Trigger, t.To),
				Detail: overlay.TransitionName(t.From, t.To),
			})
		}
		root.Children = append(root.Children, node)
	}
	return root
}

func init() {
	rootCmd.AddCommand(statesCmd)
}
