package inkwash

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/inkwash/inkwash/internal/inkwash/tools"
)

func init() {
	rootCmd.AddCommand(toolsCmd)
}

// toolsCmd prints the static catalog, the same data tools/list sends on the
// wire. Handy for checking client configuration without speaking MCP.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalog as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		b, err := json.MarshalIndent(tools.Catalog(), "", "  ")
		if err != nil {
			log.Err(err).Msg("failed to marshal tool catalog")
			return
		}
		fmt.Println(string(b))
	},
}
