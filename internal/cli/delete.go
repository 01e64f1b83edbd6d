package cli

import (
	"github.com/spf13/cobra"

	httpx "github.com/ravindragullapalli/http-request/http"
)

var deleteCmd = &cobra.Command{
	Use:   "delete URL",
	Short: "Make a DELETE request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, httpx.DELETE, args[0], "")
	},
}

func init() {
	addRequestFlags(deleteCmd)
}
