package cli

import (
	"github.com/spf13/cobra"

	httpx "github.com/ravindragullapalli/http-request/http"
)

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Make a GET request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRequest(cmd, httpx.GET, args[0], "")
	},
}

func init() {
	addRequestFlags(getCmd)
}
