package cli

import (
	"github.com/spf13/cobra"

	httpx "github.com/ravindragullapalli/http-request/http"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, _ := cmd.Flags().GetString("data")
		runRequest(cmd, httpx.POST, args[0], body)
	},
}

func init() {
	addRequestFlags(postCmd)
	postCmd.Flags().StringP("data", "d", "", "Request body")
}
