package cli

import (
	"github.com/spf13/cobra"

	httpx "github.com/ravindragullapalli/http-request/http"
)

var putCmd = &cobra.Command{
	Use:   "put URL",
	Short: "Make a PUT request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, _ := cmd.Flags().GetString("data")
		runRequest(cmd, httpx.PUT, args[0], body)
	},
}

func init() {
	addRequestFlags(putCmd)
	putCmd.Flags().StringP("data", "d", "", "Request body")
}
