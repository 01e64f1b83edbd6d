package main

import (
	"github.com/ravindragullapalli/http-request/internal/cli"
)

func main() {
	cli.Execute()
}
