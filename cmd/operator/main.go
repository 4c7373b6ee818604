package main

import (
	"fmt"
	"os"

	"github.com/Byzantine-Finance/operator-sdk/cmd/operator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
