package main

import (
	"errors"
	"log"
	"os"

	"github.com/autograde-tools/autograde/cmd/autograde/cmd"
	autograderr "github.com/autograde-tools/autograde/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, autograderr.ErrGradingFailed) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
