package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/orvi04/expense-tracker/cmd"
)

func main() {
	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	session := cmd.NewSession(os.Stdout)
	if err := session.Startup(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(session.Run(context.Background(), os.Stdin))
}
