package main

import (
	"fmt"
	"os"
	"refstats/cmd"
)

const usage = `usage: refstats <command> [flags]

commands:
  serve     run the query API
  collect   fetch every registry code and rewrite the snapshot
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = cmd.Serve(os.Args[2:])
	case "collect":
		err = cmd.Collect(os.Args[2:])
	default:
		fmt.Print(usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Printf("%s run into an error: %s\n", os.Args[1], err)
		os.Exit(1)
	}
}
