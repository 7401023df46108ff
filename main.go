package main

import (
	"fmt"
	"os"

	"github.com/chatterd/chatterd/cmd/client"
	"github.com/chatterd/chatterd/cmd/server"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("expected a subcommand: server, client")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "server":
		server.Main(os.Args[2:])
	case "client":
		client.Main(os.Args[2:])
	default:
		fmt.Printf("unknown subcommand: %s", os.Args[1])
		os.Exit(1)
	}
}
