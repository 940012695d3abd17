package main

import (
	"os"

	"github.com/dmitrijs2005/messagely/internal/server"
)

func main() {
	os.Exit(server.Main())
}
