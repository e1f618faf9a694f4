// Command immocalc рассчитывает стратегии Bestand и Aufteiler из командной
// строки и запускает HTTP сервер инструментов.
package main

import (
	"fmt"
	"os"

	"github.com/cloud-ru/mcp-realestate-go/internal/cli"
)

func main() {
	c := cli.NewCLI(cli.Options{Output: os.Stdout})

	if err := c.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
