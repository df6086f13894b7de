package main

import "github.com/vdobler/qcplot/internal/cli"

func main() {
	cli.Execute()
}
