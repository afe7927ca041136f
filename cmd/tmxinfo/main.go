package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gookit/color"
	"golang.design/x/clipboard"

	"github.com/milk9111/tilemap/levels"
)

func main() {
	copyReport := flag.Bool("copy", false, "copy the report to the clipboard")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tmxinfo [-copy] map.tmx|map.json\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	parsed, err := levels.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	report, err := BuildReport(parsed)
	if err != nil {
		fmt.Print(report.Render())
		log.Fatal(err)
	}
	fmt.Print(report.Render())

	if *copyReport {
		if err := clipboard.Init(); err != nil {
			log.Fatalf("tmxinfo: clipboard: %v", err)
		}
		<-clipboard.Write(clipboard.FmtText, []byte(color.ClearCode(report.Render())))
	}
}
