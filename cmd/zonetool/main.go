package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"zonefile-tools/zonefile"
)

// reportError prints a parse failure, highlighting the source location when
// the failure is a syntax error.
func reportError(path string, err error) {
	var synErr *zonefile.SyntaxError
	if errors.As(err, &synErr) {
		color.Red("%s:%d:%d: %s", path, synErr.Line, synErr.Col, synErr.Msg)
		return
	}
	color.Red("%s: %v", path, err)
}

func main() {
	app := &cli.App{
		Name:  "zonetool",
		Usage: "Check, normalize and inspect DNS zone files.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging.",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("debug") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Aliases:   []string{"c"},
				Usage:     "Parse zone files and report syntax errors.",
				ArgsUsage: "FILE...",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() == 0 {
						return cli.Exit("Please specify at least one zone file!", 1)
					}
					failed := 0
					for _, path := range ctx.Args().Slice() {
						entries, err := zonefile.ParseFile(path, zonefile.ParseOptions{})
						if err != nil {
							reportError(path, err)
							failed++
							continue
						}
						fmt.Printf("%s: OK (%d entries)\n", path, len(entries))
					}
					if failed > 0 {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
			{
				Name:      "fmt",
				Aliases:   []string{"f"},
				Usage:     "Reformat a zone file with aligned columns.",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "expand",
						Aliases: []string{"e"},
						Usage:   "Expand relative owner names against $ORIGIN.",
					},
					&cli.BoolFlag{
						Name:    "inherit-ttl",
						Aliases: []string{"t"},
						Usage:   "Fill missing TTLs from the most recent $TTL.",
					},
					&cli.BoolFlag{
						Name:    "blank-lines",
						Aliases: []string{"b"},
						Usage:   "Separate record types with blank lines.",
					},
					&cli.BoolFlag{
						Name:    "write",
						Aliases: []string{"w"},
						Usage:   "Rewrite the file in place instead of printing.",
					},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 1 {
						return cli.Exit("Please specify exactly one zone file!", 1)
					}
					path := ctx.Args().First()
					entries, err := zonefile.ParseFile(path, zonefile.ParseOptions{
						ExpandDomains: ctx.Bool("expand"),
						InheritTTL:    ctx.Bool("inherit-ttl"),
					})
					if err != nil {
						reportError(path, err)
						return cli.Exit("", 1)
					}
					opts := zonefile.FormatOptions{IncludeBlankLines: ctx.Bool("blank-lines")}
					if ctx.Bool("write") {
						return zonefile.WriteFile(path, entries, opts)
					}
					fmt.Print(zonefile.Format(entries, opts))
					return nil
				},
			},
			{
				Name:      "rr",
				Usage:     "Print the records of a zone file in canonical dns.RR form.",
				ArgsUsage: "FILE",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 1 {
						return cli.Exit("Please specify exactly one zone file!", 1)
					}
					path := ctx.Args().First()
					entries, err := zonefile.ParseFile(path, zonefile.ParseOptions{})
					if err != nil {
						reportError(path, err)
						return cli.Exit("", 1)
					}
					rrs, err := zonefile.RRs(entries)
					if err != nil {
						reportError(path, err)
						return cli.Exit("", 1)
					}
					for _, rr := range rrs {
						fmt.Println(rr.String())
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
