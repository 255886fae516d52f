package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/reoring/stacskema/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Kind     string `short:"k" long:"kind"      description:"Document kind" choice:"link" choice:"asset" choice:"bbox" choice:"geometry" choice:"feature" choice:"featurecollection" default:"feature"`
	Format   string `short:"f" long:"format"    description:"Input format (guessed from the file extension when empty)" choice:"json" choice:"yaml"`
	Output   string `short:"o" long:"output"    description:"Report format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	Strict   bool   `short:"s" long:"strict"    description:"Reject unknown keys and duplicate keys"`
	FailFast bool   `long:"fail-fast"           description:"Stop at the first issue of each document"`
	MaxDepth int    `long:"max-depth"           description:"Maximum nesting depth (0 means unlimited)" default:"0"`
	MaxBytes int64  `long:"max-bytes"           description:"Maximum document size in bytes (0 means unlimited)" default:"0"`
	Lang     string `short:"l" long:"lang"      env:"STACSKEMA_LANG" description:"Message language" choice:"en" choice:"ja" default:"en"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Documents to validate. Reads from stdin if none"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	opts.Logger.Setup()
	os.Exit(run(opts, os.Stdin, os.Stdout))
}
