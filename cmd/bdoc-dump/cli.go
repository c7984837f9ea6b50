package main

import "flag"

// Options holds CLI options for the dump tool.
type Options struct {
	ConfigPath string
	InPath     string
	Format     string
}

// ParseFlags parses CLI flags from args and returns Options.
func ParseFlags(args []string) Options {
	fs := flag.NewFlagSet("bdoc-dump", flag.ExitOnError)
	var opts Options
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to YAML config file")
	fs.StringVar(&opts.InPath, "in", "", "Path to an encoded document file")
	fs.StringVar(&opts.Format, "format", "", "Output format: json, cbor or proto (default from config)")
	_ = fs.Parse(args)
	return opts
}
