package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"bdoc/pkg/codec"
	"bdoc/pkg/config"
	"bdoc/pkg/observability"
	"bdoc/pkg/transcode"
)

// run is the main entry point after CLI parsing.
func run(opts Options) int {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if opts.InPath == "" {
		zap.L().Error("missing -in path")
		return 1
	}
	format := opts.Format
	if format == "" {
		format = cfg.Dump.Format
	}

	raw, err := os.ReadFile(opts.InPath)
	if err != nil {
		zap.L().Error("read input", zap.Error(err))
		return 1
	}

	d, err := codec.Unmarshal(raw)
	if err != nil {
		zap.L().Error("decode document", zap.String("in", opts.InPath), zap.Error(err))
		return 1
	}
	zap.L().Debug("decoded document",
		zap.Int("bytes", len(raw)), zap.Int("elements", d.Len()))

	reg := transcode.NewRegistry()
	if c, err := transcode.CBOR(); err == nil {
		reg.Register(c)
	}

	var contentType string
	switch strings.ToLower(format) {
	case "json":
		contentType = "application/json"
	case "cbor":
		contentType = "application/cbor"
	case "proto":
		contentType = "application/x-protobuf"
	default:
		zap.L().Error("unknown format", zap.String("format", format))
		return 1
	}

	t := reg.Get(contentType)
	if t == nil {
		zap.L().Error("no transcoder registered", zap.String("content_type", contentType))
		return 1
	}
	out, err := t.Marshal(d)
	if err != nil {
		zap.L().Error("transcode", zap.String("content_type", contentType), zap.Error(err))
		return 1
	}

	// JSON is printable as-is; binary targets get hex dumped.
	if contentType == "application/json" {
		fmt.Println(string(out))
	} else {
		fmt.Println(hex.EncodeToString(out))
	}
	return 0
}
