/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command klvresolve resolves KLV keys given as UL text:
//
//	klvresolve 06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.18.00
//	klvresolve -local-tag 0x3201 06.0e.2b.34.04.01.01.03.04.01.02.02.01.04.02.00
//	klvresolve -dict vendor.yaml -publish
//	klvresolve -metrics 06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.18.00
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/suparena/klvregistry"
	"github.com/suparena/klvregistry/config"
	"github.com/suparena/klvregistry/datastore/ddb"
	"github.com/suparena/klvregistry/dictionary"
	"github.com/suparena/klvregistry/logging"
	"github.com/suparena/klvregistry/metric"
	"github.com/suparena/klvregistry/storagemodels"
	"github.com/suparena/klvregistry/ul"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type cliFlags struct {
	version     bool
	envFile     string
	dicts       []string
	table       string
	dictName    string
	publish     bool
	expectCodec bool
	localTag    int
	list        bool
	metrics     bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	f := &cliFlags{localTag: -1}
	fs := flag.NewFlagSet("klvresolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&f.version, "version", false, "Show version information")
	fs.BoolVar(&f.version, "v", false, "Show version information (short)")
	fs.StringVar(&f.envFile, "env", ".env", "Path of an optional .env file")
	fs.Func("dict", "YAML extension dictionary (repeatable)", func(s string) error {
		f.dicts = append(f.dicts, s)
		return nil
	})
	fs.StringVar(&f.table, "table", "", "DynamoDB label table, overrides "+config.EnvAWSDDBTableName)
	fs.StringVar(&f.dictName, "dictionary-name", "", "Stored dictionary to load, overrides "+config.EnvDictionaryName)
	fs.BoolVar(&f.publish, "publish", false, "Write the YAML dictionaries to the label table")
	fs.BoolVar(&f.expectCodec, "expect-codec", false, "Resolve keys where an essence coding label is expected")
	fs.Func("local-tag", "Derive the expectation from the local tag the keys were read from (e.g. 0x3201)", func(s string) error {
		v, err := strconv.ParseUint(s, 0, 16)
		if err != nil {
			return err
		}
		f.localTag = int(v)
		return nil
	})
	fs.BoolVar(&f.list, "list", false, "List every registered label")
	fs.BoolVar(&f.metrics, "metrics", false, "Print resolver metrics after the keys, in Prometheus text format")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, keys, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if f.version {
		info := klvregistry.GetVersionInfo()
		fmt.Fprintf(stdout, "klvresolve version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return 0
	}

	cfg, err := config.Load(f.envFile)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	if f.table != "" {
		cfg.AWS.TableName = f.table
	}
	if f.dictName != "" {
		cfg.DictionaryName = f.dictName
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "logging: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	r, err := buildResolver(ctx, cfg, f, reg, logger)
	if err != nil {
		logger.Error("failed to build resolver", zap.Error(err))
		return 1
	}

	if f.list {
		listLabels(stdout, r)
		return 0
	}

	expect := klvregistry.ExpectMetadata
	if f.expectCodec {
		expect = klvregistry.ExpectEssenceCoding
	}
	if f.localTag >= 0 {
		expect = r.ExpectationForLocalTag(uint16(f.localTag))
	}

	code := 0
	for _, k := range keys {
		raw, err := ul.DecodeText(k)
		if err != nil {
			fmt.Fprintf(stdout, "%s error %v\n", k, err)
			code = 1
			continue
		}
		res, err := r.Resolve(raw, expect)
		if err != nil {
			fmt.Fprintf(stdout, "%s error %v\n", k, err)
			code = 1
			continue
		}
		fmt.Fprintln(stdout, res)
	}

	if f.metrics {
		if err := writeMetrics(stdout, reg); err != nil {
			logger.Error("failed to write metrics", zap.Error(err))
			return 1
		}
	}
	return code
}

// openLabelStore is replaced in tests.
var openLabelStore = func(ctx context.Context, aws config.AWSConfig, logger *zap.Logger) (dictionary.LabelStore, error) {
	client, err := ddb.NewDynamoDBClient(ctx, aws)
	if err != nil {
		return nil, err
	}
	return ddb.NewDynamodbDataStore[storagemodels.LabelRecord](client, aws.TableName, storagemodels.LabelIndexMap, ddb.WithLogger(logger))
}

// buildResolver merges the YAML and stored dictionaries into a resolver.
// Dictionaries are published only once the resolver has accepted them, so a
// conflicting dictionary never reaches the label table.
func buildResolver(ctx context.Context, cfg config.Config, f *cliFlags, reg prometheus.Registerer, logger *zap.Logger) (*klvregistry.Resolver, error) {
	var files []*dictionary.Dictionary
	for _, path := range append(cfg.DictionaryPaths, f.dicts...) {
		d, err := dictionary.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded dictionary", zap.String("name", d.Name), zap.String("path", path), zap.Int("labels", d.Len()))
		files = append(files, d)
	}

	if f.publish && !cfg.AWS.Enabled() {
		return nil, fmt.Errorf("-publish needs a label table (%s or -table)", config.EnvAWSDDBTableName)
	}

	var store dictionary.LabelStore
	if cfg.AWS.Enabled() && (f.publish || cfg.DictionaryName != "") {
		var err error
		if store, err = openLabelStore(ctx, cfg.AWS, logger); err != nil {
			return nil, err
		}
	}

	dicts := append([]*dictionary.Dictionary(nil), files...)
	if store != nil && cfg.DictionaryName != "" {
		d, err := dictionary.LoadFromStore(ctx, store, cfg.AWS.TableName, cfg.DictionaryName)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded stored dictionary", zap.String("name", d.Name), zap.Int("labels", d.Len()))
		dicts = append(dicts, d)
	}

	m, err := metric.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	opts := []klvregistry.Option{
		klvregistry.WithLogger(logger),
		klvregistry.WithMetrics(m),
	}
	for _, d := range dicts {
		opts = append(opts, klvregistry.WithDictionary(d))
	}
	r, err := klvregistry.New(opts...)
	if err != nil {
		return nil, err
	}

	if f.publish {
		for _, d := range files {
			if err := dictionary.Publish(ctx, store, d); err != nil {
				return nil, err
			}
			logger.Info("published dictionary", zap.String("name", d.Name), zap.String("table", cfg.AWS.TableName))
		}
	}
	return r, nil
}

func listLabels(w io.Writer, r *klvregistry.Resolver) {
	for _, e := range r.Shapes().Entries() {
		fmt.Fprintf(w, "%s shape %s (%s)\n", e.UL, e.Shape, e.Name)
	}
	for _, v := range r.Catalog().Variants() {
		fmt.Fprintf(w, "%s codec %s (%s)\n", v.UL, v.Codec, v.Name)
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
