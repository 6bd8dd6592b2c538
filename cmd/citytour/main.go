// Command citytour shows a city set in a headless viewer session and
// reports its tour distances once per frame.
//
//	citytour -config citytour.yaml -frames 30 -gpx route.gpx
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/citytour/catalog"
	"github.com/katalvlaran/citytour/cities"
	"github.com/katalvlaran/citytour/config"
	"github.com/katalvlaran/citytour/logging"
	"github.com/katalvlaran/citytour/viewer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "citytour:", err)
		os.Exit(1)
	}
}

// options are the command-line flags.
type options struct {
	configPath string
	frames     int
	gpxPath    string
	geojsonOut string
	importSet  bool
	list       bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("citytour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.IntVar(&o.frames, "frames", 0, "stop after N frames (overrides config)")
	fs.StringVar(&o.gpxPath, "gpx", "", "write the city set as a GPX route to this file")
	fs.StringVar(&o.geojsonOut, "geojson", "", "write the city set as GeoJSON to this file")
	fs.BoolVar(&o.importSet, "import", false, "store the resolved city set in the catalog")
	fs.BoolVar(&o.list, "list", false, "list catalog sets and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.frames > 0 {
		cfg.Viewer.Frames = opts.frames
	}
	log := logging.New(cfg.Logging, stderr)

	store, err := openCatalog(ctx, cfg.Catalog, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if opts.list {
		names, err := store.List(ctx)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(stdout, n)
		}
		return nil
	}

	set, err := resolveSet(ctx, cfg, store)
	if err != nil {
		return err
	}
	log.Info("city set resolved", "source", cfg.Source.Kind, "set", set.Name, "cities", set.Len())

	if opts.importSet {
		if err = store.Put(ctx, set); err != nil {
			return err
		}
		log.Info("city set imported", "set", set.Name)
	}
	if opts.gpxPath != "" {
		if err = writeFile(opts.gpxPath, set, cities.WriteGPX); err != nil {
			return err
		}
	}
	if opts.geojsonOut != "" {
		if err = writeFile(opts.geojsonOut, set, cities.WriteGeoJSON); err != nil {
			return err
		}
	}

	sess, err := viewer.Open(cfg.Viewer, set, viewer.WithLogger(log))
	if err != nil {
		return err
	}
	defer sess.Close()

	_, err = sess.Run(ctx, stdout)

	return err
}

// openCatalog opens the configured store and seeds it with the builtin
// table when it holds no sets yet.
func openCatalog(ctx context.Context, cfg config.Catalog, log *slog.Logger) (catalog.Store, error) {
	var (
		store catalog.Store
		err   error
	)
	if cfg.DSN == "" {
		store = catalog.NewMemory()
	} else if store, err = catalog.OpenSQLite(ctx, cfg.DSN); err != nil {
		return nil, err
	}

	names, err := store.List(ctx)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if len(names) > 0 {
		return store, nil
	}

	tbl, err := cities.Builtin()
	if err == nil {
		err = catalog.ImportTable(ctx, store, tbl)
	}
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	log.Debug("catalog seeded", "sets", len(tbl))

	return store, nil
}

// resolveSet loads the city set named by cfg.Source.
func resolveSet(ctx context.Context, cfg config.Config, store catalog.Store) (cities.Set, error) {
	src := cfg.Source
	switch src.Kind {
	case config.SourceBuiltin:
		tbl, err := cities.Builtin()
		if err != nil {
			return cities.Set{}, err
		}
		return tbl.Lookup(cfg.Viewer.CityCount)
	case config.SourceRandom:
		return cities.Random(cfg.Viewer.CityCount, cities.WithSeed(src.Seed))
	case config.SourceGeoJSON:
		return readFile(src.Path, cities.ReadGeoJSON)
	case config.SourceOSM:
		return readFile(src.Path, cities.ReadOSM)
	case config.SourceCatalog:
		return store.Get(ctx, src.Set)
	}

	return cities.Set{}, fmt.Errorf("source %q: %w", src.Kind, config.ErrInvalidConfig)
}

func readFile(path string, read func(string, io.Reader) (cities.Set, error)) (cities.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return cities.Set{}, err
	}
	defer f.Close()

	return read(path, f)
}

func writeFile(path string, set cities.Set, write func(io.Writer, cities.Set) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return write(f, set)
}
