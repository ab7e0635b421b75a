// simcom compiles "tipo" record declarations into C typedef structs.
//
// Usage:
//
//	simcom [flags] file.tipo [file.tipo ...]
//
// A single input writes to standard output unless -o names a file. With
// multiple inputs each file is compiled independently and written as a .h
// file beside its source, or under the -o directory. On failure a single
// diagnostic goes to standard error, the exit code identifies the failure
// class, and no output file is written or overwritten.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	simcom "github.com/marionauta/simple-compiler"
)

func main() {
	var (
		out        = flag.String("o", "", "output file (single input) or directory (multiple inputs)")
		emit       = flag.String("emit", "c", "output format: c or json")
		configPath = flag.String("config", ".simcom.yaml", "project config file")
		guard      = flag.Bool("guard", false, "wrap file output in an include guard")
		watch      = flag.Bool("watch", false, "recompile whenever an input file changes")
	)
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: simcom [flags] file.tipo [file.tipo ...]")
		flag.PrintDefaults()
		os.Exit(simcom.ExitInternal)
	}
	if *emit != "c" && *emit != "json" {
		fmt.Fprintf(os.Stderr, "simcom: unknown -emit format %q\n", *emit)
		os.Exit(simcom.ExitInternal)
	}

	cfg, err := simcom.LoadConfig(*configPath)
	if err != nil {
		fail(err)
	}

	r := &runner{cfg: cfg, out: *out, emit: *emit, guard: *guard}
	if *watch {
		if err := r.watch(flag.Args()); err != nil {
			fail(err)
		}
		return
	}
	if err := r.run(flag.Args()); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(simcom.ExitCode(err))
}

type runner struct {
	cfg   *simcom.Config
	out   string
	emit  string
	guard bool
}

// run compiles every input. Each file is an independent pipeline run, so
// they can proceed in parallel.
func (r *runner) run(files []string) error {
	if len(files) == 1 {
		return r.compile(files[0], r.target(files[0], len(files)))
	}
	var g errgroup.Group
	for _, file := range files {
		file := file
		g.Go(func() error {
			return r.compile(file, r.target(file, len(files)))
		})
	}
	return g.Wait()
}

// target decides where the generated text for an input goes. Empty means
// standard output.
func (r *runner) target(file string, inputs int) string {
	if inputs == 1 {
		return r.out
	}
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".h"
	if r.out != "" {
		return filepath.Join(r.out, name)
	}
	return filepath.Join(filepath.Dir(file), name)
}

func (r *runner) compile(file, target string) error {
	opts := r.cfg.Options()
	if r.guard && target != "" {
		opts = append(opts, simcom.WithHeaderGuard(target))
	}
	res, err := simcom.CompileFile(file, opts...)
	if err != nil {
		return err
	}
	output := []byte(res.Output)
	if r.emit == "json" {
		if output, err = res.JSON(); err != nil {
			return err
		}
	}
	if target == "" {
		_, err = os.Stdout.Write(output)
		return err
	}
	return os.WriteFile(target, output, 0o644)
}

// watch recompiles inputs as they change. A failed recompilation is
// logged and leaves the previous output untouched.
func (r *runner) watch(files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true
		// Watch the directory: editors commonly replace files on save,
		// which drops a watch placed on the file itself.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	for _, file := range files {
		if err := r.compile(file, r.target(file, len(files))); err != nil {
			log.Error("compilation failed", "file", file, "err", err)
		}
	}
	log.Info("watching for changes", "files", len(files))

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			log.Info("recompiling", "file", ev.Name)
			if err := r.compile(ev.Name, r.target(ev.Name, len(files))); err != nil {
				log.Error("compilation failed", "file", ev.Name, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "err", err)
		}
	}
}
