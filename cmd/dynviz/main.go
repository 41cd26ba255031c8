/*
Command dynviz visualizes how a dynamization strategy arranges its units.

It inserts pseudo-random integers into a dynamized sorted vector and prints
the slot layout after every insertion, followed by merge statistics.

Usage:

	dynviz [-strategy binary|simple-binary|skew-binary] [-n 32] [-seed 1] [-dot] [-dotdir dir] [-nocolor] [-v]

Every line shows the insertion count, the inserted item, the number of merges
the insertion caused and the size of the unit in every slot ('·' for empty
slots). With -dot, the final layout is printed in Graphviz DOT format. With
-dotdir, the layout after every insertion is written to dir/step-NNNN.dot.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/guiguan/caster"
	"github.com/npillmayer/dynamize"
	"github.com/npillmayer/dynamize/sortedvec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"gopkg.in/gholt/brimutil.v1"
)

// tracer writes to trace with key 'dynamize'
func tracer() tracing.Trace {
	return tracing.Select("dynamize")
}

type options struct {
	strategy string
	n        int
	seed     int64
	dot      bool
	dotDir   string
	width    int
}

func main() {
	strategy := flag.String("strategy", "binary", "placement strategy: binary, simple-binary or skew-binary")
	n := flag.Int("n", 32, "number of items to insert")
	seed := flag.Int64("seed", 1, "seed for the pseudo-random items")
	dot := flag.Bool("dot", false, "print the final layout in Graphviz DOT format")
	dotDir := flag.String("dotdir", "", "write a DOT snapshot of every step to this directory")
	nocolor := flag.Bool("nocolor", false, "disable colored output")
	verbose := flag.Bool("v", false, "trace merges")
	flag.Parse()

	level := tracing.LevelInfo
	if *verbose {
		level = tracing.LevelDebug
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	tracer().SetTraceLevel(level)
	if *nocolor {
		color.NoColor = true
	}

	opts := options{
		strategy: *strategy,
		n:        *n,
		seed:     *seed,
		dot:      *dot,
		dotDir:   *dotDir,
		width:    terminalWidth(),
	}
	if err := run(os.Stdout, opts); err != nil {
		tracer().Errorf("dynviz: %v", err)
		fmt.Fprintf(os.Stderr, "dynviz: %v\n", err)
		os.Exit(1)
	}
}

// step is broadcast to all views after every insertion.
type step struct {
	n      int
	item   int
	merges int
	layout []int
}

// view consumes steps until the broadcaster closes its channel.
type view func(steps <-chan interface{}) error

func run(w io.Writer, opts options) error {
	kind, err := dynamize.ParseKind(opts.strategy)
	if err != nil {
		return errors.Wrap(err, "invalid -strategy")
	}
	if opts.n < 0 {
		return errors.Errorf("invalid -n %d: must not be negative", opts.n)
	}
	dyn, err := dynamize.New[sortedvec.SortedVec[int]](dynamize.Config{Strategy: kind})
	if err != nil {
		return errors.Wrapf(err, "cannot create %s engine", kind)
	}
	views := []view{lineView(newRenderer(w, opts.width))}
	if opts.dotDir != "" {
		if err := os.MkdirAll(opts.dotDir, 0o755); err != nil {
			return errors.Wrap(err, "cannot create -dotdir")
		}
		views = append(views, snapshotView(opts.dotDir))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cast := caster.New(ctx)
	var wg sync.WaitGroup
	errs := make([]error, len(views))
	for i, v := range views {
		sub, ok := cast.Sub(ctx, 64)
		if !ok {
			cast.Close()
			return errors.New("cannot subscribe layout view")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = v(sub)
		}()
	}

	src := brimutil.NewSeededScrambled(opts.seed)
	buf := make([]byte, 2)
	proto := sortedvec.New[int]()
	for i := 1; i <= opts.n; i++ {
		src.Read(buf)
		item := (int(buf[0])<<8 | int(buf[1])) % 1000
		dynamize.Insert(dyn, proto, item)
		cast.Pub(step{
			n:      i,
			item:   item,
			merges: dyn.Stats().LastMerges,
			layout: dyn.Layout(),
		})
	}
	cast.Close() // closes all view channels after pending steps
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, dyn.Stats().String())
	if opts.dot {
		dynamize.Units2Dot(dyn, w)
	}
	if err := dyn.Check(); err != nil {
		return errors.Wrap(err, "engine check failed")
	}
	return nil
}

// lineView prints one line per step.
func lineView(r *renderer) view {
	return func(steps <-chan interface{}) error {
		for msg := range steps {
			r.render(msg.(step))
		}
		return nil
	}
}

// snapshotView writes the layout of every step as a DOT file to dir. After
// the first error it keeps draining steps without writing.
func snapshotView(dir string) view {
	return func(steps <-chan interface{}) error {
		var err error
		for msg := range steps {
			if err != nil {
				continue
			}
			s := msg.(step)
			name := filepath.Join(dir, fmt.Sprintf("step-%04d.dot", s.n))
			var f *os.File
			if f, err = os.Create(name); err != nil {
				err = errors.Wrap(err, "cannot write snapshot")
				continue
			}
			dynamize.Layout2Dot(s.layout, f)
			if err = f.Close(); err != nil {
				err = errors.Wrapf(err, "cannot close snapshot %s", name)
			}
		}
		return err
	}
}
