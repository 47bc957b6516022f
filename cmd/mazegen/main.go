// Command mazegen generates maze files and inspects existing ones.
//
//	mazegen generate -width 20 -height 10 -sides 4 -strategy prim -out maze.bin
//	mazegen inspect -in maze.bin
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gookit/color"
)

var errUsage = errors.New("usage: mazegen <generate|inspect> [flags]")

func main() {
	log, err := logger.New("MAZEGEN", color.Style{color.FgCyan}, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Error(err.Error())
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type cliLogger interface {
	Info(msg string)
	Warning(msg string)
}

func run(args []string, stdout io.Writer, log cliLogger) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "generate":
		return generate(args[1:], stdout, log)
	case "inspect":
		return inspect(args[1:], stdout, log)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func generate(args []string, stdout io.Writer, log cliLogger) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	width := fs.Int("width", 10, "number of columns")
	height := fs.Int("height", 10, "number of rows")
	shape := fs.String("shape", "square", "cell shape: triangle|square|hexagon")
	strategyName := fs.String("strategy", maze.DefaultStrategy.String(), "algorithm: kruskal|prim|depth-first")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	out := fs.String("out", "", "file to write the maze to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		return fmt.Errorf("%w: generate needs -out", errUsage)
	}

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, *width, *height)
	}

	sides, err := maze.SidesFromName(*shape)
	if err != nil {
		return err
	}

	strategy, err := maze.ParseStrategy(*strategyName)
	if err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	m, err := maze.New(*width, *height, sides, strategy, maze.WithRandom(rand.New(rand.NewSource(*seed))))
	if err != nil {
		return err
	}

	start := time.Now()
	if err := m.Generate(); err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Maze generated in %dms (seed %d)", time.Since(start).Milliseconds(), *seed))

	if err := m.Save(*out); err != nil {
		return err
	}
	log.Info("Wrote " + *out)

	_, err = fmt.Fprintln(stdout, m.String())
	return err
}

func inspect(args []string, stdout io.Writer, log cliLogger) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	in := fs.String("in", "", "maze file to read")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		return fmt.Errorf("%w: inspect needs -in", errUsage)
	}

	m, err := maze.Load(*in)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%dx%d %s, %d open door pairs\n", m.Width(), m.Height(), maze.ShapeName(m.Sides()), m.OpenPairs())
	if err := m.Verify(); err != nil {
		log.Warning(fmt.Sprintf("%s is not a perfect maze: %s", *in, err))
		fmt.Fprintln(stdout, color.Red.Sprint("not perfect"))
		return nil
	}
	fmt.Fprintln(stdout, color.Green.Sprint("perfect"))

	if m.Sides() == maze.SquareSides {
		fmt.Fprintln(stdout, m.String())
	}
	return nil
}
