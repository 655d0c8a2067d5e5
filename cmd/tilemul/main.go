// SPDX-License-Identifier: MIT

// Command tilemul multiplies two dense matrices with the naive, tiled or
// vendor (BLAS) kernel and prints the product.
//
// Without flags it runs the built-in demo: the 3×3 identity times
// [[1,2,3],[4,5,6],[7,8,9]] with 2×2 tiles, so the last tile-row and
// tile-column exercise the zero-padding path.
//
// Usage:
//
//	tilemul [-input operands.json] [-method naive|tile|vendor|all] [-tile N] [-json] [-stats]
//
// The input file holds nested rows:
//
//	{"a": [[1, 2], [3, 4]], "b": [[5, 6], [7, 8]]}
//
// -tile 0 picks a size from the host CPU features (see gemm.SuggestTileSize).
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/tilemm/gemm"
	"github.com/katalvlaran/tilemm/internal/cpuinfo"
	"github.com/katalvlaran/tilemm/matrix"
)

const (
	methodNaive  = "naive"
	methodTile   = "tile"
	methodVendor = "vendor"
	methodAll    = "all"

	demoTileSize = 2
)

var errUnknownMethod = errors.New("tilemul: unknown method")

type config struct {
	input   string
	method  string
	tile    int
	jsonOut bool
	stats   bool
}

// operands is the JSON input document.
type operands struct {
	A [][]float64 `json:"a"`
	B [][]float64 `json:"b"`
}

// product is one entry of the JSON output.
type product struct {
	Method string      `json:"method"`
	C      [][]float64 `json:"c"`
	Stats  *gemm.Stats `json:"stats,omitempty"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tilemul: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("tilemul", flag.ContinueOnError)
	fs.StringVar(&cfg.input, "input", "", "JSON file with {\"a\": [[...]], \"b\": [[...]]}; empty runs the demo")
	fs.StringVar(&cfg.method, "method", methodTile, "naive, tile, vendor or all")
	fs.IntVar(&cfg.tile, "tile", 0, "tile side for -method tile (0 = suggested)")
	fs.BoolVar(&cfg.jsonOut, "json", false, "print products as JSON")
	fs.BoolVar(&cfg.stats, "stats", false, "print tile statistics")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.tile < 0 {
		return config{}, fmt.Errorf("-tile %d: %w", cfg.tile, gemm.ErrInvalidTileSize)
	}

	return cfg, nil
}

// methods expands -method into the kernels to run.
func methods(name string) ([]string, error) {
	switch name {
	case methodNaive, methodTile, methodVendor:
		return []string{name}, nil
	case methodAll:
		return []string{methodNaive, methodTile, methodVendor}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, errUnknownMethod)
	}
}

// loadOperands decodes the input file, or returns the demo operands when
// path is empty.
func loadOperands(path string) (*matrix.Dense, *matrix.Dense, error) {
	if path == "" {
		a, err := matrix.NewIdentity(3)
		if err != nil {
			return nil, nil, err
		}
		b, err := matrix.NewDenseRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
		if err != nil {
			return nil, nil, err
		}

		return a, b, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return decodeOperands(f)
}

func decodeOperands(r io.Reader) (*matrix.Dense, *matrix.Dense, error) {
	var in operands
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, nil, fmt.Errorf("decode operands: %w", err)
	}
	a, err := matrix.NewDenseRows(in.A)
	if err != nil {
		return nil, nil, fmt.Errorf("operand a: %w", err)
	}
	b, err := matrix.NewDenseRows(in.B)
	if err != nil {
		return nil, nil, fmt.Errorf("operand b: %w", err)
	}

	return a, b, nil
}

// multiply dispatches to one kernel. st is only filled by the tiled kernel.
func multiply(method string, a, b *matrix.Dense, tile int, st *gemm.Stats) (*matrix.Dense, error) {
	switch method {
	case methodNaive:
		return gemm.MultiplyNaive(a, b)
	case methodVendor:
		return gemm.MultiplyVendor(a, b)
	case methodTile:
		if tile == 0 {
			var err error
			if tile, err = gemm.SuggestTileSize(a, b); err != nil {
				return nil, err
			}
		}

		return gemm.MultiplyTile(a, b, tile, gemm.WithStats(st))
	default:
		return nil, fmt.Errorf("%q: %w", method, errUnknownMethod)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	names, err := methods(cfg.method)
	if err != nil {
		return err
	}
	a, b, err := loadOperands(cfg.input)
	if err != nil {
		return err
	}
	if cfg.input == "" && cfg.tile == 0 {
		cfg.tile = demoTileSize
	}

	results := make([]product, 0, len(names))
	for _, name := range names {
		var st gemm.Stats
		c, err := multiply(name, a, b, cfg.tile, &st)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		p := product{Method: name, C: c.ToRows()}
		if cfg.stats && name == methodTile {
			p.Stats = &st
		}
		results = append(results, p)
	}

	if cfg.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(results)
	}

	return printText(stdout, a, b, results)
}

func printText(w io.Writer, a, b *matrix.Dense, results []product) error {
	fmt.Fprintf(w, "cpu: %s (preferred tile %d)\n", cpuinfo.Detect(), cpuinfo.PreferredTile())
	fmt.Fprintf(w, "A =\n%v", a)
	fmt.Fprintf(w, "B =\n%v", b)
	for _, p := range results {
		c, err := matrix.NewDenseRows(p.C)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "C (%s) =\n%v", p.Method, c)
		if p.Stats != nil {
			fmt.Fprintf(w, "stats: %v\n", *p.Stats)
		}
	}

	return nil
}
