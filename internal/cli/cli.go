// SPDX-License-Identifier: MIT

// Package cli is the file-level glue around package matrix: it discovers
// input files, loads two operands, applies the configured operation and
// writes the sorted result file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matrix"
)

// InputExt is the extension of matrix files picked up by Discover.
const InputExt = ".txt"

var (
	// ErrNotEnoughInputs is returned when fewer than two input files exist.
	ErrNotEnoughInputs = errors.New("cli: need at least two input matrices")

	// ErrUnknownOperation is returned by Apply for an unsupported operation name.
	ErrUnknownOperation = errors.New("cli: unknown operation")
)

// Runner executes one configured operation.
type Runner struct {
	cfg config.Config
	log logr.Logger
}

// New returns a Runner; a zero logger is replaced by logr.Discard().
func New(cfg config.Config, logger logr.Logger) *Runner {
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	return &Runner{cfg: cfg, log: logger.WithName("runner")}
}

// Run loads both operands, applies the operation and writes the result.
// It returns the path of the written result file.
func (r *Runner) Run(ctx context.Context) (string, error) {
	leftPath, rightPath, err := r.operands()
	if err != nil {
		return "", err
	}
	r.log.Info("selected operands", "left", leftPath, "right", rightPath, "operation", r.cfg.Operation)

	var left, right *matrix.Sparse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		left, err = r.load(gctx, leftPath)
		return err
	})
	g.Go(func() (err error) {
		right, err = r.load(gctx, rightPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	res, err := Apply(r.cfg.Operation, left, right, r.cfg.MulOptions()...)
	if err != nil {
		return "", fmt.Errorf("%s %s %s: %w", filepath.Base(leftPath), r.cfg.Operation, filepath.Base(rightPath), err)
	}
	rows, cols := res.Dims()
	r.log.V(1).Info("computed result", "rows", rows, "cols", cols, "nnz", res.NNZ())

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("cli: create output dir: %w", err)
	}
	out := filepath.Join(r.cfg.OutputDir, ResultName(leftPath, r.cfg.Operation, rightPath))
	if err := matrix.WriteFile(out, res); err != nil {
		return "", err
	}
	r.log.Info("wrote result", "path", out)

	return out, nil
}

// operands resolves the two input paths from config or discovery.
func (r *Runner) operands() (string, string, error) {
	if r.cfg.Left != "" {
		return filepath.Join(r.cfg.InputDir, r.cfg.Left), filepath.Join(r.cfg.InputDir, r.cfg.Right), nil
	}
	files, err := Discover(r.cfg.InputDir)
	if err != nil {
		return "", "", err
	}
	r.log.V(1).Info("discovered inputs", "dir", r.cfg.InputDir, "count", len(files))
	if len(files) < 2 {
		return "", "", fmt.Errorf("%w: found %d in %s", ErrNotEnoughInputs, len(files), r.cfg.InputDir)
	}

	return files[0], files[1], nil
}

// load reads one operand unless ctx is already cancelled by its sibling.
func (r *Runner) load(ctx context.Context, path string) (*matrix.Sparse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := matrix.ReadFile(path)
	if err != nil {
		r.log.Error(err, "failed to load matrix", "path", path)
		return nil, err
	}
	rows, cols := m.Dims()
	r.log.V(1).Info("loaded matrix", "path", path, "rows", rows, "cols", cols, "nnz", m.NNZ())

	return m, nil
}

// Discover lists regular *.txt files in dir, sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cli: discover %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), InputExt) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}

// Apply dispatches op ("add", "subtract", "multiply") to the matrix API.
// opts only affect multiply.
func Apply(op string, a, b *matrix.Sparse, opts ...matrix.Option) (*matrix.Sparse, error) {
	switch op {
	case config.OpAdd:
		return a.Add(b)
	case config.OpSubtract:
		return a.Sub(b)
	case config.OpMultiply:
		return a.Mul(b, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

// ResultName builds "<leftStem>_<op>_<rightStem>.txt".
func ResultName(leftPath, op, rightPath string) string {
	stem := func(p string) string {
		base := filepath.Base(p)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}

	return fmt.Sprintf("%s_%s_%s%s", stem(leftPath), op, stem(rightPath), InputExt)
}
