package linter

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// StdinPath is the argument that makes the linter read from stdin.
const StdinPath = "-"

// LintPaths lints every given path and returns the combined result. Paths
// keep their argument order, files within a directory their walk order.
func (l *Linter) LintPaths(ctx context.Context, paths []string) (*Result, error) {
	res := &Result{}
	for _, path := range paths {
		lp, err := l.LintPath(ctx, path)
		if err != nil {
			return nil, err
		}
		res.Paths = append(res.Paths, lp)
	}
	return res, nil
}

// LintPath lints one path: a file, a directory tree of SQL files, or
// stdin via "-". Files of one directory are linted in parallel; the
// returned order is deterministic regardless.
func (l *Linter) LintPath(ctx context.Context, path string) (*LintedPath, error) {
	lp := &LintedPath{Path: path}
	if path == StdinPath {
		src, err := readStdin()
		if err != nil {
			return nil, err
		}
		lp.Files = append(lp.Files, l.LintString(src, "<stdin>"))
		return lp, nil
	}

	files, err := l.discover(path)
	if err != nil {
		return nil, err
	}
	lp.Files, err = l.lintFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	return lp, nil
}

// ParsePath parses every SQL file under path, discovered the same way
// LintPath discovers them.
func (l *Linter) ParsePath(ctx context.Context, path string) ([]*ParsedFile, error) {
	if path == StdinPath {
		src, err := readStdin()
		if err != nil {
			return nil, err
		}
		tree, err := l.ParseString(src, "<stdin>")
		if err != nil {
			return nil, err
		}
		return []*ParsedFile{{Path: "<stdin>", Tree: tree}}, nil
	}

	files, err := l.discover(path)
	if err != nil {
		return nil, err
	}
	out := make([]*ParsedFile, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file)
		}
		tree, err := l.ParseString(string(data), file)
		if err != nil {
			return nil, err
		}
		out = append(out, &ParsedFile{Path: file, Tree: tree})
	}
	return out, nil
}

// discover resolves a path argument to the list of files to lint. A plain
// file is linted whatever its extension; directories are walked for files
// with a configured SQL extension, in lexical order.
func (l *Linter) discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "checking path %s", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if l.matchesExt(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", path)
	}
	return files, nil
}

func (l *Linter) matchesExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range l.sqlExts {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// lintFiles lints the given files in parallel, keeping the result order
// aligned with the input order.
func (l *Linter) lintFiles(ctx context.Context, files []string) ([]*LintedFile, error) {
	out := make([]*LintedFile, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return errors.Wrapf(err, "reading %s", file)
			}
			out[i] = l.LintString(string(data), file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return string(data), nil
}
