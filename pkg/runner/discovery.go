package runner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/mdprefix/pkg/langdetect"
)

// sniffLimit bounds how much of an explicit file is read for classification.
const sniffLimit = 8 << 10

// Discover expands opts.Paths into the Markdown files to scan. Directories
// are walked; files named explicitly are kept when they carry a Markdown
// extension or go-enry classifies their content as Markdown. The result is
// sorted, absolute and free of duplicates.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		excludes:   opts.ExcludeGlobs,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
		walked:     make(map[string]struct{}),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		target := input
		if !filepath.IsAbs(target) {
			target = filepath.Join(workDir, target)
		}
		target = filepath.Clean(target)

		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			err = d.walk(target)
		} else {
			err = d.explicit(target)
		}
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

// discoverer carries the state of one Discover call.
type discoverer struct {
	ctx        context.Context //nolint:containedctx // scoped to a single Discover call
	workDir    string
	extensions []string
	excludes   []string
	follow     bool

	files  []string
	seen   map[string]struct{}
	walked map[string]struct{}
}

func (d *discoverer) add(file string) {
	if _, dup := d.seen[file]; dup {
		return
	}
	d.seen[file] = struct{}{}
	d.files = append(d.files, file)
}

// explicit handles a file named on the command line.
func (d *discoverer) explicit(file string) error {
	if d.excluded(file) {
		return nil
	}
	if hasMatchingExtension(file, d.extensions) {
		d.add(file)
		return nil
	}

	head, err := readHead(file)
	if err != nil {
		return err
	}
	if langdetect.IsMarkdown(file, head) {
		d.add(file)
	}
	return nil
}

// walk visits root recursively. Hidden and excluded entries are pruned.
// Directory symlinks are entered at their resolved location when following
// is enabled; each real directory is walked once, which also breaks cycles.
func (d *discoverer) walk(root string) error {
	if real, err := filepath.EvalSymlinks(root); err == nil {
		if _, done := d.walked[real]; done {
			return nil
		}
		d.walked[real] = struct{}{}
	}

	err := filepath.WalkDir(root, func(file string, entry fs.DirEntry, walkErr error) error {
		if err := d.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}
		if file == root {
			return nil
		}

		hidden := strings.HasPrefix(entry.Name(), ".")

		switch {
		case entry.IsDir():
			if hidden || d.excluded(file) {
				return filepath.SkipDir
			}
		case entry.Type()&fs.ModeSymlink != 0:
			return d.symlink(file, hidden)
		case !hidden && hasMatchingExtension(file, d.extensions) && !d.excluded(file):
			d.add(file)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink resolves a link met during a walk. Broken links are skipped.
func (d *discoverer) symlink(link string, hidden bool) error {
	if hidden {
		return nil
	}
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		return nil //nolint:nilerr // broken links are not scanned
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // unreadable targets are not scanned
	}

	if info.IsDir() {
		if !d.follow || d.excluded(link) {
			return nil
		}
		return d.walk(target)
	}
	if hasMatchingExtension(link, d.extensions) && !d.excluded(link) {
		d.add(link)
	}
	return nil
}

// excluded matches file against the doublestar ignore patterns, first by
// its slash-separated path relative to the working directory, then by base
// name.
func (d *discoverer) excluded(file string) bool {
	if len(d.excludes) == 0 {
		return false
	}
	rel := file
	if r, err := filepath.Rel(d.workDir, file); err == nil {
		rel = r
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range d.excludes {
		pattern = filepath.ToSlash(pattern)
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}
	return false
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

func readHead(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, sniffLimit))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return head, nil
}

func hasMatchingExtension(file string, extensions []string) bool {
	ext := filepath.Ext(file)
	return slices.ContainsFunc(extensions, func(e string) bool { return strings.EqualFold(e, ext) })
}
