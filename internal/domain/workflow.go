// Package domain holds the header injector and the workflows driving it over a site.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"aeronib.com/pkg/navhdr/internal/adapter"
	"aeronib.com/pkg/navhdr/internal/controller"
	m "aeronib.com/pkg/navhdr/internal/model"
	pkg "aeronib.com/pkg/navhdr/pkg"
)

// ListArgs contains the arguments for listing site pages.
type ListArgs struct {
	Paths      []m.Path
	Exclude    []string
	ScriptName string
}

// InjectArgs contains the arguments for injecting headers into site pages.
type InjectArgs struct {
	ListArgs
	// Root is the site root; output paths are computed relative to it.
	Root m.Path
	// Out receives rewritten pages. Empty rewrites pages in place.
	Out     m.Path
	Threads int
	DryRun  bool
	Options RunOptions
}

// ThumbnailArgs contains the arguments for generating gallery thumbnails.
type ThumbnailArgs struct {
	ImagesDir m.Path
	ThumbsDir m.Path
	Height    int
	Quality   int
	Threads   int
}

// ResizeArgs contains the arguments for resizing gallery images for the web.
type ResizeArgs struct {
	ImagesDir    m.Path
	BackupDir    m.Path
	MaxDimension int
	Quality      int
	Threads      int
}

// Workflow drives the injector and the gallery tools over a site.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Inject(ctx context.Context, args InjectArgs) error
	Thumbnails(ctx context.Context, args ThumbnailArgs) error
	Resize(ctx context.Context, args ResizeArgs) error
}

type workflow struct {
	adapter.SiteFSAdapter
	adapter.ImageAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fsAdapter adapter.SiteFSAdapter, imageAdapter adapter.ImageAdapter, ui controller.UI) Workflow {
	return &workflow{
		SiteFSAdapter: fsAdapter,
		ImageAdapter:  imageAdapter,
		UI:            ui,
	}
}

// List describes every page found under the given paths.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	files, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to discover pages", "error", err)
		return fmt.Errorf("get pages: %w", err)
	}

	pages := make([]m.Page, 0, len(files))

	for _, file := range files {
		page, err := w.describePage(file, scriptName(args.ScriptName))
		if err != nil {
			return err
		}

		pages = append(pages, page)
	}

	if err := w.DisplayPages(ctx, pages); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) describePage(file m.File, name string) (m.Page, error) {
	content, err := w.ReadFile(file.FullPath)
	if err != nil {
		return m.Page{}, fmt.Errorf("read %s: %w", file.FullPath, err)
	}

	doc, err := ParseDocument(content)
	if err != nil {
		return m.Page{}, fmt.Errorf("%s: %w", file.FullPath, err)
	}

	return m.Page{
		File:      &file,
		Scripts:   DescribeScripts(doc, name),
		HasHeader: HasHeader(doc),
	}, nil
}

// Inject runs the header scripts of every page and writes the results.
func (w *workflow) Inject(ctx context.Context, args InjectArgs) error {
	if err := w.Start(ctx, controller.WithInjectMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	files, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to discover pages", "error", err)
		return fmt.Errorf("get pages: %w", err)
	}

	slog.Info("Injecting headers", "pages", len(files), "threads", args.Threads, "dry_run", args.DryRun)
	w.DisplayUpcoming(ctx, "pages", len(files))

	reports, err := pkg.NewFileSpill[m.PageReport]("")
	if err != nil {
		return err
	}

	defer func() { _ = reports.Close() }()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(args.Threads))

	for _, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			report := w.injectPage(file, args)
			w.DisplayPageReport(groupCtx, report)

			return reports.Append(report)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("inject pages: %w", err)
	}

	return finish(ctx, w, "pages", reports, func(r m.PageReport) (m.Status, string) {
		return r.Status, fmt.Sprintf("%s: %s", r.Path, r.Err)
	})
}

func (w *workflow) injectPage(file m.File, args InjectArgs) m.PageReport {
	report := m.PageReport{Path: file.ShortPath}

	fail := func(err error) m.PageReport {
		slog.Error("Failed to inject header", "path", file.FullPath, "error", err)

		report.Status = m.Failed
		report.Err = err.Error()

		return report
	}

	info, err := w.FileInfo(file.FullPath)
	if err != nil {
		return fail(err)
	}

	content, err := w.ReadFile(file.FullPath)
	if err != nil {
		return fail(err)
	}

	doc, err := ParseDocument(content)
	if err != nil {
		return fail(err)
	}

	opts := args.Options
	opts.ScriptName = scriptName(firstNonEmpty(opts.ScriptName, args.ScriptName))

	executions, err := Run(doc, opts)
	if err != nil {
		return fail(err)
	}

	for _, execution := range executions {
		if !execution.Skipped {
			report.Headers++
			report.Base = string(execution.Base)
		}
	}

	if len(executions) == 0 {
		report.Status = m.Skipped
		return report
	}

	rendered, err := RenderDocument(doc)
	if err != nil {
		return fail(err)
	}

	if report.Headers > 0 {
		report.Status = m.Injected
	} else {
		report.Status = m.Skipped
	}

	if args.DryRun {
		report.Diff, err = UnifiedDiff(string(file.ShortPath), content, rendered)
		if err != nil {
			return fail(err)
		}

		return report
	}

	target, err := w.outputPath(file, args)
	if err != nil {
		return fail(err)
	}

	if err := w.MkdirAll(m.Path(filepath.Dir(string(target)))); err != nil {
		return fail(err)
	}

	if err := w.WriteFile(target, rendered, info.Mode().Perm()); err != nil {
		return fail(err)
	}

	slog.Debug("Wrote page", "path", target, "headers", report.Headers)

	return report
}

func (w *workflow) outputPath(file m.File, args InjectArgs) (m.Path, error) {
	if args.Out == "" {
		return file.FullPath, nil
	}

	root := args.Root
	if root == "" {
		root = "."
	}

	rel, err := w.RelPath(root, file.FullPath)
	if err != nil {
		return "", err
	}

	if rel == ".." || strings.HasPrefix(string(rel), ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("page %s is outside the site root %s", file.FullPath, root)
	}

	return w.JoinPath(string(args.Out), string(rel)), nil
}

// Thumbnails generates fixed-height thumbnails for every gallery image lacking one.
func (w *workflow) Thumbnails(ctx context.Context, args ThumbnailArgs) error {
	if err := w.Start(ctx, controller.WithImagesMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	for _, dir := range []m.Path{args.ImagesDir, args.ThumbsDir} {
		if err := w.MkdirAll(dir); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	return w.processImages(ctx, args.ImagesDir, args.Threads, nil, func(path m.Path) m.ImageReport {
		return w.thumbnail(path, args)
	})
}

func (w *workflow) thumbnail(path m.Path, args ThumbnailArgs) m.ImageReport {
	name := filepath.Base(string(path))
	report := m.ImageReport{Path: m.Path(name)}
	target := w.JoinPath(string(args.ThumbsDir), name)

	if _, err := w.FileInfo(target); err == nil {
		report.Status = m.Skipped
		return report
	} else if !errors.Is(err, os.ErrNotExist) {
		return failedImage(report, err)
	}

	img, err := w.Decode(path)
	if err != nil {
		return failedImage(report, err)
	}

	report.FromWidth, report.FromHeight = img.Bounds().Dx(), img.Bounds().Dy()
	report.ToWidth, report.ToHeight = ThumbnailSize(report.FromWidth, report.FromHeight, args.Height)

	if report.ToWidth == 0 {
		return failedImage(report, fmt.Errorf("image has no pixels"))
	}

	if err := w.EncodeJPEG(target, w.Scale(img, report.ToWidth, report.ToHeight), args.Quality); err != nil {
		return failedImage(report, err)
	}

	report.Status = m.Generated

	return report
}

// Resize backs up every gallery image, then shrinks it to fit the maximum
// dimension and re-encodes it at the configured quality.
func (w *workflow) Resize(ctx context.Context, args ResizeArgs) error {
	info, err := w.FileInfo(args.ImagesDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrImagesDirMissing, args.ImagesDir)
	}

	if err := w.Start(ctx, controller.WithImagesMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayMessage(ctx, fmt.Sprintf("Max dimension: %dpx, Quality: %d%%", args.MaxDimension, args.Quality))
	w.DisplayMessage(ctx, fmt.Sprintf("Original files are backed up to: %s", args.BackupDir))

	prepare := func() error {
		if err := w.MkdirAll(args.BackupDir); err != nil {
			return fmt.Errorf("create %s: %w", args.BackupDir, err)
		}

		return nil
	}

	return w.processImages(ctx, args.ImagesDir, args.Threads, prepare, func(path m.Path) m.ImageReport {
		return w.resize(path, args)
	})
}

func (w *workflow) resize(path m.Path, args ResizeArgs) m.ImageReport {
	name := filepath.Base(string(path))
	report := m.ImageReport{Path: m.Path(name)}
	backup := w.JoinPath(string(args.BackupDir), name)

	if _, err := w.FileInfo(backup); errors.Is(err, os.ErrNotExist) {
		if err := w.CopyFile(path, backup); err != nil {
			return failedImage(report, fmt.Errorf("backup: %w", err))
		}
	} else if err != nil {
		return failedImage(report, err)
	}

	img, err := w.Decode(path)
	if err != nil {
		return failedImage(report, err)
	}

	report.FromWidth, report.FromHeight = img.Bounds().Dx(), img.Bounds().Dy()

	width, height, scale := FitWithin(report.FromWidth, report.FromHeight, args.MaxDimension)
	report.ToWidth, report.ToHeight = width, height
	report.Status = m.Optimized

	if scale {
		img = w.Scale(img, width, height)
		report.Status = m.Resized
	}

	if err := w.EncodeJPEG(path, img, args.Quality); err != nil {
		return failedImage(report, err)
	}

	return report
}

// processImages runs process on every JPEG of dir. prepare, when set, runs once
// before the first image and only if there is one.
func (w *workflow) processImages(ctx context.Context, dir m.Path, threads int, prepare func() error, process func(m.Path) m.ImageReport) error {
	images, err := w.Images(dir)
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}

	if len(images) == 0 {
		w.DisplayMessage(ctx, fmt.Sprintf("No JPG files found in %s", dir))
		return nil
	}

	if prepare != nil {
		if err := prepare(); err != nil {
			return err
		}
	}

	w.DisplayUpcoming(ctx, "images", len(images))

	reports, err := pkg.NewFileSpill[m.ImageReport]("")
	if err != nil {
		return err
	}

	defer func() { _ = reports.Close() }()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(threads))

	for _, image := range images {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			report := process(image)
			w.DisplayImageReport(groupCtx, report)

			return reports.Append(report)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("process images: %w", err)
	}

	return finish(ctx, w, "images", reports, func(r m.ImageReport) (m.Status, string) {
		return r.Status, fmt.Sprintf("%s: %s", r.Path, r.Err)
	})
}

// finish builds the summary from the spilled reports, shows it and returns the
// joined errors of failed items.
func finish[T any](ctx context.Context, w *workflow, kind string, reports pkg.FileSpill[T], describe func(T) (m.Status, string)) error {
	summary := m.Summary{Kind: kind}

	var failures []error

	err := reports.Range(func(_ uint64, report T) error {
		status, message := describe(report)
		summary.Add(status)

		if status == m.Failed {
			failures = append(failures, errors.New(message))
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("collect reports: %w", err)
	}

	w.DisplaySummary(ctx, summary)
	w.Wait(ctx)

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d %s failed: %w", len(failures), summary.Total, kind, errors.Join(failures...))
	}

	return nil
}

func failedImage(report m.ImageReport, err error) m.ImageReport {
	slog.Error("Failed to process image", "path", report.Path, "error", err)

	report.Status = m.Failed
	report.Err = err.Error()

	return report
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func scriptName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultScriptName
	}

	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
