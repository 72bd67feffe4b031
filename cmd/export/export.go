package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/creemers/site/locales"
	"github.com/creemers/site/pkg/i18n"
	"github.com/creemers/site/pkg/logger"
	"github.com/creemers/site/pkg/page"
)

const (
	indexFile        = "index.html"
	translationsFile = "translations.json"
)

// loadDictionary reads the dictionaries from source, or from the embedded
// locales when source is empty.
func loadDictionary(ctx context.Context, source string) (*i18n.Dictionary, error) {
	if source == "" {
		return i18n.NewDictionary(ctx, locales.Adapter())
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("locales: %w", err)
	}
	if info.IsDir() {
		return i18n.NewDictionary(ctx, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), source))
	}
	return i18n.NewDictionary(ctx, i18n.NewFileAdapter(nil, source))
}

// export writes one page per language, plus the default language page at
// the root of the export directory. Languages render in parallel; the first
// failure cancels the rest.
func export(ctx context.Context, cfg Config, log *slog.Logger) error {
	start := time.Now()

	dict, err := loadDictionary(ctx, cfg.LocalesDir)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "Dictionary loaded", slog.Int("keys", len(dict.Keys())))

	root := cfg.Language()
	g, gctx := errgroup.WithContext(ctx)
	for _, lang := range i18n.Languages() {
		g.Go(func() error {
			return exportLanguage(gctx, dict, lang, root, cfg, log)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.InfoContext(ctx, "Site exported",
		slog.String("dir", cfg.ExportDir),
		slog.Int("languages", len(i18n.Languages())),
		logger.Duration(time.Since(start)),
	)
	return nil
}

func exportLanguage(ctx context.Context, dict *i18n.Dictionary, lang, root i18n.Language, cfg Config, log *slog.Logger) error {
	p, err := page.New(ctx, dict,
		page.WithLanguage(lang),
		page.WithPhone(cfg.ChatPhone),
		page.WithLanguageHref(page.LanguageHref(root)),
		page.WithLogger(log),
	)
	if err != nil {
		return err
	}
	defer p.Close()
	ctx = p.Context(ctx)

	html, err := p.Render(ctx)
	if err != nil {
		return fmt.Errorf("render %s: %w", lang, err)
	}
	translations, err := dict.ExportJSON(lang)
	if err != nil {
		return err
	}

	dirs := []string{filepath.Join(cfg.ExportDir, lang.String())}
	if lang == root {
		dirs = append(dirs, cfg.ExportDir)
	}
	for _, dir := range dirs {
		if err := writeFile(filepath.Join(dir, indexFile), html); err != nil {
			return err
		}
	}
	if err := writeFile(filepath.Join(dirs[0], translationsFile), translations); err != nil {
		return err
	}

	log.InfoContext(ctx, "Language exported", logger.Language(lang), slog.Int("bytes", len(html)))
	return nil
}

// writeFile writes data through a temporary file so readers never see a
// half-written page.
func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), ".export-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), name)
}
