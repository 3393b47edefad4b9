package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/The-Night7/bofuri-mj/internal/orchestrators/library"
	redisclient "github.com/The-Night7/bofuri-mj/internal/redis"
	compendiumrepo "github.com/The-Night7/bofuri-mj/internal/repositories/compendium"
)

var (
	importBestiary string
	importSkills   []string
	importDensify  bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import markdown documents into the compendium",
	Long: `Parse the campaign's bestiary and skill tier documents and store
the resulting compendium snapshot in Redis, replacing any previous one.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importBestiary, "bestiary", "", "path to the bestiary markdown document")
	importCmd.Flags().StringSliceVar(&importSkills, "skills", nil, "paths or globs of skill tier markdown documents")
	importCmd.Flags().BoolVar(&importDensify, "densify", false, "precompute variants for every intermediate level")
	_ = importCmd.MarkFlagRequired("bestiary")
}

func runImport(cmd *cobra.Command, _ []string) error {
	var cfg serveConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	monsterDoc, err := os.ReadFile(importBestiary)
	if err != nil {
		return fmt.Errorf("failed to read bestiary: %w", err)
	}

	skillDocs, err := readSkillDocs(importSkills)
	if err != nil {
		return err
	}

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	compendiumRepo, err := compendiumrepo.NewRedis(&compendiumrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create compendium repository: %w", err)
	}
	librarySvc, err := library.NewOrchestrator(&library.Config{CompendiumRepo: compendiumRepo})
	if err != nil {
		return fmt.Errorf("failed to create library orchestrator: %w", err)
	}

	out, err := librarySvc.Import(context.Background(), &library.ImportInput{
		MonsterDoc: string(monsterDoc),
		SkillDocs:  skillDocs,
		Densify:    importDensify,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	slog.Info("import complete",
		"monsters", out.MonsterCount,
		"skills", out.SkillCount)
	return nil
}

// readSkillDocs expands globs and reads each document. Paths are
// sorted so tier files import in a stable order.
func readSkillDocs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad skills pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			// A literal path that exists but contains no glob
			// metacharacters still matches itself, so nothing
			// matched means the file is missing. Absent tier
			// documents are skippable, like empty ones.
			slog.Warn("no files match skills pattern, skipping", "pattern", pattern)
			continue
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	docs := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, string(data))
	}
	return docs, nil
}
