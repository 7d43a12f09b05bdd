package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/courtside/internal/app"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const seedTimeout = time.Minute

var migrationDirCandidates = []string{"./db/migrations", "/app/db/migrations"}

type runner struct {
	cfg    config.Config
	logger *logging.Logger
	out    io.Writer
}

type command struct {
	name    string
	example string
	run     func(r *runner, args []string) error
}

var commands = []command{
	{name: "up", example: "up", run: (*runner).up},
	{name: "down", example: "down 1", run: (*runner).down},
	{name: "version", example: "version", run: (*runner).version},
	{name: "force", example: "force 1771776034", run: (*runner).force},
	{name: "goto", example: "goto 1771776035", run: (*runner).gotoVersion},
	{name: "seed", example: "seed", run: (*runner).seed},
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}
	cmd, ok := findCommand(os.Args[1])
	if !ok {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel).With("service", "courtside-migration", "command", cmd.name)
	defer func() { _ = logger.Sync() }()

	r := &runner{cfg: cfg, logger: logger, out: os.Stdout}
	if err := cmd.run(r, os.Args[2:]); err != nil {
		logger.Error("migration command failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func findCommand(raw string) (command, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "migrate" {
		name = "goto"
	}
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (r *runner) withMigrator(fn func(m *migrate.Migrate) error) error {
	dir, err := resolveMigrationsDir()
	if err != nil {
		return err
	}
	source := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(source, app.MigrationDSN(r.cfg))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			r.logger.Warn("close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	r.logger.Debug("migration source resolved", "source", source)
	return fn(m)
}

func (r *runner) up(_ []string) error {
	return r.withMigrator(func(m *migrate.Migrate) error {
		return r.applied(m.Up(), "migrations applied")
	})
}

func (r *runner) down(args []string) error {
	steps, err := parseSteps(args)
	if err != nil {
		return err
	}
	return r.withMigrator(func(m *migrate.Migrate) error {
		return r.applied(m.Steps(-steps), "migrations rolled back", "steps", steps)
	})
}

func (r *runner) version(_ []string) error {
	return r.withMigrator(func(m *migrate.Migrate) error {
		version, dirty, err := m.Version()
		switch {
		case errors.Is(err, migrate.ErrNilVersion):
			fmt.Fprintln(r.out, "version: none")
			fmt.Fprintln(r.out, "dirty: false")
			return nil
		case err != nil:
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Fprintf(r.out, "version: %d\ndirty: %t\n", version, dirty)
		return nil
	})
}

func (r *runner) force(args []string) error {
	if len(args) == 0 {
		return errors.New("force requires a version argument")
	}
	version, err := parseVersion(args[0])
	if err != nil {
		return err
	}
	return r.withMigrator(func(m *migrate.Migrate) error {
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		r.logger.Info("forced version", "version", version)
		return nil
	})
}

func (r *runner) gotoVersion(args []string) error {
	if len(args) == 0 {
		return errors.New("goto requires a target version argument")
	}
	target, err := parseTarget(args[0])
	if err != nil {
		return err
	}
	return r.withMigrator(func(m *migrate.Migrate) error {
		return r.applied(m.Migrate(target), "migrated", "version", target)
	})
}

// seed loads the sample fixtures into every league whose schedule table is empty.
func (r *runner) seed(_ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	db, err := app.OpenDatabase(r.cfg, r.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	r.logger.Info("seed applied")
	return nil
}

// applied treats ErrNoChange as success.
func (r *runner) applied(err error, msg string, args ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		r.logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	r.logger.Info(msg, args...)
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, errors.New("down steps must be > 0")
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, errors.New("version must be >= 0")
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func resolveMigrationsDir() (string, error) {
	candidates := append([]string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
	}, migrationDirCandidates...)

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, MIGRATIONS_PATH, %s)", strings.Join(migrationDirCandidates, ", "))
}

func printUsage(w io.Writer) {
	bin := filepath.Base(os.Args[0])
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}
	fmt.Fprintf(w, "usage: %s <%s> [args]\n", bin, strings.Join(names, "|"))
	fmt.Fprintln(w, "examples:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %s %s\n", bin, c.example)
	}
}
