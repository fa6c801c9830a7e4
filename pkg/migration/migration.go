package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func finish(err error) {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(err)
	}
	fmt.Println("Migration completed")
}

// MigrateCommand returns the migrate root command with up / down / force
// subcommands, reading SQL files from ./migrations.
func MigrateCommand(dsn string) *cobra.Command {
	sourceURL := "file://migrations"

	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "migrate up all the way",
			Run: func(cmd *cobra.Command, args []string) {
				finish(newMigrate(sourceURL, dsn).Up())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "revert the last migration",
			Run: func(cmd *cobra.Command, args []string) {
				finish(newMigrate(sourceURL, dsn).Steps(-1))
			},
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "force the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					panic(err)
				}
				finish(newMigrate(sourceURL, dsn).Force(version))
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting migrates the test database all the way up.
func MigrateUpForTesting(rootDir string, dsn string) {
	sourceURL := "file://" + path.Join(rootDir, "migrations")
	err := newMigrate(sourceURL, dsn).Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(err)
	}
}
