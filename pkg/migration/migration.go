package migration

import (
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
)

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

// MigrateCommand returns the migrate CLI command tree
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "migrate the database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			m := newMigrate("file://migrations", dsn)
			err := m.Up()
			if err != nil && err != migrate.ErrNoChange {
				panic(err)
			}
			fmt.Println("Migrated up successfully")
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "revert the last migration",
		Run: func(cmd *cobra.Command, args []string) {
			m := newMigrate("file://migrations", dsn)
			err := m.Steps(-1)
			if err != nil && err != migrate.ErrNoChange {
				panic(err)
			}
			fmt.Println("Migrated down successfully")
		},
	}

	rootCmd.AddCommand(upCmd, downCmd)
	return rootCmd
}

// MigrateUpForTesting migrates the test database to the latest version
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate("file://"+path.Join(rootDir, "migrations"), dsn)
	err := m.Up()
	if err != nil && err != migrate.ErrNoChange {
		panic(err)
	}
}
