// Standalone migration runner for environments where the server should
// not migrate on boot.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	storagePathFlag    = "storage-path"
	migrationsPathFlag = "migrations-path"
)

func main() {
	storagePath := pflag.StringP(storagePathFlag, "s", "", "path to the sqlite database file")
	migrationsPath := pflag.StringP(migrationsPathFlag, "m", "internal/repos/migrations", "path to the migrations directory")
	down := pflag.Bool("down", false, "roll back all migrations instead of applying")
	pflag.Parse()

	if *storagePath == "" {
		fmt.Fprintf(os.Stderr, "--%s flag: required\n", storagePathFlag)
		pflag.Usage()
		os.Exit(2)
	}

	m, err := migrate.New("file://"+*migrationsPath, "sqlite://"+*storagePath)
	if err != nil {
		log.Fatal(err)
	}
	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no change")
			return
		}
		log.Fatal(err)
	}
	log.Println("migrations applied")
}
