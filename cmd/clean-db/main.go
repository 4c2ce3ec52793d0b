// Command-line tool to clean the database by dropping the application tables.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"cargo-backend/internal/config"
	"cargo-backend/internal/database"
	"cargo-backend/internal/logging"
	"cargo-backend/internal/model"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	log := logging.New(cfg)

	// Warning message
	fmt.Printf("WARNING: This command will DROP the job_applications and contact_messages tables of %s.\n", cfg.Database.URL)
	fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

	// Ask for confirmation
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.WithError(err).Fatal("failed to read input")
	}
	input = strings.TrimSpace(strings.ToLower(input))

	if input != "yes" {
		fmt.Println("Operation cancelled.")
		return
	}

	db, err := database.NewDBInstance(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database failed to initialize")
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrator().DropTable(model.MigrateAble...); err != nil {
		log.WithFields(database.ErrorFields(err)).Fatal("failed to drop tables")
	}

	fmt.Println("All tables dropped successfully.")
}
