package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/PennChopMicrobiomeProgram/marc-db/config"
	"github.com/PennChopMicrobiomeProgram/marc-db/domain/ingest"
	"github.com/PennChopMicrobiomeProgram/marc-db/logging"
	"github.com/PennChopMicrobiomeProgram/marc-db/repository/marcdb"
	"github.com/PennChopMicrobiomeProgram/marc-db/server"
)

var (
	appConfig       = config.DefaultAppConfig()
	databaseURLFlag string
)

func main() {
	root := &cobra.Command{
		Use:               "marc_db",
		Short:             "mARC isolate database controller",
		SilenceUsage:      true,
		PersistentPreRunE: initGlobalResource,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&databaseURLFlag, "database-url", "",
		"database url (overrides "+config.EnvKeyDatabaseURL+")")

	root.AddCommand(newInitCommand())
	root.AddCommand(newMockCommand())
	root.AddCommand(newIngestCommand())
	root.AddCommand(newServeCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initGlobalResource(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found - using environment variables")
	}

	v := viper.NewWithOptions(viper.ExperimentalBindStruct())
	v.AutomaticEnv()
	if err := v.Unmarshal(appConfig); err != nil {
		return err
	}

	if databaseURLFlag != "" {
		appConfig.DatabaseURL = databaseURLFlag
	}

	consoleLevel := logrus.InfoLevel
	if appConfig.Debug {
		consoleLevel = logrus.DebugLevel
	}
	logging.SetDefaultConfig(&logging.Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   consoleLevel,
		FileDir:        appConfig.LogDir,
		DisableConsole: false,
	})
	return nil
}

func openDatabase(checkMigration bool) (*gorm.DB, error) {
	return marcdb.CreateDatabase(&marcdb.Config{
		DatabaseURL:    appConfig.DatabaseURL,
		CheckMigration: checkMigration,
		Logger:         logging.Default(),
	})
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := openDatabase(true); err != nil {
				return err
			}
			fmt.Println("Database initialized.")
			return nil
		},
	}
}

func newMockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mock",
		Short: "Fill mock values into an empty database (for testing)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(true)
			if err != nil {
				return err
			}
			if err := marcdb.FillMockDB(db); err != nil {
				return err
			}
			fmt.Println("Mock data inserted.")
			return nil
		},
	}
}

type ingestFlags struct {
	isolates       string
	assemblies     string
	assemblyQCs    string
	taxonomy       string
	contaminants   string
	antimicrobials string

	runNumber      string
	sunbeamVersion string
	sbxSgaVersion  string
	outputPath     string

	yes bool
}

func newIngestCommand() *cobra.Command {
	flags := &ingestFlags{}

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest tabular batches into the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(false)
			if err != nil {
				return err
			}

			opts, err := flags.toOptions()
			if err != nil {
				return err
			}

			result, err := ingest.Ingest(cmd.Context(), db, opts)
			if err != nil {
				return err
			}
			if !result.Committed {
				fmt.Println("Ingest cancelled.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.isolates, "isolates", "", "isolate/aliquot batch (tsv)")
	cmd.Flags().StringVar(&flags.assemblies, "assemblies", "", "assembly batch (tsv)")
	cmd.Flags().StringVar(&flags.assemblyQCs, "qc", "", "assembly qc batch (tsv)")
	cmd.Flags().StringVar(&flags.taxonomy, "taxonomy", "", "taxonomic assignment batch (tsv)")
	cmd.Flags().StringVar(&flags.contaminants, "contaminants", "", "contaminant batch (tsv)")
	cmd.Flags().StringVar(&flags.antimicrobials, "amr", "", "antimicrobial resistance batch (tsv)")
	cmd.Flags().StringVar(&flags.runNumber, "run-number", "", "run number for assembly rows without one")
	cmd.Flags().StringVar(&flags.sunbeamVersion, "sunbeam-version", "", "sunbeam version for assembly rows without one")
	cmd.Flags().StringVar(&flags.sbxSgaVersion, "sbx-sga-version", "", "sbx_sga version for assembly rows without one")
	cmd.Flags().StringVar(&flags.outputPath, "output-path", "", "pipeline output path for assembly rows without one")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "commit without asking for confirmation")

	return cmd
}

func (f *ingestFlags) toOptions() (*ingest.Options, error) {
	opts := &ingest.Options{
		RunNumber:      f.runNumber,
		SunbeamVersion: f.sunbeamVersion,
		SbxSgaVersion:  f.sbxSgaVersion,
		OutputPath:     f.outputPath,
		Yes:            f.yes,
		Confirm:        confirmOnStdin,
	}

	for _, source := range []struct {
		path  string
		table **ingest.Table
	}{
		{f.isolates, &opts.Isolates},
		{f.assemblies, &opts.Assemblies},
		{f.assemblyQCs, &opts.AssemblyQCs},
		{f.taxonomy, &opts.TaxonomicAssignments},
		{f.contaminants, &opts.Contaminants},
		{f.antimicrobials, &opts.Antimicrobials},
	} {
		if source.path == "" {
			continue
		}
		table, err := ingest.LoadTable(source.path)
		if err != nil {
			return nil, err
		}
		*source.table = table
	}

	return opts, nil
}

func confirmOnStdin(prompt string) bool {
	fmt.Print(prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the read-only lookup API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(false)
			if err != nil {
				return err
			}

			s := server.New(&server.Config{
				Host:      appConfig.HTTPHost,
				Port:      appConfig.HTTPPort,
				DebugMode: appConfig.Debug,
			}, db)

			logging.Default().Infof("serving lookup api on %s:%d", appConfig.HTTPHost, appConfig.HTTPPort)
			return s.RunServer()
		},
	}
}
