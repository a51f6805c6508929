package ingest

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/PennChopMicrobiomeProgram/marc-db/logging"
	"github.com/PennChopMicrobiomeProgram/marc-db/repository/marcdb"
)

const confirmPrompt = "Proceed with these changes? [y/N]: "

// errCancelled rolls the transaction back when confirmation is declined. It
// never escapes Ingest; declining is not an error, just a no-op ingestion.
var errCancelled = errors.New("ingest cancelled")

/*
Options selects the batches of one ingestion run. Every table is optional;
entity types arrive in arbitrary combinations and an omitted table simply
stages nothing for that type.
*/
type Options struct {
	Isolates             *Table
	Assemblies           *Table
	AssemblyQCs          *Table
	TaxonomicAssignments *Table
	Contaminants         *Table
	Antimicrobials       *Table

	// Shared metadata overrides. Each fills the matching assembly field when
	// the batch leaves it blank; an explicit cell value wins.
	RunNumber      string
	SunbeamVersion string
	SbxSgaVersion  string
	OutputPath     string

	// Yes commits without asking. Otherwise Confirm is consulted after the
	// change-set summary has been written to Preview; a nil Confirm declines.
	Yes     bool
	Confirm func(prompt string) bool

	// Preview receives the change-set summary before any confirmation.
	// Defaults to os.Stdout.
	Preview io.Writer

	Logger *logrus.Logger
}

type Result struct {
	RunID     uuid.UUID
	Committed bool
	Reports   []*EntityReport
}

/*
Ingest reconciles the batches in opts against the store and each other, stages
the resulting change-set inside one transaction, and commits it only after
confirmation. Either every accepted row across all entity types persists, or
none do: fatal errors (SchemaError, ConsistencyError, IntegrityViolation) and
declined confirmations both roll back everything.

When db is already inside a transaction the change-set is staged in a nested
scope (savepoint), so an ingestion composes with a caller-owned transaction.
*/
func Ingest(ctx context.Context, db *gorm.DB, opts *Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	preview := opts.Preview
	if preview == nil {
		preview = os.Stdout
	}

	result := &Result{RunID: uuid.New()}
	b := &ingester{
		opts:            opts,
		result:          result,
		logger:          logger,
		preview:         preview,
		cs:              newChangeSet(),
		index:           newAssemblyIndex(),
		isolates:        make(map[string]marcdb.Isolate),
		storeAssemblies: make(map[uint]*marcdb.Assembly),
	}

	err := db.WithContext(ctx).Transaction(b.run)
	if errors.Is(err, errCancelled) {
		logger.Infof("ingest run %s cancelled, nothing committed", result.RunID)
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	result.Committed = true
	logger.Infof("ingest run %s committed", result.RunID)
	return result, nil
}
