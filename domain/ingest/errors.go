package ingest

import (
	"fmt"
	"strings"
)

/*
SchemaError reports every required column missing from a batch, not just the
first one, so the submitter can fix the file in one pass.
*/
type SchemaError struct {
	Kind    Kind
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column(s) for %s: %s", e.Kind, strings.Join(e.Missing, ", "))
}

/*
ConsistencyError means two rows claim the same sample id with different isolate
data. This is the only fatal classification; it aborts the whole ingestion.
*/
type ConsistencyError struct {
	SampleID string
	Field    string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("conflicting isolate data for sample %s (field %s)", e.SampleID, e.Field)
}

/*
IntegrityViolation wraps a constraint failure raised by the store while the
change-set is being staged, before any confirmation is requested.
*/
type IntegrityViolation struct {
	Err error
}

func (e *IntegrityViolation) Error() string {
	return fmt.Sprintf("integrity violation: %v", e.Err)
}

func (e *IntegrityViolation) Unwrap() error {
	return e.Err
}
