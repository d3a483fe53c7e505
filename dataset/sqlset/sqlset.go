/*
Package sqlset reads datasets from and writes datasets to SQL database
tables through database/sql.

A dataset table has a text column per attribute id, named after its
letter ('a', 'b', ...), up to the highest id on the catalog, followed
by an outcome column. The package does not import any driver: the
caller opens the *sql.DB with the driver of its choice.
*/
package sqlset

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
)

// OutcomeColumn is the name of the column holding outcomes.
const OutcomeColumn = "outcome"

var tableNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

/*
Dialect abstracts the differences between SQL backends that matter
to the package.
*/
type Dialect interface {
	// Placeholder returns the bind parameter for the i-th (from 1) value
	Placeholder(i int) string
}

type questionMarkDialect struct{}

type dollarDialect struct{}

// SQLite is the Dialect for SQLite databases.
var SQLite Dialect = questionMarkDialect{}

// Postgres is the Dialect for PostgreSQL databases.
var Postgres Dialect = dollarDialect{}

func (questionMarkDialect) Placeholder(int) string {
	return "?"
}

func (dollarDialect) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

/*
Columns returns the column names for a dataset with the given catalog.
*/
func Columns(c feature.Catalog) []string {
	width := c.MaxID() + 1
	columns := make([]string, 0, width+1)
	for id := 0; id < width; id++ {
		columns = append(columns, feature.Attribute{ID: id}.Name())
	}
	return append(columns, OutcomeColumn)
}

/*
Read takes a context, a database, a table name, the catalog of the
dataset and its labels and returns the dataset with every row of the
table as example or an error. NULL values are rejected.
*/
func Read(ctx context.Context, db *sql.DB, table string, c feature.Catalog, labels dataset.Labels) (*dataset.Dataset, error) {
	if !tableNameRegexp.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	columns := Columns(c)
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoteAll(columns), ", "), table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	var examples []dataset.Example
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", len(examples)+1, table, err)
		}
		e := make(dataset.Example, len(values))
		for i, v := range values {
			if !v.Valid {
				return nil, fmt.Errorf("row %d of table %s has NULL %s", len(examples)+1, table, columns[i])
			}
			e[i] = v.String
		}
		examples = append(examples, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	d := &dataset.Dataset{Catalog: c, Examples: examples}
	if err = d.Validate(labels); err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	return d, nil
}

/*
Write takes a context, a database, its dialect, a table name and a
dataset and creates the table if it does not exist and inserts every
example of the dataset in it in a single transaction.
*/
func Write(ctx context.Context, db *sql.DB, dialect Dialect, table string, d *dataset.Dataset) error {
	if !tableNameRegexp.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	columns := quoteAll(Columns(d.Catalog))
	definitions := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		definitions[i] = col + " TEXT NOT NULL"
		placeholders[i] = dialect.Placeholder(i + 1)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("writing table %s: %v", table, err)
	}
	defer tx.Rollback()
	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(definitions, ", "))
	if _, err = tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating table %s: %v", table, err)
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("preparing insert on table %s: %v", table, err)
	}
	defer stmt.Close()
	for i, e := range d.Examples {
		if len(e) != len(columns) {
			return fmt.Errorf("example %d has %d fields, table %s has %d columns", i+1, len(e), table, len(columns))
		}
		args := make([]interface{}, len(e))
		for j, v := range e {
			args[j] = v
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting example %d on table %s: %v", i+1, table, err)
		}
	}
	return tx.Commit()
}

func quoteAll(names []string) []string {
	result := make([]string, len(names))
	for i, n := range names {
		result[i] = `"` + n + `"`
	}
	return result
}
