package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/dataset/mongoset"
	"github.com/pbanos/tdidt/dataset/redisset"
	"github.com/pbanos/tdidt/dataset/sqlset"
	"github.com/pbanos/tdidt/dataset/text"
	"github.com/pbanos/tdidt/feature/yaml"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const defaultTable = "examples"

type sourceKind int

const (
	textSource sourceKind = iota
	sqliteSource
	postgresSource
	mongoSource
	redisSource
)

/*
sourceConfig holds the flags locating a dataset: a text file (or STDIN),
a SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis URL, along with
the table, collection or key holding it and the metadata describing it
when the source has no header.
*/
type sourceConfig struct {
	*rootCmdConfig
	location      string
	table         string
	metadataInput string
}

func (sc *sourceConfig) addFlags(cmd *cobra.Command, flag, shorthand, usage string) {
	cmd.PersistentFlags().StringVarP(&(sc.location), flag, shorthand, "", usage+": a text dataset file, a SQLite3 (.db) file, or a postgresql://, mongodb:// or redis:// URL (defaults to STDIN, interpreted as text)")
	cmd.PersistentFlags().StringVar(&(sc.table), flag+"-table", defaultTable, "table, collection or key holding the dataset on SQL, MongoDB and Redis sources")
	cmd.PersistentFlags().StringVarP(&(sc.metadataInput), "metadata", "m", "", "path to a YML file describing attributes and labels (required for SQL and MongoDB sources)")
}

func (sc *sourceConfig) kind() sourceKind {
	switch {
	case strings.HasPrefix(sc.location, "postgresql://"), strings.HasPrefix(sc.location, "postgres://"):
		return postgresSource
	case strings.HasPrefix(sc.location, "mongodb://"):
		return mongoSource
	case strings.HasPrefix(sc.location, "redis://"):
		return redisSource
	case strings.HasSuffix(sc.location, ".db"):
		return sqliteSource
	}
	return textSource
}

func (sc *sourceConfig) Validate() error {
	switch sc.kind() {
	case sqliteSource, postgresSource, mongoSource:
		if sc.metadataInput == "" {
			return fmt.Errorf("required metadata flag was not set for source %s", sc.location)
		}
	}
	return nil
}

/*
metadata returns the catalog and labels from the metadata file, if any,
with labels overridden by flags, environment or config.
*/
func (sc *sourceConfig) metadata() (*yaml.Metadata, error) {
	m := &yaml.Metadata{Labels: dataset.DefaultLabels()}
	if sc.metadataInput != "" {
		sc.Logf("Reading metadata from %s...", sc.metadataInput)
		var err error
		m, err = yaml.ReadMetadataFromFile(sc.metadataInput)
		if err != nil {
			return nil, err
		}
	}
	labels, err := sc.labels(m.Labels)
	if err != nil {
		return nil, err
	}
	m.Labels = labels
	return m, nil
}

/*
Read returns the dataset at the source, along its labels.
*/
func (sc *sourceConfig) Read(ctx context.Context) (*dataset.Dataset, dataset.Labels, error) {
	m, err := sc.metadata()
	if err != nil {
		return nil, dataset.Labels{}, err
	}
	var d *dataset.Dataset
	switch sc.kind() {
	case sqliteSource, postgresSource:
		d, err = sc.withDB(func(db *sql.DB, _ sqlset.Dialect) (*dataset.Dataset, error) {
			return sqlset.Read(ctx, db, sc.table, m.Catalog, m.Labels)
		})
	case mongoSource:
		sc.Logf("Dialing MongoDB at %s...", sc.location)
		var session *mgo.Session
		session, err = mgo.Dial(sc.location)
		if err != nil {
			return nil, m.Labels, fmt.Errorf("connecting to %s: %v", sc.location, err)
		}
		defer session.Close()
		d, err = mongoset.Read(ctx, session, sc.table, m.Catalog, m.Labels)
	case redisSource:
		var rc *redis.Client
		rc, err = sc.redisClient()
		if err != nil {
			return nil, m.Labels, err
		}
		defer rc.Close()
		d, err = redisset.Read(ctx, rc, sc.table, m.Labels)
	default:
		if sc.location == "" {
			sc.Logf("Reading dataset from STDIN...")
		} else {
			sc.Logf("Reading dataset from %s...", sc.location)
		}
		d, err = text.ReadFile(sc.location, m.Labels)
	}
	if err != nil {
		return nil, m.Labels, err
	}
	sc.Logf("Read %d examples with attributes %v", len(d.Examples), d.Catalog)
	return d, m.Labels, nil
}

/*
Write stores the dataset at the source. Text sources are written on
the file, or STDOUT if none.
*/
func (sc *sourceConfig) Write(ctx context.Context, d *dataset.Dataset) error {
	switch sc.kind() {
	case sqliteSource, postgresSource:
		_, err := sc.withDB(func(db *sql.DB, dialect sqlset.Dialect) (*dataset.Dataset, error) {
			return nil, sqlset.Write(ctx, db, dialect, sc.table, d)
		})
		return err
	case mongoSource:
		session, err := mgo.Dial(sc.location)
		if err != nil {
			return fmt.Errorf("connecting to %s: %v", sc.location, err)
		}
		defer session.Close()
		return mongoset.Write(ctx, session, sc.table, d)
	case redisSource:
		rc, err := sc.redisClient()
		if err != nil {
			return err
		}
		defer rc.Close()
		return redisset.Write(ctx, rc, sc.table, d)
	}
	return writeTextDataset(sc.location, d)
}

func (sc *sourceConfig) withDB(f func(*sql.DB, sqlset.Dialect) (*dataset.Dataset, error)) (*dataset.Dataset, error) {
	driver, dialect := "sqlite3", sqlset.SQLite
	if sc.kind() == postgresSource {
		driver, dialect = "postgres", sqlset.Postgres
	}
	sc.Logf("Opening %s database at %s...", driver, sc.location)
	db, err := sql.Open(driver, sc.location)
	if err != nil {
		return nil, fmt.Errorf("opening %s database at %s: %v", driver, sc.location, err)
	}
	defer db.Close()
	return f(db, dialect)
}

func (sc *sourceConfig) redisClient() (*redis.Client, error) {
	opts, err := redis.ParseURL(sc.location)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL %s: %v", sc.location, err)
	}
	sc.Logf("Connecting to redis at %s...", opts.Addr)
	return redis.NewClient(opts), nil
}
