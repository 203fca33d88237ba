// Package cli implements the ulid command line tool.
//
//	ulid                      one ULID for the current time
//	ulid -n 5 --time 1469918176385
//	ulid --format uuid
//	ulid time 01ARYZ6S41TSV4RRFFQ69G5FAV -o json
//	ulid validate 01ARYZ6S41TSV4RRFFQ69G5FAV
//
// Configuration comes from the environment (see Config) and can be
// overridden by flags. Generated IDs go to stdout; logs go to stderr.
package cli
