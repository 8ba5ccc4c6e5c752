// Package selftest checks the tester package with itself: a meta
// recorder asserts on the return values of a subject recorder.
package selftest

import (
	"database/sql"
	"slices"

	"modernc.org/sqlite"

	"digital.vasic.tester/pkg/tester"
)

var (
	// ErrLogic is the root class for programming errors.
	ErrLogic = tester.NewClass("LogicError", nil)
	// ErrBadMethodCall is raised for calls to missing methods.
	ErrBadMethodCall = tester.NewClass("BadMethodCallError", ErrLogic)
)

// Expected subject counts after Run.
const (
	SubjectTotal  = 9
	SubjectPassed = 5
	SubjectFailed = 4
)

// badStatement runs a statement against a table that does not
// exist in a fresh in-memory database.
func badStatement() error {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec("DROP TABLE nonexistent")
	return err
}

// Run records the subject assertions and the meta assertions
// about them. subject must be empty.
func Run(meta, subject *tester.Recorder) {
	f, t := subject, meta

	t.Test(
		"Five equals five passes",
		f.Test("Five equals five (this should pass)", 5 == 5),
	)

	t.Test(
		"True is not a nil value passes",
		f.Test("True is not a nil value (this should pass)", any(true) != nil),
	)

	t.Test(
		"Asserting that 2 equals 3 fails",
		!f.Test("Asserting that 2 equals 3 (this should fail)", 2 == 3),
	)

	t.Test(
		"Some function returns true passes",
		f.Test(
			"Some function returns true (this should pass)",
			func() bool { return 1+1 == 2 },
		),
	)

	t.Test(
		"Some function returns false fails",
		!f.Test(
			"Some function returns false (this should fail)",
			func() bool { return 1+0 == 2 },
		),
	)

	bugs := []string{"insects", "spiders", "bugs"}

	t.Test(
		`The slice contains "bugs" passes`,
		f.Test(
			`The slice contains "bugs" (this should pass)`,
			slices.Contains(bugs, "bugs"),
		),
	)

	t.Test(
		`The slice contains "bunny" fails`,
		!f.Test(
			`The slice contains "bunny" (this should fail)`,
			slices.Contains(bugs, "bunny"),
		),
	)

	t.Test(
		"Bad SQL statement returns a sqlite error passes",
		f.Throws(
			"Bad SQL statement returns a sqlite error (this should pass)",
			badStatement,
			tester.As[*sqlite.Error](),
		),
	)

	t.Test(
		"Bad SQL statement returns a BadMethodCallError fails",
		!f.Throws(
			"Bad SQL statement returns a BadMethodCallError (this should fail)",
			badStatement,
			ErrBadMethodCall,
		),
	)

	t.Test("9 tests were run", f.CountTotal() == SubjectTotal)
	t.Test("5 tests passed", f.CountPassed() == SubjectPassed)
	t.Test("4 tests failed", f.CountFailed() == SubjectFailed)

	t.Test(
		"FormatDescription is working properly",
		func() bool {
			return tester.FormatDescription("\nfoo\n \t \r\n", tester.MarkerPass) ==
				" => PASS :: foo"
		},
	)

	t.Test(
		"[Meta] All tests passed",
		t.CountPassed() == t.CountTotal(),
	)
}
