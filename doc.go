// Package timedlog is a small stateful logger that prefixes every message
// with a UTC timestamp.
//
// An Engine is configured with an output Mode (none, console or file) and a
// Severity mask selecting which of the three message classes are emitted:
//
//	eng := timedlog.New()
//	if err := eng.Configure(timedlog.ModeFile, timedlog.SeverityAlert, "app"); err != nil {
//		return err
//	}
//	defer eng.Close()
//
//	eng.Alert("disk full") // appended to ./app.log
//	eng.Inform("ignored")  // info is not in the mask
//
// Entries have the form "<timestamp> - <content>". Console entries go to
// stdout (info) or stderr (warning, alert); file entries are appended to
// "<base>.log", one line each.
//
// A process-wide engine backs the package level functions (Configure, Close,
// Inform, Warn, Alert). It starts disabled, so every emit call is a no-op
// until Configure is called. Whenever file mode was used, Close must run
// before the process exits.
package timedlog
