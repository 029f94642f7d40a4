// Package report orders resolved packages by publish date and writes them
// out.
//
// The ordering policy lives in [Sort]: records are ordered oldest first,
// ties keep their listing order, and records without a publish date are
// split off rather than printed. Writers never see an unresolved record.
//
// # Formats
//
// [TextWriter] prints one line per package:
//
//	lodash: 2021/02/20 15:42:16
//
// [JSONWriter] prints an array of objects carrying the package URL and an
// RFC 3339 timestamp, for consumption by other tools.
package report
