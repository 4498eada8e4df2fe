// Package files provides input-file discovery for the data processor.
//
// Discovery lists the Office of Research extract files (.csv, and the
// occasional .xlsx delivery) in an input directory, sorted by name so a
// batch run is deterministic regardless of directory-listing order.
package files
