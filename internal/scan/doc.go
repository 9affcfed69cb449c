// Package scan drives an index run over a directory tree.
//
// Walk visits every regular file below a root on an afero.Fs and reports its
// slash-separated path relative to the root and its size. ProcessFile turns
// one file's bytes into the rows it contributes: a font row, name rows for
// each face that parses, and an error row for each face that does not.
//
// Scanner ties them together. A walker goroutine feeds a pool of workers that
// read and parse files; the goroutine calling Run is the only one writing to
// the store, one file at a time. Face parse failures are recorded and never
// stop a run. The first walk, read or write error does.
package scan
