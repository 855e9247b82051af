// Package source streams page records from JSON-lines bundles.
//
// A bundle is a file holding one page record per line, optionally compressed;
// the compression is chosen by filename suffix (.jsonl, .jsonl.bz2,
// .jsonl.xz). [New] accepts either a single bundle or a directory, which is
// walked recursively for bundle files.
//
// Iteration follows the bufio.Scanner idiom:
//
//	sc, err := source.New(path, source.Options{})
//	for sc.Next() {
//	    page := sc.Page()
//	    ...
//	}
//	if err := sc.Err(); err != nil {
//	    ...
//	}
package source
