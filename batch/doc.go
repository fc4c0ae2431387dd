// Package batch computes the game chromatic number of every graph in a corpus
// of graph6 lines and writes "<graph6> <k>" result lines in input order.
//
// Results already present in a previous output file can be loaded with
// LoadSolved and skipped via WithSolved, so an interrupted run resumes by
// appending to the same file. WithWorkers fans graphs out across goroutines;
// every worker plays on its own game state and results are still emitted in
// input order.
//
// The Families table names the corpora laid out as
// <dir>/<family>/<family>-n<order>.dat.
package batch
