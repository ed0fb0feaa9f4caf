// Package main is the flatfile command line tool. It reads fixed-width files described by a
// YAML layout and dumps, checks, or re-renders their records.
package main

func main() {
	Execute()
}
