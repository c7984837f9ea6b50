// bdoc-dump decodes an encoded document file and prints it in a chosen
// interchange format.
package main

import "os"

func main() {
	os.Exit(run(ParseFlags(os.Args[1:])))
}
