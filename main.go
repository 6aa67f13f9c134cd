// bytewatch is a CLI for byte-size parsing/formatting and transfer-rate watching.
package main

import "bytewatch/cmd"

func main() {
	cmd.Execute()
}
