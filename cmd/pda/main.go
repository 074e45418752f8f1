// Command pda runs the built-in pushdown automata from the command line.
package main

func main() {
	Execute()
}
