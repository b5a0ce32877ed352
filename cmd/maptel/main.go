// Command maptel loads telephone number translation tables from a YAML
// or JSON file and resolves numbers against them.
package main

func main() {
	Execute()
}
