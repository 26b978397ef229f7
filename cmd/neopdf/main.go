// Idiomatic entrypoint for the Cobra CLI; command wiring lives in root.go.
package main

func main() {
	Execute()
}
