// Command gridctl renders YAML datasets as terminal tables.
package main

func main() {
	execute()
}
