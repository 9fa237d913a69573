package main

import "github.com/phanigw/welltrack/cmd/welltrack"

func main() {
	welltrack.Execute()
}
