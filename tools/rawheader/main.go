package main

import "github.com/zostay/go-email-scan/tools/rawheader/cmd"

func main() {
	cmd.Execute()
}
