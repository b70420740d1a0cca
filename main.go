// File: main.go
package main

import "github.com/edespino/scriptbox/cmd"

func main() {
	cmd.Execute()
}
