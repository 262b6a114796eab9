// main.go
package main

import "request-portal/cmd"

func main() {
	cmd.Execute()
}
