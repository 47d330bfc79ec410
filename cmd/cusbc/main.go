/*
Copyright © 2025 shanedertrain
*/
package main

import "github.com/shanedertrain/cusbc/cmd"

func main() {
	cmd.Execute()
}
