/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/filer/cmd/filer/cmd"

func main() {
	cmd.Execute()
}
