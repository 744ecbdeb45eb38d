package main

import "github.com/frahmantamala/smart-records/cmd"

func main() {
	cmd.Execute()
}
