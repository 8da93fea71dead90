package main

import "github.com/jayteealao/cylclockd/cmd"

func main() {
	cmd.Execute()
}
