package main

import (
	"os"

	"github.com/Iush-Yadav/SafeStreet/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
