// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var envLoaded = false

// LoadEnvFile loads the file given by --env-file into the process environment.
// Variables already present in the environment are not overridden.
func LoadEnvFile() {
	if envLoaded {
		return
	}
	envLoaded = true
	envFile := envFileFromArgs(os.Args[1:])
	if envFile == "" {
		return
	}
	fmt.Printf("Loading environment variables from file: %s\n", envFile)
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Failed to load env file: %s\n", err)
	}
}

func envFileFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
