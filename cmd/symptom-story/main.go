package main

import "github.com/ImpanaSR/Symptom-story/cmd/symptom-story/cmd"

func main() {
	cmd.Execute()
}
