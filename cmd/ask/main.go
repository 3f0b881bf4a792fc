// inline question runner: confirm, number and multi-select prompts
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	. "quest"
)

func fatal(err error) {
	if errors.Is(err, ErrInterrupted) || errors.Is(err, ErrEOF) {
		os.Exit(130)
	}
	log.Fatal(err)
}

func main() {
	backend := NewTerminal()
	events := NewEvents(os.Stdin)

	proceed, err := NewInput[bool](NewConfirm("Provision a new environment?").WithDefault(true), backend, events).Run()
	if err != nil {
		fatal(err)
	}
	if !proceed {
		fmt.Println("cancelled")
		return
	}

	replicas, err := NewInput[int64](NewIntPrompt("How many replicas?").WithDefault(3), backend, events).Run()
	if err != nil {
		fatal(err)
	}

	regions, err := NewInput[[]SelectedChoice](NewMultiSelectPrompt("Which regions?", NewMultiPicker(
		NewChoice("eu-west-1"),
		NewChoice("eu-central-1"),
		NewChoice("us-east-1"),
		NewChoice("us-west-2"),
		NewChoice("ap-southeast-2"),
	)), backend, events).HideCursor().Run()
	if err != nil {
		fatal(err)
	}

	fmt.Printf("provisioning %d replicas in %d regions\n", replicas, len(regions))
	for _, r := range regions {
		fmt.Println("  -", r.Text)
	}
}
