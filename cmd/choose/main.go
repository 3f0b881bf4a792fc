// inline list picker, like gum choose
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	. "quest"
)

func main() {
	picker := NewPicker(
		NewChoice("production"),
		NewChoice("staging"),
		NewSeparator(""),
		NewChoice("development"),
		NewChoice("local"),
	).WithPageSize(6)

	backend := NewTerminal()
	events := NewEvents(os.Stdin)

	answer, err := NewInput[SelectedChoice](NewSelectPrompt("Deploy target", picker), backend, events).
		HideCursor().
		Run()
	if err != nil {
		if errors.Is(err, ErrInterrupted) {
			return
		}
		log.Fatal(err)
	}

	fmt.Println(answer.Text)
}
